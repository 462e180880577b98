// Package bcrp fetches the USD/PEN reference exchange rate from the BCRP
// statistical series API.
package bcrp

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/gesem/isp-service/internal/config"
	"github.com/sirupsen/logrus"
)

// Client handles integration with the BCRP series API
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new BCRP client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.BCRPURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// fetch retrieves the raw XML body for the configured series
func (c *Client) fetch() ([]byte, error) {
	resp, err := c.client.Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("BCRP XML response: %s", string(body))
	return body, nil
}

// parseXMLResponse extracts the most recent rate value from the series XML
func (c *Client) parseXMLResponse(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %w", err)
	}

	values := doc.FindElements("//period/values/value")
	if len(values) == 0 {
		return 0, fmt.Errorf("no rate data found in XML")
	}

	// The series is chronological; the last value is the latest rate.
	latest := strings.TrimSpace(values[len(values)-1].Text())
	rate, err := strconv.ParseFloat(latest, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse rate %q: %w", latest, err)
	}
	return rate, nil
}

// GetExchangeRate retrieves the latest USD/PEN reference rate
func (c *Client) GetExchangeRate() (float64, error) {
	body, err := c.fetch()
	if err != nil {
		return 0, err
	}

	rate, err := c.parseXMLResponse(body)
	if err != nil {
		return 0, err
	}

	c.log.Infof("Retrieved USD/PEN reference rate: %.4f", rate)
	return rate, nil
}
