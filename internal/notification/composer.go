// Package notification composes the reminder messages sent to clients.
// Only the text is produced here; delivery happens outside the server
// (WhatsApp deep links on the front end, or the daily email digest).
package notification

import (
	"fmt"

	"github.com/gesem/isp-service/internal/billing"
	"github.com/gesem/isp-service/internal/models"
)

// Channel identifies the delivery channel a message is composed for
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelSMS      Channel = "sms"
)

// ValidChannel reports whether s names a supported channel
func ValidChannel(s string) bool {
	return s == string(ChannelWhatsApp) || s == string(ChannelSMS)
}

// ForWhatsApp builds the WhatsApp message for a client. Expired clients get
// the overdue notice, everyone else the renewal reminder.
func ForWhatsApp(client *models.Client, status billing.Status) string {
	if status == billing.StatusExpired {
		return fmt.Sprintf(
			"Hola %s, le informamos que su servicio de internet (%s) ha vencido. Su pago de S/ %.2f está pendiente. Por favor regularice su situación. - GESEM",
			client.Name,
			client.Plan,
			client.MonthlyAmount,
		)
	}

	return fmt.Sprintf(
		"Hola %s, le recordamos que su servicio de internet (%s - %s) vence el %s. Monto: S/ %.2f. Gracias - GESEM",
		client.Name,
		client.Plan,
		client.Speed,
		client.NextPaymentDate.Format("02/01/2006"),
		client.MonthlyAmount,
	)
}

// ForSMS builds the short SMS variant
func ForSMS(client *models.Client) string {
	return fmt.Sprintf(
		"GESEM: Su servicio %s vence pronto. Monto: S/%.2f",
		client.Plan,
		client.MonthlyAmount,
	)
}
