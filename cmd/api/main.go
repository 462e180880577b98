package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gesem/isp-service/internal/config"
	"github.com/gesem/isp-service/internal/db"
	"github.com/gesem/isp-service/internal/handler"
	"github.com/gesem/isp-service/internal/integrations/bcrp"
	"github.com/gesem/isp-service/internal/middleware"
	"github.com/gesem/isp-service/internal/repository"
	"github.com/gesem/isp-service/internal/scheduler"
	"github.com/gesem/isp-service/internal/service"
	"github.com/gesem/isp-service/internal/utils/email"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	database, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	if err := database.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := db.RunMigrations(database); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(database)
	svc := service.NewService(repo, logger, cfg)
	rates := bcrp.NewClient(cfg, logger)
	h := handler.NewHandler(svc, rates, logger)

	// Daily renewal-alert digest
	if cfg.SMTPEnabled() {
		sender := email.NewSender(cfg, logger)
		sched, err := scheduler.New(repo, svc, sender, logger, cfg.AlertCronSpec)
		if err != nil {
			logger.Fatalf("Failed to initialize scheduler: %v", err)
		}
		sched.Start()
		defer sched.Stop()
	} else {
		logger.Warn("SMTP not configured, daily alert digest disabled")
	}

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")
	// Protected routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg))
	api.HandleFunc("/dashboard", h.Dashboard).Methods("GET")
	api.HandleFunc("/exchange-rate", h.ExchangeRate).Methods("GET")
	api.HandleFunc("/clients", h.ListClients).Methods("GET")
	api.HandleFunc("/clients", h.CreateClient).Methods("POST")
	api.HandleFunc("/clients/{id}", h.GetClient).Methods("GET")
	api.HandleFunc("/clients/{id}", h.UpdateClient).Methods("PUT")
	api.HandleFunc("/clients/{id}", h.DeleteClient).Methods("DELETE")
	api.HandleFunc("/clients/{id}/toggle-service", h.ToggleClientService).Methods("PATCH")
	api.HandleFunc("/payments", h.ListPayments).Methods("GET")
	api.HandleFunc("/payments", h.CreatePayment).Methods("POST")
	api.HandleFunc("/notes", h.ListNotes).Methods("GET")
	api.HandleFunc("/notes", h.CreateNote).Methods("POST")
	api.HandleFunc("/notes/{id}", h.DeleteNote).Methods("DELETE")
	api.HandleFunc("/notifications/alerts", h.Alerts).Methods("GET")
	api.HandleFunc("/notifications/send", h.SendNotification).Methods("POST")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
