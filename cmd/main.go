package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	contactMessageHandler "github.com/sv-web/sve-backend/internal/api/handlers/contact_message"
	createBookingHandler "github.com/sv-web/sve-backend/internal/api/handlers/create_booking"
	deleteEventHandler "github.com/sv-web/sve-backend/internal/api/handlers/delete_event"
	getAppointmentsHandler "github.com/sv-web/sve-backend/internal/api/handlers/get_appointments"
	getEventCountersHandler "github.com/sv-web/sve-backend/internal/api/handlers/get_event_counters"
	getEventsHandler "github.com/sv-web/sve-backend/internal/api/handlers/get_events"
	getSubscriptionsHandler "github.com/sv-web/sve-backend/internal/api/handlers/get_subscriptions"
	prebookEventHandler "github.com/sv-web/sve-backend/internal/api/handlers/prebook_event"
	subscribeNewsHandler "github.com/sv-web/sve-backend/internal/api/handlers/subscribe_news"
	unsubscribeNewsHandler "github.com/sv-web/sve-backend/internal/api/handlers/unsubscribe_news"
	updateEventHandler "github.com/sv-web/sve-backend/internal/api/handlers/update_event"
	"github.com/sv-web/sve-backend/internal/api/middleware"
	"github.com/sv-web/sve-backend/internal/config"
	eventRepo "github.com/sv-web/sve-backend/internal/infra/storage/event"
	subscriptionRepo "github.com/sv-web/sve-backend/internal/infra/storage/subscription"
	calendarClient "github.com/sv-web/sve-backend/internal/integrations/calendar"
	"github.com/sv-web/sve-backend/internal/integrations/google"
	sheetsClient "github.com/sv-web/sve-backend/internal/integrations/sheets"
	"github.com/sv-web/sve-backend/internal/mail"
	calendarService "github.com/sv-web/sve-backend/internal/service/calendar"
	contactService "github.com/sv-web/sve-backend/internal/service/contact"
	eventsService "github.com/sv-web/sve-backend/internal/service/events"
	newsService "github.com/sv-web/sve-backend/internal/service/news"
	bookEventUC "github.com/sv-web/sve-backend/internal/usecase/book_event"
	prebookEventUC "github.com/sv-web/sve-backend/internal/usecase/prebook_event"
	"github.com/sv-web/sve-backend/pkg/dbmetrics"
	"github.com/sv-web/sve-backend/pkg/logger"
	"github.com/sv-web/sve-backend/pkg/metrics"
	"github.com/sv-web/sve-backend/pkg/txmanager"
)

func main() {
	// Load the configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize the logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting sve-backend...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize the Google API clients
	googleTimeout := time.Duration(cfg.Google.Timeout) * time.Second
	tokenSource, err := google.NewTokenSource(
		cfg.Google.ClientEmail,
		cfg.Google.PrivateKeyFile,
		cfg.Google.TokenURL,
		googleTimeout,
		[]string{sheetsClient.Scope, calendarClient.Scope},
	)
	if err != nil {
		log.Fatal("Failed to initialize Google auth: %v", err)
	}

	sheets, err := sheetsClient.NewClient(sheetsClient.DefaultBaseURL, tokenSource, googleTimeout, log)
	if err != nil {
		log.Fatal("Failed to initialize Sheets client: %v", err)
	}
	calendars := calendarClient.NewClient(calendarClient.DefaultBaseURL, tokenSource, googleTimeout, log)
	log.Info("Google API clients initialized (service account %s)", cfg.Google.ClientEmail)

	// Initialize the mail accounts
	mailAccounts, err := mail.NewRegistry(cfg.Mail.Accounts)
	if err != nil {
		log.Fatal("Failed to initialize mail accounts: %v", err)
	}
	mailer := mail.NewMailer(log)
	log.Info("Mail accounts initialized (%d accounts)", len(cfg.Mail.Accounts))

	// Initialize repositories (with or without metrics)
	var (
		eventRepository        *eventRepo.Repository
		subscriptionRepository *subscriptionRepo.Repository
		txMgr                  *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventRepository = eventRepo.NewRepository(wrappedDB)
		subscriptionRepository = subscriptionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventRepository = eventRepo.NewRepository(db)
		subscriptionRepository = subscriptionRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(txmanager.Beginner{DB: db})
	}

	// Initialize services
	eventsSvc := eventsService.NewService(eventRepository, log)
	newsSvc := newsService.NewService(subscriptionRepository, mailAccounts, mailer, log)
	contactSvc := contactService.NewService(mailAccounts, mailer, log)
	calendarSvc := calendarService.NewService(calendars, map[string]string{
		"fitness": cfg.Google.FitnessCalendarID,
		"events":  cfg.Google.EventsCalendarID,
	}, log)

	// Initialize use cases
	bookEventUseCase := bookEventUC.NewUseCase(
		eventRepository,
		sheets,
		newsSvc,
		mailAccounts,
		mailer,
		txMgr,
		log,
	)
	prebookEventUseCase := prebookEventUC.NewUseCase(
		eventRepository,
		sheets,
		bookEventUseCase,
		log,
	)

	// Initialize handlers
	getEvents := getEventsHandler.NewHandler(eventsSvc, log)
	getEventCounters := getEventCountersHandler.NewHandler(eventsSvc, log)
	createBooking := createBookingHandler.NewHandler(bookEventUseCase, log)
	prebookEvent := prebookEventHandler.NewHandler(prebookEventUseCase, log)
	updateEvent := updateEventHandler.NewHandler(eventsSvc, log)
	deleteEvent := deleteEventHandler.NewHandler(eventsSvc, log)
	subscribeNews := subscribeNewsHandler.NewHandler(newsSvc, log)
	unsubscribeNews := unsubscribeNewsHandler.NewHandler(newsSvc, log)
	getSubscriptions := getSubscriptionsHandler.NewHandler(newsSvc, log)
	contactMessage := contactMessageHandler.NewHandler(contactSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(calendarSvc, log)

	// Set up the router
	r := mux.NewRouter()

	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (website)
	// ============================================================

	api.HandleFunc("/events", getEvents.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/events/counter", getEventCounters.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/events/booking", createBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/events/prebooking", prebookEvent.Handle).Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/news/subscribe", subscribeNews.Handle).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/news/unsubscribe", unsubscribeNews.Handle).Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/contact/message", contactMessage.Handle).Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/calendar/appointments", getAppointments.Handle).Methods(http.MethodGet, http.MethodOptions)

	// ============================================================
	// PROTECTED ROUTES (require X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Admin.Token))

	protected.HandleFunc("/events/update", updateEvent.Handle).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/events/delete", deleteEvent.Handle).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/news/subscriptions", getSubscriptions.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
