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

	confirmBookingHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/confirm_booking"
	getAvailableDatesHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_available_slots"
	getProfessionalHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_professional"
	getScheduleHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/get_schedule"
	listProfessionalsHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/list_professionals"
	loginHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/login"
	validateDraftHandler "github.com/m04kA/SMC-AgendaService/internal/api/handlers/validate_draft"
	"github.com/m04kA/SMC-AgendaService/internal/api/middleware"
	"github.com/m04kA/SMC-AgendaService/internal/api/session"
	"github.com/m04kA/SMC-AgendaService/internal/config"
	"github.com/m04kA/SMC-AgendaService/internal/infra/seed"
	directoryRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/directory"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	confirmationServiceClient "github.com/m04kA/SMC-AgendaService/internal/integrations/confirmationservice"
	availabilityService "github.com/m04kA/SMC-AgendaService/internal/service/availability"
	professionalsService "github.com/m04kA/SMC-AgendaService/internal/service/professionals"
	scheduleService "github.com/m04kA/SMC-AgendaService/internal/service/schedule"
	authenticateUC "github.com/m04kA/SMC-AgendaService/internal/usecase/authenticate"
	confirmBookingUC "github.com/m04kA/SMC-AgendaService/internal/usecase/confirm_booking"
	validateDraftUC "github.com/m04kA/SMC-AgendaService/internal/usecase/validate_draft"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
	"github.com/m04kA/SMC-AgendaService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("AGENDA_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AgendaService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем источник начальных данных
	var loader seed.Loader
	switch cfg.Seed.Source {
	case config.SeedSourceFile:
		loader = seed.NewFileLoader(cfg.Seed.File)
		log.Info("Seed source: file %s", cfg.Seed.File)

	case config.SeedSourcePostgres:
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

		loader = seed.NewPostgresLoader(db)

	default:
		loader = seed.NewDemoLoader(cfg.Seed.BaseTime())
		log.Info("Seed source: demo data")
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	catalog, err := seed.LoadValidated(loadCtx, loader)
	cancelLoad()
	if err != nil {
		log.Fatal("Failed to load seed: %v", err)
	}

	// Инициализируем репозитории
	directory, err := directoryRepo.NewRepository(catalog.Professionals)
	if err != nil {
		log.Fatal("Failed to build professional directory: %v", err)
	}
	events := scheduleRepo.NewRepository(catalog.Events)
	log.Info("Catalog loaded: professionals=%d", len(catalog.Professionals))

	// Инициализируем интеграционных клиентов
	confirmationClient := confirmationServiceClient.NewClient(
		cfg.Confirmation.URL,
		time.Duration(cfg.Confirmation.Timeout)*time.Second,
		log,
	)
	if confirmationClient.Enabled() {
		log.Info("Confirmation client initialized (url=%s timeout=%ds)", cfg.Confirmation.URL, cfg.Confirmation.Timeout)
	} else {
		log.Info("Confirmation client disabled: confirmations stay local")
	}

	sessionManager, err := session.NewManager(cfg.Auth.SigningKey, cfg.Auth.TTL())
	if err != nil {
		log.Fatal("Failed to initialize session manager: %v", err)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(directory, metricsCollector, log)
	professionalsSvc := professionalsService.NewService(directory, availabilitySvc, log)
	scheduleSvc := scheduleService.NewService(events, directory, log)

	// Инициализируем use cases
	validateDraftUseCase := validateDraftUC.NewUseCase(metricsCollector, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		directory,
		availabilitySvc,
		validateDraftUseCase,
		confirmationClient,
		log,
	)
	authenticateUseCase := authenticateUC.NewUseCase(
		directory,
		sessionManager,
		cfg.Auth.SharedSecret,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	listProfessionals := listProfessionalsHandler.NewHandler(professionalsSvc, log)
	getProfessional := getProfessionalHandler.NewHandler(professionalsSvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(availabilitySvc, log)
	validateDraft := validateDraftHandler.NewHandler(validateDraftUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	login := loginHandler.NewHandler(authenticateUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Каталог специалистов
	api.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}", getProfessional.Handle).Methods(http.MethodGet)

	// Доступность
	api.HandleFunc("/professionals/{professionalId}/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирование
	api.HandleFunc("/bookings/validate", validateDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Вход в кабинет
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Bearer токен сессии)
	// ============================================================

	protected := api.PathPrefix("/me").Subrouter()
	protected.Use(middleware.Auth(sessionManager))

	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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
