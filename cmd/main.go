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

	createAppointmentHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/create_appointment"
	createBusinessHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/create_business"
	createServiceHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/delete_appointment"
	getAvailabilityHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/get_availability"
	getBusinessHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/get_business"
	healthHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/list_services"
	loginHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/login"
	registerHandler "github.com/bizqueue/BQ-SchedulingService/internal/api/handlers/register"
	"github.com/bizqueue/BQ-SchedulingService/internal/api/middleware"
	"github.com/bizqueue/BQ-SchedulingService/internal/config"
	"github.com/bizqueue/BQ-SchedulingService/internal/domain"
	apptRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/appointment"
	businessRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/business"
	serviceRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/servicecatalog"
	userRepo "github.com/bizqueue/BQ-SchedulingService/internal/infra/storage/user"
	apptService "github.com/bizqueue/BQ-SchedulingService/internal/service/appointments"
	authService "github.com/bizqueue/BQ-SchedulingService/internal/service/auth"
	businessService "github.com/bizqueue/BQ-SchedulingService/internal/service/business"
	catalogService "github.com/bizqueue/BQ-SchedulingService/internal/service/catalog"
	createAppointmentUC "github.com/bizqueue/BQ-SchedulingService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/bizqueue/BQ-SchedulingService/internal/usecase/get_availability"
	"github.com/bizqueue/BQ-SchedulingService/pkg/dbmetrics"
	"github.com/bizqueue/BQ-SchedulingService/pkg/logger"
	"github.com/bizqueue/BQ-SchedulingService/pkg/metrics"
	"github.com/bizqueue/BQ-SchedulingService/pkg/simpletxmanager"
	"github.com/bizqueue/BQ-SchedulingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting BQ-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New()
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Рабочий календарь: фиксированные часы в явной таймзоне
	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Failed to load calendar timezone: %v", err)
	}
	calendar := domain.NewWorkingCalendar(location, cfg.Calendar.OpenHour, cfg.Calendar.CloseHour)
	log.Info("Working calendar initialized (timezone=%s, hours=%02d:00-%02d:00)",
		location.String(), cfg.Calendar.OpenHour, cfg.Calendar.CloseHour)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository *apptRepo.Repository
		businessRepository    *businessRepo.Repository
		serviceRepository     *serviceRepo.Repository
		userRepository        *userRepo.Repository
	)

	var txMgr businessService.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = apptRepo.NewRepository(wrappedDB)
		businessRepository = businessRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = apptRepo.NewRepository(db)
		businessRepository = businessRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	tokenManager := authService.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	authSvc := authService.NewService(userRepository, tokenManager, log)
	businessSvc := businessService.NewService(businessRepository, userRepository, txMgr, log)
	catalogSvc := catalogService.NewService(serviceRepository, userRepository, log)
	appointmentsSvc := apptService.NewService(appointmentRepository, userRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogSvc,
		userRepository,
		calendar,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		appointmentRepository,
		userRepository,
		calendar,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	createBusiness := createBusinessHandler.NewHandler(businessSvc, log)
	getBusiness := getBusinessHandler.NewHandler(businessSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	health := healthHandler.NewHandler(cfg.Metrics.ServiceName)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// Свой бизнес может смотреть любой аутентифицированный пользователь
	protected.HandleFunc("/business/me", getBusiness.Handle).Methods(http.MethodGet)

	// Остальные операции доступны только владельцам
	owner := protected.PathPrefix("").Subrouter()
	owner.Use(middleware.RequireRole(string(domain.RoleOwner), log))

	// --- Бизнес ---
	owner.HandleFunc("/business", createBusiness.Handle).Methods(http.MethodPost)

	// --- Услуги ---
	owner.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	owner.HandleFunc("/appointments/availability", getAvailability.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
