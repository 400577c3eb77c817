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

	cancelAppointmentHandler "github.com/m04kA/SMC-BarberDashboard/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/SMC-BarberDashboard/internal/api/handlers/complete_appointment"
	getAnalyticsDashboardHandler "github.com/m04kA/SMC-BarberDashboard/internal/api/handlers/get_analytics_dashboard"
	getAppointmentsHandler "github.com/m04kA/SMC-BarberDashboard/internal/api/handlers/get_appointments"
	getPeriodStatsHandler "github.com/m04kA/SMC-BarberDashboard/internal/api/handlers/get_period_stats"
	getReportHandler "github.com/m04kA/SMC-BarberDashboard/internal/api/handlers/get_report"
	listTransitionsHandler "github.com/m04kA/SMC-BarberDashboard/internal/api/handlers/list_transitions"
	refreshAppointmentsHandler "github.com/m04kA/SMC-BarberDashboard/internal/api/handlers/refresh_appointments"
	renewSessionHandler "github.com/m04kA/SMC-BarberDashboard/internal/api/handlers/renew_session"
	updateFilterHandler "github.com/m04kA/SMC-BarberDashboard/internal/api/handlers/update_filter"
	"github.com/m04kA/SMC-BarberDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-BarberDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-BarberDashboard/internal/config"
	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/infra/cache/analyticscache"
	journalRepo "github.com/m04kA/SMC-BarberDashboard/internal/infra/storage/journal"
	"github.com/m04kA/SMC-BarberDashboard/internal/integrations/barberapi"
	analyticsService "github.com/m04kA/SMC-BarberDashboard/internal/service/analytics"
	dashboardService "github.com/m04kA/SMC-BarberDashboard/internal/service/dashboard"
	"github.com/m04kA/SMC-BarberDashboard/internal/session"
	"github.com/m04kA/SMC-BarberDashboard/internal/state"
	fetchAppointmentsUC "github.com/m04kA/SMC-BarberDashboard/internal/usecase/fetch_appointments"
	transitionStatusUC "github.com/m04kA/SMC-BarberDashboard/internal/usecase/transition_status"
	"github.com/m04kA/SMC-BarberDashboard/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberDashboard/pkg/logger"
	"github.com/m04kA/SMC-BarberDashboard/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
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

	log.Info("Starting SMC-BarberDashboard...")
	log.Info("Configuration loaded from %s (business_id=%s)", configPath, cfg.Dashboard.BusinessID)

	// Инициализируем метрики (если включены). nil коллектор безопасен для всех вызовов.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сессия и клиент API барбершопов
	sessionManager := session.NewManager(cfg.BarberAPI.Token, log)
	apiClient := barberapi.NewClient(
		cfg.BarberAPI.URL,
		time.Duration(cfg.BarberAPI.Timeout)*time.Second,
		sessionManager,
		sessionManager,
		metricsCollector,
		log,
	)
	log.Info("Barber API client initialized (url=%s timeout=%ds)", cfg.BarberAPI.URL, cfg.BarberAPI.Timeout)

	// Журнал изменений статусов (PostgreSQL или no-op)
	type Journal interface {
		Record(ctx context.Context, entry *domain.JournalEntry) error
		List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error)
	}
	var journal Journal = journalRepo.Nop{}

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			journal = journalRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh))
			log.Info("Database metrics collection started")
		} else {
			journal = journalRepo.NewRepository(db)
		}
	} else {
		log.Warn("Database disabled, transition journal is not persisted")
	}

	// Кэш аналитики (Redis или no-op)
	type AnalyticsCache interface {
		Get(ctx context.Context, key string, dest interface{}) (bool, error)
		Set(ctx context.Context, key string, value interface{}) error
	}
	var cache AnalyticsCache = analyticscache.Nop{}

	if cfg.Cache.Enabled {
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := analyticscache.NewRedisClient(pingCtx, analyticscache.Options{
			Addr:         cfg.Cache.Addr,
			Password:     cfg.Cache.Password,
			DB:           cfg.Cache.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		})
		cancelPing()
		if err != nil {
			// Аналитика работает и без кэша
			log.Error("Failed to connect to redis, analytics cache disabled: %v", err)
		} else {
			defer rdb.Close()
			cache = analyticscache.New(rdb, cfg.Cache.Prefix, time.Duration(cfg.Cache.TTL)*time.Second, metricsCollector)
			log.Info("Analytics cache enabled (addr=%s ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
		}
	}

	// Состояние дашборда
	store := state.NewWithFilter(domain.DefaultFilterSpec().WithLimit(cfg.Dashboard.DefaultLimit))

	// Инициализируем use cases
	fetchUseCase := fetchAppointmentsUC.NewUseCase(apiClient, store, metricsCollector, log)
	transitionUseCase := transitionStatusUC.NewUseCase(apiClient, store, fetchUseCase, journal, log)

	// Инициализируем сервисы
	dashboardSvc := dashboardService.NewService(cfg.Dashboard.BusinessID, fetchUseCase, store, log)
	analyticsSvc := analyticsService.NewService(apiClient, cache, log)

	if cfg.Dashboard.RefreshOnStart {
		startCtx, cancelStart := context.WithTimeout(context.Background(), time.Duration(cfg.BarberAPI.Timeout)*time.Second)
		if _, err := dashboardSvc.Refresh(startCtx); err != nil {
			log.Warn("Initial appointments load failed: %v", err)
		} else {
			log.Info("Initial appointments loaded")
		}
		cancelStart()
	}

	// Инициализируем handlers
	getAppointments := getAppointmentsHandler.NewHandler(dashboardSvc, log)
	refreshAppointments := refreshAppointmentsHandler.NewHandler(dashboardSvc, log)
	updateFilter := updateFilterHandler.NewHandler(dashboardSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(cfg.Dashboard.BusinessID, transitionUseCase, dashboardSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cfg.Dashboard.BusinessID, transitionUseCase, dashboardSvc, log)
	listTransitions := listTransitionsHandler.NewHandler(cfg.Dashboard.BusinessID, journal, log)
	getPeriodStats := getPeriodStatsHandler.NewHandler(cfg.Dashboard.BusinessID, analyticsSvc, log)
	getAnalyticsDashboard := getAnalyticsDashboardHandler.NewHandler(cfg.Dashboard.BusinessID, analyticsSvc, log)
	getReport := getReportHandler.NewHandler(cfg.Dashboard.BusinessID, analyticsSvc, log)
	renewSession := renewSessionHandler.NewHandler(sessionManager, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check (публичный)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"session": sessionManager.Status(),
		})
	}).Methods(http.MethodGet)

	// API prefix, все маршруты требуют X-User-ID header
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Записи ---
	api.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/refresh", refreshAppointments.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/filter", updateFilter.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// --- Журнал изменений статусов ---
	api.HandleFunc("/transitions", listTransitions.Handle).Methods(http.MethodGet)

	// --- Сессия API барбершопов ---
	api.HandleFunc("/session/renew", renewSession.Handle).Methods(http.MethodPost)

	// --- Аналитика ---
	api.HandleFunc("/analytics/period", getPeriodStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/analytics/dashboard", getAnalyticsDashboard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/analytics/reports", getReport.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
