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
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/NSS-ScheduleService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/NSS-ScheduleService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/NSS-ScheduleService/internal/api/handlers/get_appointment"
	getAvailableTimesHandler "github.com/m04kA/NSS-ScheduleService/internal/api/handlers/get_available_times"
	getDayScheduleHandler "github.com/m04kA/NSS-ScheduleService/internal/api/handlers/get_day_schedule"
	getWeekOverviewHandler "github.com/m04kA/NSS-ScheduleService/internal/api/handlers/get_week_overview"
	"github.com/m04kA/NSS-ScheduleService/internal/api/middleware"
	"github.com/m04kA/NSS-ScheduleService/internal/config"
	appointmentRepo "github.com/m04kA/NSS-ScheduleService/internal/infra/storage/appointment"
	appointmentsService "github.com/m04kA/NSS-ScheduleService/internal/service/appointments"
	createAppointmentUC "github.com/m04kA/NSS-ScheduleService/internal/usecase/create_appointment"
	getAvailableTimesUC "github.com/m04kA/NSS-ScheduleService/internal/usecase/get_available_times"
	getDayScheduleUC "github.com/m04kA/NSS-ScheduleService/internal/usecase/get_day_schedule"
	getWeekOverviewUC "github.com/m04kA/NSS-ScheduleService/internal/usecase/get_week_overview"
	"github.com/m04kA/NSS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/NSS-ScheduleService/pkg/logger"
	"github.com/m04kA/NSS-ScheduleService/pkg/metrics"
	"github.com/m04kA/NSS-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/NSS-ScheduleService/pkg/sqlbuilder"
	"github.com/m04kA/NSS-ScheduleService/pkg/txmanager"
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

	log.Info("Starting NSS-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу
	db, err := sql.Open(cfg.Storage.Driver, cfg.Storage.DSN())
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Storage.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Storage.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Storage.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping storage: %v", err)
	}
	log.Info("Successfully connected to storage (driver=%s)", cfg.Storage.Driver)

	qb := sqlbuilder.New(cfg.Storage.Dialect())

	// Инициализируем репозиторий (с метриками или без)
	var apptRepository *appointmentRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		apptRepository = appointmentRepo.NewRepository(wrappedDB, qb)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		apptRepository = appointmentRepo.NewRepository(db, qb)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Создаем схему хранилища (идемпотентно)
	if err := apptRepository.Migrate(context.Background()); err != nil {
		log.Fatal("Failed to migrate storage schema: %v", err)
	}
	log.Info("Storage schema is up to date")

	// Инициализируем сервисы
	apptSvc := appointmentsService.NewService(apptRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(apptRepository, txMgr, log)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(apptRepository, log)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(apptRepository, log)
	getWeekOverviewUseCase := getWeekOverviewUC.NewUseCase(apptRepository, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getWeekOverview := getWeekOverviewHandler.NewHandler(getWeekOverviewUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(apptSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(apptSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Расписание ---
	// Обзор недели (неделя начинается с понедельника)
	api.HandleFunc("/schedule/week", getWeekOverview.Handle).Methods(http.MethodGet)

	// Детальное расписание дня
	api.HandleFunc("/schedule/days/{date}", getDaySchedule.Handle).Methods(http.MethodGet)

	// Доступное время начала для заданной длительности
	api.HandleFunc("/schedule/days/{date}/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Удаление записи
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

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
