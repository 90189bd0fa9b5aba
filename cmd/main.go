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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/littlelemon-chicago/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/littlelemon-chicago/booking-service/internal/api/handlers/create_booking"
	getAvailableTimesHandler "github.com/littlelemon-chicago/booking-service/internal/api/handlers/get_available_times"
	getBookingHandler "github.com/littlelemon-chicago/booking-service/internal/api/handlers/get_booking"
	getBookingWindowHandler "github.com/littlelemon-chicago/booking-service/internal/api/handlers/get_booking_window"
	getDayBookingsHandler "github.com/littlelemon-chicago/booking-service/internal/api/handlers/get_day_bookings"
	"github.com/littlelemon-chicago/booking-service/internal/api/middleware"
	"github.com/littlelemon-chicago/booking-service/internal/config"
	bookingRepo "github.com/littlelemon-chicago/booking-service/internal/infra/storage/booking"
	bookingsService "github.com/littlelemon-chicago/booking-service/internal/service/bookings"
	createBookingUC "github.com/littlelemon-chicago/booking-service/internal/usecase/create_booking"
	getAvailableTimesUC "github.com/littlelemon-chicago/booking-service/internal/usecase/get_available_times"
	"github.com/littlelemon-chicago/booking-service/pkg/dbmetrics"
	"github.com/littlelemon-chicago/booking-service/pkg/logger"
	"github.com/littlelemon-chicago/booking-service/pkg/metrics"
)

func main() {
	// Подхватываем .env (секреты для локальной разработки)
	_ = godotenv.Load()

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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем сервис staff-операций
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, log)
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	getBookingWindow := getBookingWindowHandler.NewHandler(getAvailableTimesUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Создание бронирования (основной сценарий формы)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Доступные времена на дату
	api.HandleFunc("/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Границы окна бронирования для date-picker'а
	api.HandleFunc("/booking-window", getBookingWindow.Handle).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-Key header)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffAuth(cfg.Auth.StaffKey))

	// Расписание бронирований на день
	staff.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	staff.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	staff.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
