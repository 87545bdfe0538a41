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

	cancelBookingHandler "github.com/pradita-lab/Lab-BookingService/internal/api/handlers/cancel_booking"
	checkDailyLimitHandler "github.com/pradita-lab/Lab-BookingService/internal/api/handlers/check_daily_limit"
	createBookingHandler "github.com/pradita-lab/Lab-BookingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/pradita-lab/Lab-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/pradita-lab/Lab-BookingService/internal/api/handlers/get_booking"
	getFacilityHandler "github.com/pradita-lab/Lab-BookingService/internal/api/handlers/get_facility"
	getUserBookingsHandler "github.com/pradita-lab/Lab-BookingService/internal/api/handlers/get_user_bookings"
	listFacilitiesHandler "github.com/pradita-lab/Lab-BookingService/internal/api/handlers/list_facilities"
	"github.com/pradita-lab/Lab-BookingService/internal/api/middleware"
	"github.com/pradita-lab/Lab-BookingService/internal/config"
	"github.com/pradita-lab/Lab-BookingService/internal/domain"
	bookingRepo "github.com/pradita-lab/Lab-BookingService/internal/infra/storage/booking"
	facilityRepo "github.com/pradita-lab/Lab-BookingService/internal/infra/storage/facility"
	"github.com/pradita-lab/Lab-BookingService/internal/infra/storage/memstore"
	bookingsService "github.com/pradita-lab/Lab-BookingService/internal/service/bookings"
	facilitiesService "github.com/pradita-lab/Lab-BookingService/internal/service/facilities"
	checkDailyLimitUC "github.com/pradita-lab/Lab-BookingService/internal/usecase/check_daily_limit"
	createBookingUC "github.com/pradita-lab/Lab-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/pradita-lab/Lab-BookingService/internal/usecase/get_availability"
	"github.com/pradita-lab/Lab-BookingService/pkg/dbmetrics"
	"github.com/pradita-lab/Lab-BookingService/pkg/logger"
	"github.com/pradita-lab/Lab-BookingService/pkg/metrics"
	"github.com/pradita-lab/Lab-BookingService/pkg/simpletxmanager"
	"github.com/pradita-lab/Lab-BookingService/pkg/txmanager"
)

// bookingStorage объединённый контракт хранилища бронирований,
// который реализуют и Postgres репозиторий, и in-memory store
type bookingStorage interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string, statuses []domain.BookingStatus) ([]*domain.Booking, error)
	GetByFacilityAndDate(ctx context.Context, facilityID, date string, statuses []domain.BookingStatus) ([]*domain.Booking, error)
	CountByUserAndDate(ctx context.Context, userID, date string, status domain.BookingStatus) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

// facilityStorage объединённый контракт каталога объектов
type facilityStorage interface {
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
}

// txManager контракт транзакций для критической секции бронирования
type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting Lab-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище: Postgres или in-memory
	var (
		bookingStore  bookingStorage
		facilityStore facilityStorage
		txMgr         txManager
	)

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		store := memstore.NewStore()
		memstore.SeedFacilities(store)

		bookingStore = store
		facilityStore = store.Facilities()
		txMgr = memstore.NewTxManager()
		log.Info("Using in-memory storage backend")

	default:
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			bookingStore = bookingRepo.NewRepository(wrappedDB)
			facilityStore = facilityRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			bookingStore = bookingRepo.NewRepository(db)
			facilityStore = facilityRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingStore, log)
	facilitySvc := facilitiesService.NewService(facilityStore, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingStore, facilityStore, txMgr, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingStore, facilityStore, log)
	checkDailyLimitUseCase := checkDailyLimitUC.NewUseCase(bookingStore, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	checkDailyLimit := checkDailyLimitHandler.NewHandler(checkDailyLimitUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listFacilities := listFacilitiesHandler.NewHandler(facilitySvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог объектов
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{id}", getFacility.Handle).Methods(http.MethodGet)

	// Доступность объекта на дату
	api.HandleFunc("/facilities/{id}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// Предварительная проверка дневного лимита
	// Регистрируется до /bookings/{id}, иначе check-limit матчится как ID
	protected.HandleFunc("/bookings/check-limit", checkDailyLimit.Handle).Methods(http.MethodGet)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

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
