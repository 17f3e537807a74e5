package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	bookingStatsHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/booking_stats"
	cancelBookingHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/cancel_booking"
	catalogHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/catalog"
	createBookingHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/get_booking"
	getQuoteHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/get_quote"
	healthHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/list_bookings"
	updateBookingStatusHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/update_booking_status"
	updateSlotStatusHandler "github.com/m04kA/SmartWash-BookingService/internal/api/handlers/update_slot_status"
	"github.com/m04kA/SmartWash-BookingService/internal/api/middleware"
	"github.com/m04kA/SmartWash-BookingService/internal/config"
	bookingRepo "github.com/m04kA/SmartWash-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SmartWash-BookingService/internal/infra/storage/kv"
	bookingsService "github.com/m04kA/SmartWash-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SmartWash-BookingService/internal/service/catalog"
	slotsService "github.com/m04kA/SmartWash-BookingService/internal/service/slots"
	createBookingUC "github.com/m04kA/SmartWash-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SmartWash-BookingService/internal/usecase/get_available_slots"
	getQuoteUC "github.com/m04kA/SmartWash-BookingService/internal/usecase/get_quote"
	"github.com/m04kA/SmartWash-BookingService/pkg/logger"
	"github.com/m04kA/SmartWash-BookingService/pkg/metrics"
)

const startupTimeout = 15 * time.Second

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
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

	log.Info("Starting SmartWash-BookingService...")
	log.Info("Configuration loaded from %s (storage=%s, timezone=%s)", configPath, cfg.Storage.Backend, cfg.Storage.Timezone)

	location, err := cfg.Storage.Location()
	if err != nil {
		log.Fatal("Invalid timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем хранилище
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	st, err := openStorage(startupCtx, cfg, metricsCollector, stopMetricsCh, log)
	cancelStartup()
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Backend, err)
	}
	defer st.close()

	var store kv.TransactionalStore = st.store
	if metricsCollector != nil {
		store = kv.Instrument(store, cfg.Storage.Backend, metricsCollector)
	}

	// Репозиторий: store и менеджер транзакций - одно и то же хранилище
	bookingRepository := bookingRepo.NewRepository(
		store,
		store,
		&bookingRepo.RealTimeProvider{Location: location},
		log,
	)

	// Когда метрики выключены, передаём nil-интерфейс, а не nil-указатель
	var (
		createMetrics  createBookingUC.Metrics
		bookingMetrics bookingsService.Metrics
	)
	if metricsCollector != nil {
		createMetrics = metricsCollector
		bookingMetrics = metricsCollector
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, bookingMetrics, log)
	slotSvc := slotsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		&bookingRepo.RealTimeProvider{Location: location},
		createMetrics,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, log)
	getQuoteUseCase := getQuoteUC.NewUseCase(log)

	// Инициализируем handlers
	catalogH := catalogHandler.NewHandler(catalogSvc, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	updateSlotStatus := updateSlotStatusHandler.NewHandler(slotSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	bookingStats := bookingStatsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	healthH := healthHandler.NewHandler(cfg.Storage.Backend, st.pinger, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log), middleware.Logging(log))

	if metricsCollector != nil {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", healthH.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Справочники ---
	api.HandleFunc("/locations", catalogH.Locations).Methods(http.MethodGet)
	api.HandleFunc("/locations/pincode/{pincode}", catalogH.LocationByPincode).Methods(http.MethodGet)
	api.HandleFunc("/services", catalogH.Services).Methods(http.MethodGet)
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodGet)

	// --- Слоты ---
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}", updateSlotStatus.Handle).Methods(http.MethodPatch)

	// --- Бронирования ---
	// /bookings/stats регистрируется раньше /bookings/{bookingId}
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/stats", bookingStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
