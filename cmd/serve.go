package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	cancelAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/cancel_appointment"
	createBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_booking"
	deleteWorkerOverrideHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/delete_worker_override"
	getAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getUserAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_user_appointments"
	getVendorAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_vendor_appointments"
	getWorkerScheduleHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_worker_schedule"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_appointment_status"
	updateWorkerAvailabilityHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/update_worker_availability"
	upsertWorkerOverrideHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/upsert_worker_override"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/migrations"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
	scheduleRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/schedule"
	vendorRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/vendor"
	workerRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/worker"
	appointmentsService "github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	schedulesService "github.com/m04kA/SMC-SalonBooking/internal/service/schedules"
	createBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/txmanager"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, migrateUp)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply database migrations before start")
	return cmd
}

func runServer(ctx context.Context, configPath string, migrateUp bool) error {
	cfg, log, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting SMC-SalonBooking %s...", Version)
	log.Info("Configuration loaded from %s", configPath)

	policy, err := cfg.Booking.Policy()
	if err != nil {
		return fmt.Errorf("booking policy: %w", err)
	}
	log.Info("Booking policy: interval=%dm, min_notice=%dm, timezone=%s",
		policy.SlotIntervalMinutes, policy.MinBookingNoticeMinutes, policy.Location)

	// Подключаемся к базе данных
	db, err := openDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if migrateUp {
		migrator, err := migrations.NewMigrator(db, log)
		if err != nil {
			return err
		}
		if err := migrator.Up(ctx); err != nil {
			return err
		}
	}

	// Метрики пишутся только при включенном сборе, иначе обертка работает без recorder
	var (
		metricsCollector *metrics.Metrics
		wrappedDB        *dbmetrics.DB
	)
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	vendorRepository := vendorRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	workerRepository := workerRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, vendorRepository, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, workerRepository, vendorRepository, log)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		vendorRepository,
		catalogRepository,
		workerRepository,
		scheduleRepository,
		policy,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		vendorRepository,
		catalogRepository,
		workerRepository,
		scheduleRepository,
		txMgr,
		policy,
		log,
	)

	router := newRouter(routerDeps{
		getAvailableSlots:        getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		getWorkerSchedule:        getWorkerScheduleHandler.NewHandler(scheduleSvc, log),
		createBooking:            createBookingHandler.NewHandler(createBookingUseCase, log),
		getAppointment:           getAppointmentHandler.NewHandler(appointmentSvc, log),
		cancelAppointment:        cancelAppointmentHandler.NewHandler(appointmentSvc, log),
		updateAppointmentStatus:  updateAppointmentStatusHandler.NewHandler(appointmentSvc, log),
		getUserAppointments:      getUserAppointmentsHandler.NewHandler(appointmentSvc, log),
		getVendorAppointments:    getVendorAppointmentsHandler.NewHandler(appointmentSvc, log),
		updateWorkerAvailability: updateWorkerAvailabilityHandler.NewHandler(scheduleSvc, log),
		upsertWorkerOverride:     upsertWorkerOverrideHandler.NewHandler(scheduleSvc, log),
		deleteWorkerOverride:     deleteWorkerOverrideHandler.NewHandler(scheduleSvc, log),
	})

	if cfg.Metrics.Enabled {
		router.Use(middleware.MetricsMiddleware(metricsCollector))
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      withRecoveryAndCORS(router, cfg.CORS, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Ожидаем сигнал завершения или падение сервера
	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}

// withRecoveryAndCORS оборачивает роутер в обработку паник и CORS
func withRecoveryAndCORS(h http.Handler, cfg config.CORSConfig, log *logger.Logger) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.UserIDHeader}),
	)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(log),
		handlers.PrintRecoveryStack(true),
	)(cors(h))
}

// routerDeps HTTP обработчики, которые регистрирует роутер
type routerDeps struct {
	getAvailableSlots        *getAvailableSlotsHandler.Handler
	getWorkerSchedule        *getWorkerScheduleHandler.Handler
	createBooking            *createBookingHandler.Handler
	getAppointment           *getAppointmentHandler.Handler
	cancelAppointment        *cancelAppointmentHandler.Handler
	updateAppointmentStatus  *updateAppointmentStatusHandler.Handler
	getUserAppointments      *getUserAppointmentsHandler.Handler
	getVendorAppointments    *getVendorAppointmentsHandler.Handler
	updateWorkerAvailability *updateWorkerAvailabilityHandler.Handler
	upsertWorkerOverride     *upsertWorkerOverrideHandler.Handler
	deleteWorkerOverride     *deleteWorkerOverrideHandler.Handler
}

func newRouter(d routerDeps) *mux.Router {
	r := mux.NewRouter()

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (X-User-ID необязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// Свободные слоты салона на дату
	public.HandleFunc("/vendors/{vendorId}/available-slots", d.getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расписание мастера
	public.HandleFunc("/workers/{workerId}/schedule", d.getWorkerSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", d.createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", d.getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/cancel", d.cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/status", d.updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/appointments", d.getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для владельца) ---
	protected.HandleFunc("/vendors/{vendorId}/appointments", d.getVendorAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/workers/{workerId}/availability/{dayOfWeek}", d.updateWorkerAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/workers/{workerId}/overrides/{date}", d.upsertWorkerOverride.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/workers/{workerId}/overrides/{date}", d.deleteWorkerOverride.Handle).Methods(http.MethodDelete)

	return r
}
