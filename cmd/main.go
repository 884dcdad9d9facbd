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

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	supa "github.com/supabase-community/supabase-go"

	"github.com/m04kA/SMC-CoachingService/internal/api"
	"github.com/m04kA/SMC-CoachingService/internal/api/handlers/healthz"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/config"
	"github.com/m04kA/SMC-CoachingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/appointment"
	contactRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/contact"
	"github.com/m04kA/SMC-CoachingService/internal/infra/storage/memory"
	roleRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/role"
	slotRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/slot"
	supabaseStorage "github.com/m04kA/SMC-CoachingService/internal/infra/storage/supabase"
	"github.com/m04kA/SMC-CoachingService/internal/integrations/identity"
	"github.com/m04kA/SMC-CoachingService/internal/integrations/mailer"
	appointmentsService "github.com/m04kA/SMC-CoachingService/internal/service/appointments"
	contactsService "github.com/m04kA/SMC-CoachingService/internal/service/contacts"
	notificationsService "github.com/m04kA/SMC-CoachingService/internal/service/notifications"
	slotsService "github.com/m04kA/SMC-CoachingService/internal/service/slots"
	createBookingUC "github.com/m04kA/SMC-CoachingService/internal/usecase/create_booking"
	generateSlotsUC "github.com/m04kA/SMC-CoachingService/internal/usecase/generate_slots"
	rescheduleBookingUC "github.com/m04kA/SMC-CoachingService/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-CoachingService/internal/usecase/reservation"
	"github.com/m04kA/SMC-CoachingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
	"github.com/m04kA/SMC-CoachingService/pkg/metrics"
	"github.com/m04kA/SMC-CoachingService/pkg/txmanager"
)

type slotStore interface {
	reservation.SlotRepository
	appointmentsService.SlotRepository
	slotsService.SlotRepository
	generateSlotsUC.SlotRepository
}

type appointmentStore interface {
	reservation.AppointmentRepository
	createBookingUC.AppointmentRepository
	rescheduleBookingUC.AppointmentRepository
	appointmentsService.AppointmentRepository
}

type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage набор репозиториев выбранного драйвера
type storage struct {
	slots        slotStore
	appointments appointmentStore
	contacts     contactsService.ContactRepository
	roles        middleware.RoleRepository
	tx           txManager
	pinger       healthz.Pinger
	close        func() error
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

	log.Info("Starting SMC-CoachingService...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем хранилище
	var store *storage
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		store, err = openPostgres(cfg, metricsCollector, stopMetricsCh, log)
	case config.DriverSupabase:
		store, err = openSupabase(cfg)
	case config.DriverMemory:
		store = openMemory(cfg)
		log.Warn("In-memory storage is used, data will be lost on restart")
	}
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}
	defer store.close()

	// Почта
	var sender notificationsService.Sender
	if cfg.SMTP.Enabled {
		sender = mailer.NewClient(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, log)
		log.Info("SMTP mailer initialized (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		sender = mailer.NewNopClient(log)
		log.Warn("SMTP is disabled, emails will only be logged")
	}

	// Интерфейсы с nil-проверкой внутри: не передаём типизированный nil
	var (
		bookingMetrics      createBookingUC.Metrics
		notificationMetrics notificationsService.Metrics
		transitionMetrics   appointmentsService.Metrics
		contactMetrics      contactsService.Metrics
		httpMetrics         middleware.MetricsRecorder
	)
	if metricsCollector != nil {
		bookingMetrics = metricsCollector
		notificationMetrics = metricsCollector
		transitionMetrics = metricsCollector
		contactMetrics = metricsCollector
		httpMetrics = metricsCollector
	}

	// Инициализируем сервисы
	notifier := notificationsService.NewService(
		sender,
		cfg.SMTP.BusinessInbox,
		cfg.SMTP.BusinessName,
		notificationMetrics,
		log,
	)
	reserver := reservation.NewReserver(store.slots, store.appointments, log)

	appointmentsSvc := appointmentsService.NewService(
		store.appointments,
		store.slots,
		notifier,
		store.tx,
		transitionMetrics,
		log,
		cfg.Booking.ReleaseSlotOnCancel,
	)
	slotsSvc := slotsService.NewService(store.slots, store.tx, log)
	contactsSvc := contactsService.NewService(store.contacts, notifier, contactMetrics, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store.appointments,
		reserver,
		notifier,
		store.tx,
		bookingMetrics,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		store.appointments,
		reserver,
		notifier,
		store.tx,
		log,
	)

	generateSlotsUseCase := generateSlotsUC.NewUseCase(store.slots, store.tx, log)

	auth := middleware.NewAuth(identity.NewVerifier(cfg.Auth.JWTSecret), store.roles, log)

	// Rate limit публичных форм (если включен Redis)
	var limiter *middleware.RateLimiter
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unreachable at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		limiter = middleware.NewRateLimiter(
			rdb,
			cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
			"coaching:ratelimit",
			cfg.RateLimit.FailOpen,
			cfg.RateLimit.TrustForwardedFor,
			log,
		)
		log.Info("Rate limit enabled: %d requests per %ds", cfg.RateLimit.Limit, cfg.RateLimit.WindowSeconds)
	}

	deps := api.Deps{
		CreateBooking:     createBookingUseCase,
		RescheduleBooking: rescheduleBookingUseCase,
		GenerateSlots:     generateSlotsUseCase,
		Appointments:      appointmentsSvc,
		Slots:             slotsSvc,
		Contacts:          contactsSvc,
		Auth:              auth,
		RateLimiter:       limiter,
		Metrics:           httpMetrics,
		Pinger:            store.pinger,
		Logger:            log,
	}
	if cfg.Metrics.Enabled {
		deps.MetricsPath = cfg.Metrics.Path
		deps.MetricsHandle = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(deps)

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

func openPostgres(cfg *config.Config, collector *metrics.Metrics, stopCh <-chan struct{}, log *logger.Logger) (*storage, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if collector != nil {
		wrappedDB = dbmetrics.WrapWithDefault(db, collector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	return &storage{
		slots:        slotRepo.NewRepository(wrappedDB),
		appointments: appointmentRepo.NewRepository(wrappedDB),
		contacts:     contactRepo.NewRepository(wrappedDB),
		roles:        roleRepo.NewRepository(wrappedDB),
		tx:           txmanager.New(wrappedDB, log),
		pinger:       db,
		close:        db.Close,
	}, nil
}

func openSupabase(cfg *config.Config) (*storage, error) {
	client, err := supa.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}

	return &storage{
		slots:        supabaseStorage.NewSlotRepository(client),
		appointments: supabaseStorage.NewAppointmentRepository(client),
		contacts:     supabaseStorage.NewContactRepository(client),
		roles:        supabaseStorage.NewRoleRepository(client),
		tx:           txmanager.NopManager{},
		close:        func() error { return nil },
	}, nil
}

func openMemory(cfg *config.Config) *storage {
	store := memory.NewStore()
	for _, id := range cfg.Auth.AdminUserIDs {
		store.SetRole(id, domain.RoleAdmin)
	}

	return &storage{
		slots:        store.Slots(),
		appointments: store.Appointments(),
		contacts:     store.Contacts(),
		roles:        store.Roles(),
		tx:           store,
		close:        func() error { return nil },
	}
}
