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
	"github.com/redis/go-redis/v9"

	activatePackageHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/activate_package"
	blockUserHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/block_user"
	bookFirstSessionHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/book_first_session"
	createBookingHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/create_booking"
	deleteUserHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/delete_user"
	getAvailabilityHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/get_availability"
	getBookingsHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/get_bookings"
	getCustomerBookingsHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/get_customer_bookings"
	getScheduleHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/get_schedule"
	getWaitlistHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/get_waitlist"
	giftSessionsHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/gift_sessions"
	inviteWaitlistHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/invite_waitlist"
	purchasePackageHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/purchase_package"
	setUserPaymentHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/set_user_payment"
	updateReservationStatusHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/update_reservation_status"
	updateScheduleHandler "github.com/m04kA/WN-BookingService/internal/api/handlers/update_schedule"
	"github.com/m04kA/WN-BookingService/internal/api/middleware"
	"github.com/m04kA/WN-BookingService/internal/app"
	"github.com/m04kA/WN-BookingService/internal/config"
	availabilityCache "github.com/m04kA/WN-BookingService/internal/infra/cache/availability"
	bookingRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/customer"
	pkgaccountRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/pkgaccount"
	scheduleRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/schedule"
	waitlistRepo "github.com/m04kA/WN-BookingService/internal/infra/storage/waitlist"
	mailerClient "github.com/m04kA/WN-BookingService/internal/integrations/mailer"
	bookingsService "github.com/m04kA/WN-BookingService/internal/service/bookings"
	customersService "github.com/m04kA/WN-BookingService/internal/service/customers"
	packagesService "github.com/m04kA/WN-BookingService/internal/service/packages"
	scheduleService "github.com/m04kA/WN-BookingService/internal/service/schedule"
	waitlistService "github.com/m04kA/WN-BookingService/internal/service/waitlist"
	createBookingUC "github.com/m04kA/WN-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/WN-BookingService/internal/usecase/get_availability"
	purchasePackageUC "github.com/m04kA/WN-BookingService/internal/usecase/purchase_package"
	"github.com/m04kA/WN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WN-BookingService/pkg/logger"
	"github.com/m04kA/WN-BookingService/pkg/metrics"
	"github.com/m04kA/WN-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/WN-BookingService/pkg/txmanager"
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

	log.Info("Starting WN-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Применяем миграции
	if cfg.Migrations.Auto {
		migrator, err := app.NewMigrator(db, cfg.Migrations.Dir)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to get migrations version: %v", err)
		}
		log.Info("Migrations applied, schema version=%d", version)
	}

	// Подключаемся к redis для кэша снапшотов доступности
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	cache := availabilityCache.NewCache(redisClient, time.Duration(cfg.Redis.AvailabilityTTL)*time.Second)

	// Инициализируем клиент сервиса рассылки (или заглушку, если выключен)
	var mailer mailerClient.Sender
	if cfg.Mailer.Enabled {
		mailer = mailerClient.NewClient(
			cfg.Mailer.URL,
			time.Duration(cfg.Mailer.Timeout)*time.Second,
			log,
		)
		log.Info("Mailer client initialized (url=%s, timeout=%ds)", cfg.Mailer.URL, cfg.Mailer.Timeout)
	} else {
		mailer = mailerClient.NewDisabledClient(log)
		log.Info("Mailer disabled, emails will not be sent")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		packageRepository  *pkgaccountRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		customerRepository *customerRepo.Repository
		waitlistRepository *waitlistRepo.Repository
	)

	// Интерфейс transaction manager, общий для usecases и сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		packageRepository = pkgaccountRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		waitlistRepository = waitlistRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		packageRepository = pkgaccountRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		waitlistRepository = waitlistRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, cache, log)
	packageSvc := packagesService.NewService(packageRepository, mailer, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, cache, log)
	waitlistSvc := waitlistService.NewService(waitlistRepository, mailer, log)
	customerSvc := customersService.NewService(
		bookingRepository,
		packageRepository,
		waitlistRepository,
		customerRepository,
		cache,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		packageRepository,
		scheduleRepository,
		customerRepository,
		cache,
		mailer,
		txMgr,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		cache,
		log,
	)
	purchasePackageUseCase := purchasePackageUC.NewUseCase(
		packageRepository,
		waitlistRepository,
		customerRepository,
		mailer,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	purchasePackage := purchasePackageHandler.NewHandler(purchasePackageUseCase, log)
	bookFirstSession := bookFirstSessionHandler.NewHandler(createBookingUseCase, packageSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(bookingSvc, log)
	activatePackage := activatePackageHandler.NewHandler(packageSvc, log)
	setUserPayment := setUserPaymentHandler.NewHandler(packageSvc, log)
	giftSessions := giftSessionsHandler.NewHandler(packageSvc, log)
	blockUser := blockUserHandler.NewHandler(customerSvc, log)
	deleteUser := deleteUserHandler.NewHandler(customerSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	getWaitlist := getWaitlistHandler.NewHandler(waitlistSvc, log)
	inviteWaitlist := inviteWaitlistHandler.NewHandler(waitlistSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Снапшоты доступности слотов
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Покупка пакета занятий
	api.HandleFunc("/packages", purchasePackage.Handle).Methods(http.MethodPost)

	// Первая запись по купленному пакету
	api.HandleFunc("/packages/{packageId}/first-session", bookFirstSession.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	api.HandleFunc("/customers/{email}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// --- Журнал бронирований ---
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{bookingId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Пакеты ---
	admin.HandleFunc("/packages/{packageId}/activate", activatePackage.Handle).Methods(http.MethodPost)

	// --- Клиенты ---
	admin.HandleFunc("/admin/users/{email}/payment", setUserPayment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/admin/users/{email}/gift", giftSessions.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/admin/users/{email}/block", blockUser.HandleBlock).Methods(http.MethodPost)
	admin.HandleFunc("/admin/users/{email}/block", blockUser.HandleUnblock).Methods(http.MethodDelete)
	admin.HandleFunc("/admin/users/{email}", deleteUser.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	admin.HandleFunc("/admin/schedule", getSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/schedule", updateSchedule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/admin/schedule/blocked-dates/{date}", updateSchedule.HandleBlockDate).Methods(http.MethodPost)
	admin.HandleFunc("/admin/schedule/blocked-dates/{date}", updateSchedule.HandleUnblockDate).Methods(http.MethodDelete)

	// --- Лист ожидания ---
	admin.HandleFunc("/admin/waitlist", getWaitlist.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/admin/waitlist/{email}/invite", inviteWaitlist.Handle).Methods(http.MethodPost)

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
