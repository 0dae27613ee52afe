package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyPackageDiscountHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/apply_package_discount"
	blockUserHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/block_user"
	createBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_booking"
	createCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/create_car"
	deleteAddonHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_addon"
	deleteBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_booking"
	deleteCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_car"
	deleteImageHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_image"
	deletePackageHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_package"
	deleteUserHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/delete_user"
	getBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_booking"
	getDiscountHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_discount"
	listAddonsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_addons"
	listBookingsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_bookings"
	listCarsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_cars"
	listImagesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_images"
	listPackagesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_packages"
	listUsersHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_users"
	saveAddonHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/save_addon"
	saveImageHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/save_image"
	savePackageHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/save_package"
	setUserRoleHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/set_user_role"
	updateBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_booking"
	updateCarHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_car"
	updateDiscountHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/update_discount"
	quoteBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/quote_booking"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	addonRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/addon"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	discountRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/discount"
	imageRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/image"
	packageRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentalpackage"
	authServiceClient "github.com/m04kA/SMC-RentalService/internal/integrations/authservice"
	bookingsService "github.com/m04kA/SMC-RentalService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-RentalService/internal/service/catalog"
	discountService "github.com/m04kA/SMC-RentalService/internal/service/discount"
	fleetService "github.com/m04kA/SMC-RentalService/internal/service/fleet"
	usersService "github.com/m04kA/SMC-RentalService/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
	quoteBookingUC "github.com/m04kA/SMC-RentalService/internal/usecase/quote_booking"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
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

	log.Info("Starting SMC-RentalService...")
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

	// Применяем миграции (если указан путь)
	if cfg.Database.MigrationsPath != "" {
		if err := runMigrations(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("Failed to run migrations: %v", err)
		}
		log.Info("Database migrations applied from %s", cfg.Database.MigrationsPath)
	}

	// Инициализируем клиент сервиса аутентификации
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Auth service client initialized (url=%s, timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		carRepository      *carRepo.Repository
		addonRepository    *addonRepo.Repository
		packageRepository  *packageRepo.Repository
		bookingRepository  *bookingRepo.Repository
		discountRepository *discountRepo.Repository
		imageRepository    *imageRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		carRepository = carRepo.NewRepository(wrappedDB)
		addonRepository = addonRepo.NewRepository(wrappedDB)
		packageRepository = packageRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		discountRepository = discountRepo.NewRepository(wrappedDB)
		imageRepository = imageRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		carRepository = carRepo.NewRepository(db)
		addonRepository = addonRepo.NewRepository(db)
		packageRepository = packageRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		discountRepository = discountRepo.NewRepository(db)
		imageRepository = imageRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	fleetSvc := fleetService.NewService(carRepository, imageRepository, log)
	catalogSvc := catalogService.NewService(addonRepository, packageRepository, log)
	discountSvc := discountService.NewService(discountRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, carRepository, log)
	usersSvc := usersService.NewService(authClient, log)

	// Инициализируем use cases
	quoteBookingUseCase := quoteBookingUC.NewUseCase(
		carRepository,
		addonRepository,
		packageRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		carRepository,
		addonRepository,
		packageRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listCars := listCarsHandler.NewHandler(fleetSvc, log)
	createCar := createCarHandler.NewHandler(fleetSvc, log)
	updateCar := updateCarHandler.NewHandler(fleetSvc, log)
	deleteCar := deleteCarHandler.NewHandler(fleetSvc, log)
	listImages := listImagesHandler.NewHandler(fleetSvc, log)
	saveImage := saveImageHandler.NewHandler(fleetSvc, log)
	deleteImage := deleteImageHandler.NewHandler(fleetSvc, log)

	listAddons := listAddonsHandler.NewHandler(catalogSvc, log)
	saveAddon := saveAddonHandler.NewHandler(catalogSvc, log)
	deleteAddon := deleteAddonHandler.NewHandler(catalogSvc, log)
	listPackages := listPackagesHandler.NewHandler(catalogSvc, log)
	savePackage := savePackageHandler.NewHandler(catalogSvc, log)
	deletePackage := deletePackageHandler.NewHandler(catalogSvc, log)
	applyPackageDiscount := applyPackageDiscountHandler.NewHandler(catalogSvc, log)

	getDiscount := getDiscountHandler.NewHandler(discountSvc, log)
	updateDiscount := updateDiscountHandler.NewHandler(discountSvc, log)

	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)

	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	blockUser := blockUserHandler.NewHandler(usersSvc, log)
	setUserRole := setUserRoleHandler.NewHandler(usersSvc, log)
	deleteUser := deleteUserHandler.NewHandler(usersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix; все маршруты закрыты аутентификацией админ-панели
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(log))

	// --- Автопарк ---
	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars", createCar.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cars/{carId}", updateCar.Handle).Methods(http.MethodPut)
	api.HandleFunc("/cars/{carId}", deleteCar.Handle).Methods(http.MethodDelete)

	// --- Галерея ---
	api.HandleFunc("/gallery", listImages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/gallery", saveImage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/gallery/{imageId}", deleteImage.Handle).Methods(http.MethodDelete)

	// --- Каталог дополнений ---
	api.HandleFunc("/addons", listAddons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/addons", saveAddon.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/addons/{addonId}", saveAddon.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/addons/{addonId}", deleteAddon.Handle).Methods(http.MethodDelete)

	// --- Каталог пакетов ---
	api.HandleFunc("/packages", listPackages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages", savePackage.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/packages/{packageId}", savePackage.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/packages/{packageId}", deletePackage.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/packages/{packageId}/apply-discount", applyPackageDiscount.Handle).Methods(http.MethodPost)

	// --- Онлайн-скидка ---
	api.HandleFunc("/discount", getDiscount.Handle).Methods(http.MethodGet)
	api.HandleFunc("/discount", updateDiscount.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Пользователи ---
	api.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{uid}/block", blockUser.Handle).Methods(http.MethodPut)
	api.HandleFunc("/users/{uid}/role", setUserRole.Handle).Methods(http.MethodPut)
	api.HandleFunc("/users/{uid}", deleteUser.Handle).Methods(http.MethodDelete)

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

// runMigrations применяет SQL миграции поверх открытого соединения
func runMigrations(db *sql.DB, path string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
