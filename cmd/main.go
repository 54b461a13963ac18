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

	cancelOrderHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/cancel_order"
	createOrderHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/create_order"
	getBestsellersHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/get_bestsellers"
	getDeliveryCalendarHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/get_delivery_calendar"
	getDeliveryOptionsHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/get_delivery_options"
	getDeliveryTypesHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/get_delivery_types"
	getOrderHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/get_order"
	getOrdersHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/get_orders"
	manageBestsellersHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/manage_bestsellers"
	trackOrderHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/track_order"
	updateDeliveryTypeHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/update_delivery_type"
	updateOrderStatusHandler "github.com/m04kA/SMC-BakeryService/internal/api/handlers/update_order_status"
	"github.com/m04kA/SMC-BakeryService/internal/api/middleware"
	"github.com/m04kA/SMC-BakeryService/internal/config"
	deliveryTypesCache "github.com/m04kA/SMC-BakeryService/internal/infra/cache/deliverytypes"
	deliveryTypeRepo "github.com/m04kA/SMC-BakeryService/internal/infra/storage/deliverytype"
	orderRepo "github.com/m04kA/SMC-BakeryService/internal/infra/storage/order"
	productRepo "github.com/m04kA/SMC-BakeryService/internal/infra/storage/product"
	cartServiceClient "github.com/m04kA/SMC-BakeryService/internal/integrations/cartservice"
	bestsellersService "github.com/m04kA/SMC-BakeryService/internal/service/bestsellers"
	catalogService "github.com/m04kA/SMC-BakeryService/internal/service/catalog"
	"github.com/m04kA/SMC-BakeryService/internal/service/delivery"
	ordersService "github.com/m04kA/SMC-BakeryService/internal/service/orders"
	createOrderUC "github.com/m04kA/SMC-BakeryService/internal/usecase/create_order"
	getDeliveryCalendarUC "github.com/m04kA/SMC-BakeryService/internal/usecase/get_delivery_calendar"
	getDeliveryOptionsUC "github.com/m04kA/SMC-BakeryService/internal/usecase/get_delivery_options"
	"github.com/m04kA/SMC-BakeryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BakeryService/pkg/logger"
	"github.com/m04kA/SMC-BakeryService/pkg/metrics"
	"github.com/m04kA/SMC-BakeryService/pkg/txmanager"
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

	log.Info("Starting SMC-BakeryService...")
	log.Info("Configuration loaded from config.toml")

	// Настройки планировщика доставки
	deliverySettings, err := cfg.DeliverySettings()
	if err != nil {
		log.Fatal("Invalid delivery settings: %v", err)
	}

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

	// Без метрик обертка просто проксирует вызовы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txManager := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	orderRepository := orderRepo.NewRepository(wrappedDB)
	deliveryTypeRepository := deliveryTypeRepo.NewRepository(wrappedDB)
	productRepository := productRepo.NewRepository(wrappedDB)

	// Кэш каталога доставки (опционально)
	var (
		redisClient   *redis.Client
		deliveryCache catalogService.DeliveryTypeCache
	)
	if cfg.Cache.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, catalog will be read from database: %v", cfg.Cache.Addr, err)
		}
		deliveryCache = deliveryTypesCache.NewCache(redisClient, time.Duration(cfg.Cache.TTL)*time.Second)
		log.Info("Delivery types cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Инициализируем интеграционных клиентов
	cartClient := cartServiceClient.NewClient(
		cfg.CartService.URL,
		time.Duration(cfg.CartService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CartService=%s timeout=%ds)",
		cfg.CartService.URL, cfg.CartService.Timeout)

	// Планировщик доставки
	planner := delivery.NewPlanner(deliverySettings)
	log.Info("Delivery planner initialized (tz=%s, prep=%dh, buffer=%dm, cutoff=%d:00, advance=%dd)",
		cfg.Delivery.Timezone,
		deliverySettings.DefaultPreparationHours,
		deliverySettings.SafetyBufferMinutes,
		deliverySettings.SameDayCutoffHour,
		deliverySettings.AdvanceOrderDays,
	)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(deliveryTypeRepository, deliveryCache, txManager, log)
	ordersSvc := ordersService.NewService(orderRepository, cfg.Admin, txManager, log)
	bestsellersSvc := bestsellersService.NewService(productRepository, txManager, log)

	// Инициализируем use cases
	getDeliveryOptionsUseCase := getDeliveryOptionsUC.NewUseCase(
		catalogSvc,
		cartClient,
		planner,
		metricsCollector,
		log,
	)

	getDeliveryCalendarUseCase := getDeliveryCalendarUC.NewUseCase(cartClient, planner, log)

	createOrderUseCase := createOrderUC.NewUseCase(
		orderRepository,
		deliveryTypeRepository,
		cartClient,
		planner,
		txManager,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getDeliveryTypes := getDeliveryTypesHandler.NewHandler(catalogSvc, log)
	getDeliveryOptions := getDeliveryOptionsHandler.NewHandler(getDeliveryOptionsUseCase, log)
	getDeliveryCalendar := getDeliveryCalendarHandler.NewHandler(getDeliveryCalendarUseCase, log)
	trackOrder := trackOrderHandler.NewHandler(ordersSvc, log)
	getBestsellers := getBestsellersHandler.NewHandler(bestsellersSvc, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	cancelOrder := cancelOrderHandler.NewHandler(ordersSvc, log)
	getOrders := getOrdersHandler.NewHandler(ordersSvc, log)
	updateOrderStatus := updateOrderStatusHandler.NewHandler(ordersSvc, log)
	updateDeliveryType := updateDeliveryTypeHandler.NewHandler(catalogSvc, log)
	manageBestsellers := manageBestsellersHandler.NewHandler(bestsellersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог типов доставки
	api.HandleFunc("/delivery-types", getDeliveryTypes.Handle).Methods(http.MethodGet)

	// Варианты доставки на дату
	api.HandleFunc("/delivery/options", getDeliveryOptions.Handle).Methods(http.MethodPost)

	// Календарь доступных дат
	api.HandleFunc("/delivery/calendar", getDeliveryCalendar.Handle).Methods(http.MethodPost)

	// Отслеживание заказа по коду
	api.HandleFunc("/orders/track/{trackingCode}", trackOrder.Handle).Methods(http.MethodGet)

	// Хиты продаж
	api.HandleFunc("/bestsellers", getBestsellers.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-ID из списка администраторов)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.RequireAdmin(cfg.Admin))

	// --- Заказы ---
	admin.HandleFunc("/orders", getOrders.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{orderId}/status", updateOrderStatus.Handle).Methods(http.MethodPatch)

	// --- Каталог доставки ---
	admin.HandleFunc("/delivery-types/{deliveryTypeId}", updateDeliveryType.Handle).Methods(http.MethodPut)

	// --- Хиты продаж ---
	admin.HandleFunc("/bestsellers/swap", manageBestsellers.Swap).Methods(http.MethodPost)
	admin.HandleFunc("/bestsellers/{productId}", manageBestsellers.Add).Methods(http.MethodPut)
	admin.HandleFunc("/bestsellers/{productId}", manageBestsellers.Remove).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Оформление заказа
	protected.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	// Получение заказа по ID
	protected.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)

	// Отмена заказа
	protected.HandleFunc("/orders/{orderId}/cancel", cancelOrder.Handle).Methods(http.MethodPatch)

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

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Warn("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
