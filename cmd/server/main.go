package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jatin-yadav05/hospital-management/internal/cache"
	"github.com/jatin-yadav05/hospital-management/internal/catalog"
	"github.com/jatin-yadav05/hospital-management/internal/events"
	h "github.com/jatin-yadav05/hospital-management/internal/http"
	"github.com/jatin-yadav05/hospital-management/internal/orders"
	"github.com/jatin-yadav05/hospital-management/internal/repository"
	"github.com/jatin-yadav05/hospital-management/internal/service"
)

type Config struct {
	HTTPPort string

	MongoURI    string
	MongoDBName string

	RedisAddr     string
	RedisPassword string

	CatalogDBPath         string
	CatalogMigrationsPath string

	OrdersDB *orders.Credentials

	KafkaBrokers []string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		MongoURI:              getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:           getEnv("MONGO_DB_NAME", "hospitaldb"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		CatalogDBPath:         getEnv("CATALOG_DB_PATH", "catalog.db"),
		CatalogMigrationsPath: getEnv("CATALOG_MIGRATIONS_PATH", "migrations/catalog"),
		OrdersDB: &orders.Credentials{
			Host:              getEnv("POSTGRES_HOST", "localhost"),
			Port:              getEnvInt("POSTGRES_PORT", 5432),
			User:              getEnv("POSTGRES_USER", "postgres"),
			Password:          getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:            getEnv("POSTGRES_DB", "ordersdb"),
			MigrationsDirPath: getEnv("ORDERS_MIGRATIONS_PATH", "migrations/orders"),
		},
		KafkaBrokers:    []string{getEnv("KAFKA_BROKER", "localhost:9092")},
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, os.Getenv(key), defaultValue)
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// MongoDB holds the cart, appointment, profile and metrics documents.
	mongoDB, err := repository.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Client().Disconnect(ctx)
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	if err := repository.EnsureCartIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("Failed to create cart indexes: %v", err)
	}

	cartRepo := repository.NewMongoCartRepository(mongoDB)
	appointmentRepo := repository.NewMongoAppointmentRepository(mongoDB)
	patientRepo := repository.NewMongoPatientRepository(mongoDB)
	metricsRepo := repository.NewMongoMetricsRepository(mongoDB)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")
	cartCache := cache.NewRedisCache(redisClient)

	// SQLite backs the medicine and doctor catalog.
	catalogRepo, err := catalog.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer catalogRepo.Close()
	if err := catalogRepo.RunMigrations(cfg.CatalogMigrationsPath); err != nil {
		log.Fatalf("Failed to run catalog migrations: %v", err)
	}
	log.Printf("Catalog ready at %s", cfg.CatalogDBPath)

	// Postgres holds the order history.
	orderRepo, err := orders.NewRepository(cfg.OrdersDB)
	if err != nil {
		log.Fatalf("Failed to connect to orders database: %v", err)
	}
	defer orderRepo.Close()
	if err := orderRepo.RunMigrations(cfg.OrdersDB); err != nil {
		log.Fatalf("Failed to run orders migrations: %v", err)
	}
	log.Printf("Orders database ready at %s:%d", cfg.OrdersDB.Host, cfg.OrdersDB.Port)

	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers...)
	defer publisher.Close()

	cartService := service.NewCartService(cartRepo, cartCache)
	checkoutService := service.NewCheckoutService(cartService, catalogRepo, orderRepo, publisher)
	appointmentService := service.NewAppointmentService(appointmentRepo)
	profileService := service.NewProfileService(patientRepo)
	metricsService := service.NewMetricsService(metricsRepo)

	// The cart-clearing consumer empties carts once the order-created
	// event lands, decoupling checkout latency from cart cleanup.
	consumer := events.NewConsumer(cartRepo, cartCache, cfg.KafkaBrokers...)
	defer consumer.Close()
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	defer stopConsumer()
	go consumer.Run(consumerCtx)

	router := h.NewRouter(h.RouterDeps{
		Cart:         h.NewCartHandler(cartService, catalogRepo, cfg.RequestTimeout),
		Checkout:     h.NewCheckoutHandler(checkoutService, cfg.RequestTimeout),
		Orders:       h.NewOrdersHandler(orderRepo, cfg.RequestTimeout),
		Catalog:      h.NewCatalogHandler(catalogRepo, cfg.RequestTimeout),
		Appointments: h.NewAppointmentHandler(appointmentService, cfg.RequestTimeout),
		Metrics:      h.NewMetricsHandler(metricsService, cfg.RequestTimeout),
		Profile:      h.NewProfileHandler(profileService, cfg.RequestTimeout),
		Verifier:     h.DevVerifier{},
	}, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "hospital-management"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	stopConsumer()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
