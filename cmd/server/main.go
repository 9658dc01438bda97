package main

import (
	"log"
	"log/slog"
	"time"

	"backoffice-service/internal/config"
	"backoffice-service/internal/controllers/http"
	"backoffice-service/internal/infra"
	bmysql "backoffice-service/internal/infra/mysql"
	"backoffice-service/internal/infra/rabbitmq"
	mysqlrepo "backoffice-service/internal/repository/mysql"
	"backoffice-service/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := bmysql.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	rateRepo := mysqlrepo.NewRateRepository(db)

	orderClient := infra.NewOrderClient(cfg.OrderServiceURL, cfg.OrderServiceKey, 5*time.Second)
	invoiceClient := infra.NewInvoiceClient(cfg.InvoiceServiceURL, cfg.InvoiceServiceKey, 5*time.Second)
	prober := infra.NewImageProber(5 * time.Second)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL, "backoffice.events")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	editor := services.NewOrderEditor(orderClient, publisher)
	statusService := services.NewStatusService(orderClient, invoiceClient, prober, publisher)
	catalog := services.NewCatalogService(orderClient)
	rates := services.NewRateService(rateRepo)

	if cfg.RedisHost != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisHost + ":6379",
			DB:           0,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		editor.SetRedisClient(redisClient)
		statusService.SetRedisClient(redisClient)
		catalog.SetRedisClient(redisClient)
		rates.SetRedisClient(redisClient)
	}

	handler := http.NewHandler(editor, statusService, catalog, rates)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AdminOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r)

	slog.Info("starting backoffice service", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
