package main

import (
	"context"
	"log"
	"os"
	"time"

	"storefront/internal/auth"
	"storefront/internal/controllers/http"
	mmysql "storefront/internal/infra/mysql"
	"storefront/internal/infra/rabbitmq"
	"storefront/internal/metrics"
	mysqlrepo "storefront/internal/repository/mysql"
	"storefront/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	customerRepo := mysqlrepo.NewCustomerRepository(db)
	categoryRepo := mysqlrepo.NewCategoryRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	cartRepo := mysqlrepo.NewCartRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)
	checkoutRepo := mysqlrepo.NewCheckoutRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	issuer := auth.NewTokenIssuer(os.Getenv("JWT_SECRET"), 30*time.Minute)

	customers := services.NewCustomerService(customerRepo, issuer, os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD"))
	catalog := services.NewCatalogService(categoryRepo, productRepo)
	cart := services.NewCartService(cartRepo, productRepo)
	checkout := services.NewCheckoutService(checkoutRepo, publisher)
	orders := services.NewOrderService(orderRepo, productRepo, publisher)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	catalog.SetRedisClient(redisClient)
	checkout.SetRedisClient(redisClient)

	go func() {
		time.Sleep(5 * time.Second)
		products, err := productRepo.FindAll()
		if err != nil {
			log.Printf("cache warmup: list products: %v", err)
			return
		}
		ids := make([]uint64, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		if err := catalog.WarmupCache(context.Background(), ids); err != nil {
			log.Printf("cache warmup: %v", err)
		} else {
			log.Printf("cache warmed up for %d products", len(ids))
		}
	}()

	handler := http.NewHandler(customers, catalog, cart, checkout, orders, issuer)
	serverMetrics := metrics.NewServerMetrics("api")

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(serverMetrics.Middleware())

	handler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting storefront on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
