package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/tenanthq/tenant-api/handlers"
	cataloghandler "github.com/tenanthq/tenant-api/internal/catalog/handler"
	"github.com/tenanthq/tenant-api/internal/catalog/repository"
	"github.com/tenanthq/tenant-api/internal/catalog/service"
	"github.com/tenanthq/tenant-api/internal/config"
	"github.com/tenanthq/tenant-api/internal/database"
	"github.com/tenanthq/tenant-api/internal/storage"
	"github.com/tenanthq/tenant-api/internal/upload"
	"github.com/tenanthq/tenant-api/pkg/logger"
	"github.com/tenanthq/tenant-api/pkg/metrics"
	"github.com/tenanthq/tenant-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.InitWithEnvironment(os.Getenv("LOG_LEVEL"), cfg.Server.Environment)
	logger.Infof("config loaded: database=%v redis=%v rate_limit=%v", cfg.StoreConfigured(), cfg.Redis.Addr != "", cfg.RateLimit.Enabled)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", cfg.Redis.Addr, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s", cfg.Redis.Addr)
		}
	}

	// Optional global rate limiter (per client IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// Record store: Mongo when configured, in-memory when DATABASE_URL=memory.
	// The API starts without a store too, record endpoints then answer 500.
	var store repository.Store
	switch {
	case cfg.Database.URL == "memory":
		store = repository.NewMemory()
		logger.Infof("Using in-memory record store")
	case cfg.Database.URL != "":
		client, errConn := database.ConnectWithRetry(ctx, cfg.Database.URL, cfg.Database.Timeout, 5)
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB: %v", errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			store = repository.NewMongo(client.Database(cfg.Database.Name))
			logger.Infof("Connected to MongoDB, database=%s", cfg.Database.Name)
		}
	default:
		logger.Warnf("DATABASE_URL not set, starting without a record store")
	}

	svc := service.New(store)

	// Optional object storage for uploaded file bytes
	var objStore *storage.ObjectStore
	if stCfg := storage.LoadMinIOConfig(); stCfg.Enabled() {
		objStore, err = storage.New(stCfg)
		if err != nil {
			logger.Warnf("object storage unavailable: %v", err)
			objStore = nil
		} else {
			logger.Infof("Connected to MinIO: %s bucket=%s", stCfg.Endpoint, stCfg.Bucket)
		}
	}

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		if store == nil {
			deps["database"] = false
			ready = false
		} else {
			pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := store.Ping(pingCtx); err != nil {
				deps["database"] = false
				ready = false
			} else {
				deps["database"] = true
			}
		}

		// Redis readiness only matters when the rate limiter depends on it
		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		// Object storage is optional and never gates readiness
		deps["object_storage"] = objStore != nil

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handlers.NewDiagnostics(store).Register(r)
	handlers.RegisterSchema(r)
	handlers.RegisterSwagger(r)
	cataloghandler.RegisterRoutes(r, svc)
	upload.NewHandler(svc, objStore, cfg.Upload.MaxBytes).Register(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting tenant api on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
