package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tarefas_webapp/internal/config"
	"tarefas_webapp/internal/db"
	appHTTP "tarefas_webapp/internal/http"
	"tarefas_webapp/internal/http/handlers"
	"tarefas_webapp/internal/http/middleware"
	"tarefas_webapp/internal/logger"
	"tarefas_webapp/internal/repository"
	"tarefas_webapp/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	var sessions session.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Fatal("failed to ping redis", "error", err)
		}
		sessions = session.NewRedisStore(client, cfg.SessionTTL)
		middleware.InitRateLimiter(client)
		logger.Info("redis connected", "addr", cfg.RedisAddr)
	} else {
		sessions = session.NewMemoryStore()
		logger.Warn("REDIS_ADDR not set, using in-memory sessions")
	}

	if cfg.DevMode {
		logger.Warn("dev mode enabled: unauthenticated requests assume a default user", "dev_user_id", cfg.DevUserID)
	}

	h := handlers.NewHandler(
		repository.NewUserRepository(pool),
		repository.NewCategoryRepository(pool),
		repository.NewProjectRepository(pool),
		repository.NewTaskRepository(pool),
		sessions,
		handlers.HandlerConfig{
			SessionTTL: cfg.SessionTTL,
			DevMode:    cfg.DevMode,
			DevUserID:  cfg.DevUserID,
		},
	)

	r := gin.Default()

	// CORS for a frontend served from another origin.
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	appHTTP.RegisterRoutes(r, h, pool, cfg, version)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
