package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"paranoid-users/internal/core/bootstrap"
	"paranoid-users/internal/core/config"
	"paranoid-users/internal/core/logger"
	"paranoid-users/internal/core/server"
	"paranoid-users/internal/transport/http/handler"
	"paranoid-users/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := bootstrap.Logger(cfg.Log)
	defer cleanup()

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = logger.ToWriter(log.Named("gin"), zapcore.DebugLevel)

	// 数据库（失败直接 Fatal）
	db, err := bootstrap.OpenDB(cfg.DB, log)
	if err != nil {
		log.Fatal("db init failed", zap.Error(err))
	}

	users := handler.NewUserHandler(bootstrap.UserService(db, log))
	r := router.NewAPIEngine(log, router.NewRegistry(users), bootstrap.RouterOptions(cfg.App.Limits))

	errLog, _ := logger.ToStdLogger(log.Named("http"), zapcore.ErrorLevel)
	h := cfg.App.HTTP
	addr := server.Addr(h.Host, h.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(h.ReadTimeoutSec)*time.Second,
		time.Duration(h.WriteTimeoutSec)*time.Second,
		time.Duration(h.IdleTimeoutSec)*time.Second,
		errLog,
	)

	baseURL := server.BaseURL(h.Host, h.Port)
	log.Info("users api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1/users"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("users api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("users api stopped gracefully")
}
