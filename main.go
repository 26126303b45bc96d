package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"cake_api/internal/api"
	"cake_api/internal/middleware"
	"cake_api/internal/repository"
	"cake_api/internal/service"
	"cake_api/internal/storage"
	"cake_api/pkg/config"
	"cake_api/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		// 配置尚未載入，使用預設日誌設定
		log := logger.New(config.LogConfig{}, os.Stderr)
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log, os.Stdout)

	// 初始化資料庫連接
	db, err := storage.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to initialize database")
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	// 建立資料表
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate database")
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, log)

	// 設置 Gin 路由
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())
	api.SetupRoutes(r, services, db)

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to run server")
		}
	}()

	// 等待中斷信號後優雅關閉
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
