package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/karimovsardorbek/online-market/internal/config"
	"github.com/karimovsardorbek/online-market/internal/domain/model"
	"github.com/karimovsardorbek/online-market/internal/infra/db"
	"github.com/karimovsardorbek/online-market/internal/logger"
	"github.com/karimovsardorbek/online-market/internal/server"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zapLogger.Sync()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		zapLogger.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Cart{},
		&model.CartLine{},
		&model.Order{},
		&model.OrderLine{},
		&model.Favorite{},
		&model.Review{},
		&model.SupportRequest{},
		&model.Profile{},
		&model.RefreshToken{},
	); err != nil {
		zapLogger.Fatal("migration failed", zap.Error(err))
	}

	srv := server.New(cfg, gormDB, zapLogger)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Info("server stopped", zap.Error(err))
		}
	}()

	//SIGINT/SIGTERMでgraceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("shutdown failed", zap.Error(err))
	}
	zapLogger.Info("server exited")
}
