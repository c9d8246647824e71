package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/veecerts/veevault/internal/accounts"
	"github.com/veecerts/veevault/internal/catalog"
	"github.com/veecerts/veevault/internal/config"
	"github.com/veecerts/veevault/internal/identity"
	"github.com/veecerts/veevault/internal/ledger"
	"github.com/veecerts/veevault/internal/logger"
	"github.com/veecerts/veevault/internal/nft"
	"github.com/veecerts/veevault/internal/server"
	"github.com/veecerts/veevault/internal/snapshot"
)

func main() {
	_ = godotenv.Load()

	zlog, err := logger.Init()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal("load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	blobs, err := snapshot.Open(ctx, cfg.Snapshot)
	if err != nil {
		zlog.Fatal("open snapshot store", zap.Error(err))
	}
	defer blobs.Close()

	accountsService := accounts.NewService()
	catalogService := catalog.NewService(accountsService)
	nftService := nft.NewService()

	snapshots := snapshot.NewManager(blobs, zlog, catalogService, accountsService, nftService)
	if err := snapshots.RestoreAll(ctx); err != nil {
		zlog.Fatal("restore snapshots", zap.Error(err))
	}

	router := server.NewRouter(server.Dependencies{
		Config:    cfg,
		Snapshots: blobs,
		Validator: identity.NewValidator(cfg.Identity),
		Catalog:   catalogService,
		Accounts:  accountsService,
		NFT:       nftService,
		Ledger:    ledger.NewClient(cfg.Ledger),
		Logger:    zlog,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zlog.Info("VeeVault API listening", zap.String("address", cfg.Server.Address()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	zlog.Info("shutting down gracefully")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown", zap.Error(err))
	}

	if err := snapshots.SaveAll(shutdownCtx); err != nil {
		zlog.Error("save snapshots", zap.Error(err))
	}
}
