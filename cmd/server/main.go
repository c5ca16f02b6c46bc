package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cascosjhc/ledger/internal/auth"
	"cascosjhc/ledger/internal/config"
	"cascosjhc/ledger/internal/httpapi"
	"cascosjhc/ledger/internal/ledger"
	"cascosjhc/ledger/internal/service"
	"cascosjhc/ledger/internal/storage"
	filestore "cascosjhc/ledger/internal/storage/file"
	pgstore "cascosjhc/ledger/internal/storage/postgres"
	redisstore "cascosjhc/ledger/internal/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := validateSecurityConfig(cfg); err != nil {
		log.Fatalf("invalid security configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var backend storage.Backend
	closers := make([]func() error, 0, 1)

	switch {
	case cfg.DatabaseURL != "":
		pg, err := pgstore.New(ctx, cfg.DatabaseURL, cfg.StateKey)
		if err != nil {
			log.Fatalf("postgres unavailable (%v) and DATABASE_URL is set; refusing to start with a non-durable fallback", err)
		}
		backend = pg
		closers = append(closers, pg.Close)
		log.Println("storage: postgres")
	case cfg.RedisAddr != "":
		rd := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.StateKey)
		if err := rd.Ping(ctx); err != nil {
			log.Fatalf("redis unavailable (%v) and REDIS_ADDR is set; refusing to start with a non-durable fallback", err)
		}
		backend = rd
		closers = append(closers, rd.Close)
		log.Println("storage: redis")
	default:
		backend = filestore.New(cfg.DataFile)
		log.Printf("storage: file (%s)", cfg.DataFile)
	}

	store := ledger.New(ctx, backend, cfg.Sellers, cfg.PaymentMethods)
	svc := service.New(store, cfg.Sellers, cfg.PaymentMethods, cfg.Locals())
	gate := auth.NewGate(cfg.OwnerPassword)
	authManager := httpapi.NewAuthManager(gate, cfg.AuthSecret, cfg.TokenTTL)
	api := httpapi.New(svc, authManager, cfg.AllowedOrigin)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("ledger backend listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}

	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			log.Printf("close error: %v", err)
		}
	}

	log.Println("server stopped")
}

func validateSecurityConfig(cfg config.Config) error {
	if len(cfg.AuthSecret) < 32 {
		return fmt.Errorf("AUTH_SECRET must be set and at least 32 characters")
	}
	if cfg.OwnerPassword == "" {
		return fmt.Errorf("OWNER_PASSWORD must not be empty")
	}
	return nil
}
