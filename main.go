package main

import (
	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/notifier"
	"auction-house/internal/repository"
	"auction-house/internal/scheduler"
	"auction-house/internal/server"
	"auction-house/internal/settlement"
	"auction-house/utils"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg := config.Load()

	ledger, err := openLedger(cfg)
	if err != nil {
		utils.Fatal("failed to open ledger store", map[string]any{"error": err.Error()})
	}

	hub := notifier.NewHub()
	engine := settlement.NewEngine(ledger, hub)
	closeScheduler := scheduler.New(engine, ledger, cfg.SweepInterval)
	auctionSvc := auction.NewAuctionService(ledger, hub, closeScheduler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Catch up on auctions that closed while the process was down, then
	// keep sweeping in the background.
	if err := closeScheduler.Recover(ctx); err != nil {
		utils.Fatal("failed to recover pending auctions", map[string]any{"error": err.Error()})
	}
	go closeScheduler.Run(ctx)

	router := server.SetupRouter(auctionSvc, hub)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{"port": cfg.Port})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown error", map[string]any{"error": err.Error()})
	}
	closeScheduler.Stop()
}

// openLedger picks the MySQL-backed ledger when a DSN is configured and
// falls back to the in-memory one for local development.
func openLedger(cfg *config.Config) (repository.LedgerStore, error) {
	if cfg.DatabaseURL == "" {
		utils.Info("no DATABASE_URL set, using in-memory ledger", nil)
		return repository.NewMemoryLedger(), nil
	}
	return repository.OpenGormLedger(cfg.DatabaseURL)
}
