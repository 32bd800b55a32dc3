package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yana-hris/DevJobsAPI/internal/auth"
	"github.com/yana-hris/DevJobsAPI/internal/database"
	"github.com/yana-hris/DevJobsAPI/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := cfg.RequireSecret(); err != nil {
		return err
	}
	if err := database.Seed(db.DB, seedOptions(cfg)); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	blacklist, err := auth.NewBlacklistStore(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if mem, ok := blacklist.(*auth.InMemoryBlacklistStore); ok {
		cleanup, err := mem.ScheduleCleanUp("@every 5m")
		if err != nil {
			return err
		}
		defer cleanup.Stop()
	} else {
		log.Println("Using Redis token blacklist")
	}

	srv := server.NewServer(server.NewMyServer(cfg, db, blacklist))

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down gracefully, press Ctrl+C again to force")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Println("Server exiting")
	return nil
}
