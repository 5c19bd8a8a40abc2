package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/caothongdev/portfolio/activity"
	"github.com/caothongdev/portfolio/api"
	"github.com/caothongdev/portfolio/auth"
	"github.com/caothongdev/portfolio/blog"
	"github.com/caothongdev/portfolio/internal/boot"
	bboltstorage "github.com/caothongdev/portfolio/storage/bbolt"
	"github.com/caothongdev/portfolio/views"
)

var (
	port    int
	dataDir string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the portfolio server",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := boot.Load(cmd.Context())
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("port") {
			port = config.Port
		}
		if !cmd.Flags().Changed("data-dir") {
			dataDir = config.DataDir
		}

		if err := os.MkdirAll(dataDir, 0o700); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		store, err := bboltstorage.NewStoreFromFile(dataDir+"/portfolio.db", nil)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		defer store.Close()

		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

		authOpts := []auth.Option{auth.WithLogger(logger)}
		if config.HashScheme == "argon2id" {
			authOpts = append(authOpts, auth.WithArgon2id())
		}
		authManager := auth.NewManager(store, authOpts...)
		posts := blog.NewManager(store, blog.WithLogger(logger))
		activities := activity.NewLogger(store, activity.WithLogger(logger))
		counts := views.NewCounter(store, logger)

		a := api.New(authManager, posts, activities, counts, api.WithLogger(logger))

		r := chi.NewRouter()
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		r.Mount("/api/v1", a.Router())

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		// Graceful shutdown on SIGINT/SIGTERM.
		done := make(chan error, 1)
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				done <- fmt.Errorf("server failed: %w", err)
				return
			}
			done <- nil
		}()

		fmt.Printf("Starting server on port %d (data: %s)...\n", port, dataDir)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			fmt.Printf("\nReceived %s, shutting down...\n", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			return nil
		case err := <-done:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
	serverCmd.Flags().StringVar(&dataDir, "data-dir", "./data", "Directory for persistent data")
}
