package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"weatherbot.app/internal/app"
	"weatherbot.app/internal/config"
)

const shutdownTimeout = 30 * time.Second

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "weatherbot",
		Short:         "Telegram bot that sends weather forecasts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newDispatchCommand(), newMigrateCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Poll Telegram, run the daily dispatch and serve the ops endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.NewApplication()
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stopped := make(chan struct{})
			go func() {
				defer close(stopped)
				<-ctx.Done()
				slog.Info("Received shutdown signal...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := application.Shutdown(shutdownCtx); err != nil {
					slog.Error("Error during graceful shutdown", "error", err)
				}
			}()

			slog.Info("Starting weather bot...", "ops_port", application.Config().Server.Port)
			if err := application.Start(ctx); err != nil {
				stop()
				<-stopped
				return fmt.Errorf("start application: %w", err)
			}
			<-stopped
			return nil
		},
	}
}

func newDispatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dispatch",
		Short: "Send today's forecast to every subscriber once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.NewApplication()
			if err != nil {
				return fmt.Errorf("initialize application: %w", err)
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = application.Shutdown(ctx)
			}()

			result, err := application.RunDispatchOnce(cmd.Context())
			slog.Info("Dispatch finished",
				"run_id", result.RunID,
				"total", result.Total,
				"sent", result.Sent,
				"failed", result.Failed)
			return err
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			db, err := app.OpenDatabase(cfg.Database)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			return app.RunMigrations(db)
		},
	}
}
