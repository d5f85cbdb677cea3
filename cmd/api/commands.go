package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yigit/admission/internal/bootstrap"
	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/pkg/logger"
	"github.com/yigit/admission/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
}

func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check database connectivity and exit",
		RunE:  runPing,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.NewServer(cmd.Context(), configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func runPing(cmd *cobra.Command, _ []string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	provider, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer provider.Close()

	if err := provider.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Database reachable")
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
