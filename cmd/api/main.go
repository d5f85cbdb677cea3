package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/admission/internal/config"
	"github.com/yigit/admission/internal/pkg/logger"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "api",
		Short: "University admission records API",
		Long:  `Serves CRUD endpoints for students, applications, payments, exams, admit cards, results and units.`,
		// Running without a subcommand serves the API.
		RunE:          runServe,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c",
		config.GetEnv("CONFIG_PATH", "configs/config.yaml"), "Path to the YAML configuration file")

	rootCmd.AddCommand(newServeCmd(), newPingCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
