package main

import (
	"fmt"
	"os"

	"github.com/66gu1/filmoradmin/config"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// @title           Filmora Admin API
// @version         1.0
// @description     Session, menu and resource endpoints of the admin dashboard.
// @BasePath        /

func main() {
	rootCmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Filmora admin dashboard server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		routesCmd(),
		migrateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	err := godotenv.Overload(".env")
	if err != nil {
		log.Debug().Err(err).Msg("failed to load .env file, using environment variables")
	}
}

func loadConfig() config.Config {
	cfg := config.LoadConfig()
	zerolog.SetGlobalLevel(cfg.LogLevel.ZeroLog())
	return cfg
}
