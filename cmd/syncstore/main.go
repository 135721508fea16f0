package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/config"
	"github.com/rmorlok/syncstore/internal/service"
	"github.com/rmorlok/syncstore/internal/service/api"
	"github.com/spf13/cobra"
)

var cfgFile string
var cfg config.C

func loadConfig() error {
	if cfgFile == "" {
		cfgFile = os.Getenv("SYNCSTORE_CONFIG")
	}

	if cfgFile == "" {
		return errors.New("no configuration file found; must be specified with --config or SYNCSTORE_CONFIG environment variable")
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	return errors.Wrapf(err, "failed to load configuration from '%s'", cfgFile)
}

func banner() {
	banner := `
   ____                   ____  _                 
  / ___| _   _ _ __   ___/ ___|| |_ ___  _ __ ___ 
  \___ \| | | | '_ \ / __\___ \| __/ _ \| '__/ _ \
   ___) | |_| | | | | (__ ___) | || (_) | | |  __/
  |____/ \__, |_| |_|\___|____/ \__\___/|_|  \___|
         |___/                                    
`
	color.Green(banner)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func cmdServe() *cobra.Command {
	var noBanner bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the connection listing API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !noBanner {
				banner()
			}

			ctx, cancel := signalContext()
			defer cancel()

			return api.Serve(ctx, cfg)
		},
	}

	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "Don't show banner")

	return cmd
}

func cmdMigrate() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			dm := service.NewDependencyManager("cli", cfg)
			defer dm.Close()

			if err := dm.MigrateDatabase(ctx); err != nil {
				return err
			}

			color.Green("database migrated")
			return nil
		},
	}
}

func main() {
	// Optionally load environment variables from a .env file.
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:          "syncstore",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file; may also be specified in SYNCSTORE_CONFIG")

	rootCmd.AddCommand(cmdServe())
	rootCmd.AddCommand(cmdMigrate())
	rootCmd.AddCommand(cmdConnections())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
