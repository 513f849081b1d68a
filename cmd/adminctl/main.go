package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eltonkaiton/mombasa-admin/internal/backend"
	"github.com/eltonkaiton/mombasa-admin/internal/config"
	"github.com/eltonkaiton/mombasa-admin/internal/observability"
	"github.com/eltonkaiton/mombasa-admin/internal/service"
)

var (
	// Global flags
	backendURL string
	token      string
	verbose    bool

	logger *zap.Logger
	client *backend.Client
)

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Command-line access to the Mombasa ferry admin backend",
	Long: `adminctl runs the console's reports and exports without a browser.

Authenticate once with "adminctl login" and pass the printed token with
--token or the ADMIN_TOKEN environment variable.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "ferry backend base URL (defaults to BACKEND_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "admin bearer token (defaults to ADMIN_TOKEN)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log backend calls")

	rootCmd.AddCommand(loginCmd, reportCmd, exportCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logger.Level = "debug"
	} else {
		cfg.Logger.Level = "error"
	}
	logger, err = observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}
	if token == "" {
		token = cfg.CLI.Token
	}
	client = backend.NewClient(cfg.Backend, logger)
	return nil
}

// adminCaller is the caller the services see for CLI commands.
func adminCaller() (service.Caller, error) {
	if token == "" {
		return service.Caller{}, fmt.Errorf("no token: run \"adminctl login\" and pass --token or set ADMIN_TOKEN")
	}
	return service.Caller{Token: token}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
