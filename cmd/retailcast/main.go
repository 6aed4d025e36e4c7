package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"retailcast/cmd/retailcast/form"
	"retailcast/cmd/retailcast/ui"
	"retailcast/internal/config"
	"retailcast/internal/logging"
	"retailcast/internal/predictor"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	endpoint   string
	verbose    bool

	// Resolved in PersistentPreRunE
	cfg *config.Config

	closeLogs = logging.CloseAll
)

// skipConfigLoad marks commands that must run even when the config file is
// unreadable or invalid.
const skipConfigLoad = "skip-config-load"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "retailcast",
	Short: "Retail sales prediction from the terminal",
	Long: `retailcast asks a sales prediction service how many units of a product
category will be sold on a given day.

Run without arguments to open the interactive form.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}

		if cmd.Annotations[skipConfigLoad] == "" {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.DefaultConfig()
		}
		if endpoint != "" {
			cfg.Predictor.Endpoint = endpoint
		}
		if verbose {
			cfg.Logging.DebugMode = true
			cfg.Logging.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		if err := logging.Initialize(logging.Options{
			Dir:        filepath.Dir(configPath),
			DebugMode:  cfg.Logging.DebugMode,
			Level:      cfg.Logging.Level,
			JSONFormat: cfg.Logging.JSONFormat,
			Categories: cfg.Logging.Categories,
		}); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.Boot("config %s, endpoint %s", configPath, cfg.Predictor.Endpoint)
		logging.Config("endpoint=%s timeout=%s display_year=%d theme=%s mouse=%t",
			cfg.Predictor.Endpoint, cfg.GetTimeout(), cfg.Picker.DisplayYear, cfg.UI.Theme, cfg.UI.Mouse)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		styles := ui.NewStyles(ui.ThemeNamed(cfg.UI.Theme))
		return form.Run(form.Config{
			Predictor:   newClient(),
			DisplayYear: cfg.Picker.DisplayYear,
			Styles:      &styles,
			Context:     cmd.Context(),
		}, cfg.UI.Mouse)
	},
}

func newClient() *predictor.Client {
	return predictor.NewClient(cfg.Predictor.Endpoint, predictor.WithTimeout(cfg.GetTimeout()))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "Config file")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Prediction endpoint URL (overrides config and RETAILCAST_ENDPOINT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs next to the config file")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(configCmd)
}

// run executes the root command. Log files are closed whether or not the
// command succeeded.
func run(ctx context.Context) error {
	defer closeLogs()
	return rootCmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
