package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/ecomload/internal/config"
	"github.com/vvka-141/ecomload/internal/db"
	"github.com/vvka-141/ecomload/internal/files/csvreader"
	"github.com/vvka-141/ecomload/internal/files/scanner"
	"github.com/vvka-141/ecomload/internal/logging"
	"github.com/vvka-141/ecomload/internal/services"
	"github.com/vvka-141/ecomload/internal/tui"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// loadFlags holds the flag values of the root command.
type loadFlags struct {
	dataDir    string
	dbPath     string
	configPath string
	batchSize  int
}

// buildLoadConfig resolves the run configuration.
// Precedence: flags > environment (.env included) > config file > defaults.
func buildLoadConfig(cmd *cobra.Command, flags *loadFlags) (ecomload.Config, error) {
	cfg := ecomload.Config{Verbose: getVerboseFlag(cmd)}

	projectCfg, err := loadProjectConfig(flags.configPath)
	if err != nil {
		return cfg, err
	}
	projectCfg.ApplyTo(&cfg)

	config.ApplyEnv(&cfg, os.LookupEnv)

	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = flags.dataDir
	}
	if cmd.Flags().Changed("db-path") {
		cfg.DBPath = flags.dbPath
	}
	if cmd.Flags().Changed("batch-size") {
		cfg.BatchSize = flags.batchSize
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if ecomload.yaml does not exist, unless the path was given explicitly.
func loadProjectConfig(explicitPath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	if explicitPath != "" {
		projectCfg, err := config.LoadFile(explicitPath)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: config file %s does not exist", ecomload.ErrInvalidConfig, explicitPath)
		}
		return projectCfg, err
	}

	projectCfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

func runLoad(cmd *cobra.Command, flags *loadFlags) error {
	cfg, err := buildLoadConfig(cmd, flags)
	if err != nil {
		return err
	}

	mode := tui.DetectMode()
	logger := newLogger(cmd, mode, cfg.Verbose)
	loader := services.NewLoadService(
		db.NewSQLiteConnector(logger, cfg.Verbose, cfg.BatchSize),
		scanner.NewScanner(),
		csvreader.NewReader(),
		logger,
	)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM) so the open transaction rolls back
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling load...")
			cancel()
		case <-ctx.Done():
		}
	}()

	summary, err := loader.Run(ctx, cfg)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), cmd.ErrOrStderr(), summary, mode)
	return nil
}

// newLogger colors log lines on a terminal and writes plain ones otherwise.
func newLogger(cmd *cobra.Command, mode tui.Mode, verbose bool) ecomload.Logger {
	if mode == tui.ModeInteractive {
		return logging.NewConsoleLogger(verbose)
	}
	return logging.NewPlainLogger(cmd.ErrOrStderr(), verbose)
}

// printSummary writes the confirmation message to stdout. On a terminal the
// styled summary goes to stdout with it; otherwise the plain per-table lines
// go to stderr so stdout carries only the message.
func printSummary(stdout, stderr io.Writer, summary ecomload.Summary, mode tui.Mode) {
	if mode == tui.ModeInteractive {
		fmt.Fprint(stdout, tui.RenderSummary(summary, mode))
		return
	}
	fmt.Fprint(stderr, tui.RenderSummary(summary, mode))
	fmt.Fprintln(stdout, ecomload.SuccessMessage)
}
