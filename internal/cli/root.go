package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ecomload/internal/tui"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	flags := &loadFlags{}
	cmd := &cobra.Command{
		Use:   "ecomload",
		Short: "Load e-commerce CSV exports into SQLite",
		Long: asciiLogo + `

ecomload reads customers.csv, products.csv, orders.csv, order_items.csv and
payments.csv from a data directory and appends their rows to the matching
tables of a SQLite database, creating the tables when they do not exist.

Rows are appended on every run. Nothing is updated or de-duplicated.

Configuration (highest precedence first):
  --data-dir / --db-path flags
  ECOMLOAD_DATA_DIR / ECOMLOAD_DB_PATH (a .env file in the working directory is read)
  ecomload.yaml (data_dir, db_path, batch_size, sources)
  defaults: data, ecommerce.db

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  13 - A CSV could not be read or written
  14 - Data directory not found
  15 - Required CSV file not found`,
		Args:          RejectArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	cmd.Flags().StringVar(&flags.dataDir, "data-dir", "", "Directory holding the CSV files (default \"data\")")
	cmd.Flags().StringVar(&flags.dbPath, "db-path", "", "SQLite database file (default \"ecommerce.db\")")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a config file (default ./ecomload.yaml when present)")
	cmd.Flags().IntVar(&flags.batchSize, "batch-size", 0, "Rows per INSERT statement (default 500)")

	cmd.AddCommand(newSchemaCmd(), newVersionCmd())
	return cmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout, os.Stderr)
		return nil
	}
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err, tui.DetectMode()))
	}
	return err
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
