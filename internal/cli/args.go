package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RejectArgs fails when positional arguments are given.
// Returns a helpful error message pointing at the flags instead.
func RejectArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf(`accepts 0 arg(s), received %d

Usage: %s

Example:
  %s --data-dir ./exports --db-path shop.db`, len(args), cmd.UseLine(), cmd.CommandPath())
}
