package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ecomload/internal/schema"
	"github.com/vvka-141/ecomload/pkg/ecomload"
)

func newSchemaCmd() *cobra.Command {
	var tables []string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the CREATE TABLE statements",
		Long: `Print the statements ecomload runs before loading, in load order.

Examples:
  ecomload schema
  ecomload schema --table orders --table payments`,
		Args: RejectArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd, tables)
		},
	}
	cmd.Flags().StringSliceVarP(&tables, "table", "t", nil, "Only print these tables (repeatable)")
	_ = cmd.RegisterFlagCompletionFunc("table", completeTableNames)
	return cmd
}

func runSchema(cmd *cobra.Command, only []string) error {
	selected := schema.Tables()
	if len(only) > 0 {
		selected = make([]schema.Table, 0, len(only))
		for _, name := range only {
			table, ok := schema.Lookup(name)
			if !ok {
				return fmt.Errorf("%w: unknown table %q (known: %s)",
					ecomload.ErrInvalidConfig, name, strings.Join(tableNames(), ", "))
			}
			selected = append(selected, table)
		}
	}

	out := cmd.OutOrStdout()
	for i, table := range selected {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s;\n", table.CreateStatement())
	}
	return nil
}

func tableNames() []string {
	tables := schema.Tables()
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}
