package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeTableNames provides shell completion for registry table names.
func completeTableNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, name := range tableNames() {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
