// Package commands implements the jsonapi-lint subcommands.
package commands

import "github.com/spf13/cobra"

// Apply adds the jsonapi-lint subcommands to root.
func Apply(root *cobra.Command) {
	root.AddCommand(newLintCmd())
	root.AddCommand(newListRulesCmd())
	root.AddCommand(newExportRulesetCmd())
}
