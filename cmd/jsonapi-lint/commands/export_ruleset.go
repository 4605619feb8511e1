package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/openapi-jsonapi/jsonapi-lint/rules"
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
	"github.com/spf13/cobra"
)

func newExportRulesetCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export-ruleset",
		Short: "Write the built-in ruleset in Spectral format",
		Long: `Write the built-in JSON:API ruleset as a Spectral ruleset.

The ruleset declares the custom functions it uses (noMultiple4xxStatusCodes,
noMultiple5xxStatusCodes and propertyType); Spectral needs implementations of
those functions next to the ruleset to run it.

Examples:
  jsonapi-lint export-ruleset
  jsonapi-lint export-ruleset -o .spectral.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExportRuleset(cmd, output)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExportRuleset(cmd *cobra.Command, output string) error {
	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := spectral.Export(w, rules.Definitions()); err != nil {
		return fmt.Errorf("failed to export ruleset: %w", err)
	}

	if output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote ruleset to %s\n", output)
	}
	return nil
}
