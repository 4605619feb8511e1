package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/openapi-jsonapi/jsonapi-lint/cmd/jsonapi-lint/commands/cmdutil"
	"github.com/openapi-jsonapi/jsonapi-lint/document"
	"github.com/openapi-jsonapi/jsonapi-lint/jsonapilint"
	"github.com/openapi-jsonapi/jsonapi-lint/linter"
	"github.com/openapi-jsonapi/jsonapi-lint/system"
	"github.com/spf13/cobra"
)

// ErrFindings is returned by lint when error severity findings exist.
var ErrFindings = errors.New("lint found errors")

type lintFlags struct {
	format  string
	ruleset string
	config  string
	disable []string
	summary bool
	debug   bool
}

func newLintCmd() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint <file>",
		Short: "Lint an OpenAPI document against the JSON:API ruleset",
		Long: `Lint an OpenAPI 3.x document for conformance with JSON:API v1.0.

Rules check media types, status codes, the top-level document structure,
resource and error objects, query parameters, HTTP methods and member names.

Use '-' as the file argument to read from stdin:
  cat openapi.yaml | jsonapi-lint lint -

CONFIGURATION:

By default, the linter looks for a configuration file at ~/.jsonapi-lint/lint.yaml.
Use --config to specify a custom configuration file.

Available rulesets: all (default), recommended

Example configuration (lint.yaml):

  extends: recommended

  rules:
    - id: jsonapi-no-put
      severity: error
    - id: jsonapi-member-names-camel-case
      disabled: true

  custom_rules:
    paths:
      - ./rules/*.yaml

CUSTOM RULES:

custom_rules.paths lists Spectral rulesets. Their rules are added to the
built-in ruleset and severity-only entries override built-in rules.`,
		Args: cmdutil.StdinOrFileArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, flags, cmdutil.InputFileFromArgs(args))
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVarP(&flags.ruleset, "ruleset", "r", "", "Ruleset to use (default loads from config)")
	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Path to lint config file (default: ~/.jsonapi-lint/lint.yaml)")
	cmd.Flags().StringSliceVarP(&flags.disable, "disable", "d", nil, "Rule IDs to disable (can be repeated)")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "Print a per-rule summary table of findings")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Log rule evaluation to stderr")

	return cmd
}

func runLint(cmd *cobra.Command, flags *lintFlags, file string) error {
	ctx := cmd.Context()
	logger := cmdutil.NewLogger(flags.debug, cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	if flags.format != "text" && flags.format != "json" {
		return fmt.Errorf("unsupported format %q: expected text or json", flags.format)
	}

	data, location, err := cmdutil.ReadInput(file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Linting OpenAPI document: %s\n", location)

	doc, err := document.Parse(ctx, data, location)
	if err != nil {
		return err
	}

	config, err := buildLintConfig(flags)
	if err != nil {
		return err
	}

	lint, err := jsonapilint.NewLinter(config, jsonapilint.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create linter: %w", err)
	}

	output, err := lint.Lint(ctx, doc, nil)
	if err != nil {
		return fmt.Errorf("linting failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case "json":
		fmt.Fprintln(out, output.FormatJSON())
	default:
		fmt.Fprintln(out, location)
		fmt.Fprintln(out, output.FormatText())
	}

	if flags.summary {
		fmt.Fprintln(out, output.FormatSummary())
	}

	if output.HasErrors() {
		return fmt.Errorf("%w: %d errors", ErrFindings, output.ErrorCount())
	}
	return nil
}

func buildLintConfig(flags *lintFlags) (*linter.Config, error) {
	config := linter.NewConfig()
	fsys := &system.FileSystem{}

	if flags.config != "" {
		loaded, err := linter.LoadConfigFromFile(fsys, flags.config)
		if err != nil {
			return nil, err
		}
		config = loaded
	} else if defaultPath, err := linter.DefaultConfigPath(); err == nil {
		loaded, err := linter.LoadConfigFromFile(fsys, defaultPath)
		switch {
		case err == nil:
			config = loaded
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%s: %w", filepath.Clean(defaultPath), err)
		}
	}

	if flags.ruleset != "" {
		config.Extends = []string{flags.ruleset}
	}

	for _, rule := range flags.disable {
		disabled := true
		config.Rules = append(config.Rules, linter.RuleEntry{
			ID:       rule,
			Disabled: &disabled,
		})
	}

	switch flags.format {
	case "json":
		config.OutputFormat = linter.OutputFormatJSON
	default:
		config.OutputFormat = linter.OutputFormatText
	}

	return config, nil
}
