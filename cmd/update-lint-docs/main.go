package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/openapi-jsonapi/jsonapi-lint/document"
	"github.com/openapi-jsonapi/jsonapi-lint/jsonapilint"
	"github.com/openapi-jsonapi/jsonapi-lint/linter"
	"github.com/openapi-jsonapi/jsonapi-lint/rules"
	"github.com/openapi-jsonapi/jsonapi-lint/spectral"
)

const (
	readmeFile    = "README.md"
	referenceFile = "docs/rules.md"
	rulesetFile   = "rulesets/jsonapi.spectral.yaml"

	startMarker = "<!-- START LINT RULES -->"
	endMarker   = "<!-- END LINT RULES -->"
)

func main() {
	if err := updateLintDocs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func updateLintDocs() error {
	fmt.Println("🔄 Updating lint rule docs...")

	lint, err := jsonapilint.NewLinter(linter.NewConfig())
	if err != nil {
		return fmt.Errorf("failed to create linter: %w", err)
	}
	docGen := linter.NewDocGenerator(lint.Registry())

	if err := updateReadme(docGen); err != nil {
		return fmt.Errorf("failed to update %s: %w", readmeFile, err)
	}

	var reference bytes.Buffer
	if err := docGen.WriteMarkdown(&reference); err != nil {
		return err
	}
	if err := writeFile(referenceFile, reference.Bytes()); err != nil {
		return err
	}

	var ruleset bytes.Buffer
	if err := spectral.Export(&ruleset, rules.Definitions()); err != nil {
		return err
	}
	if err := writeFile(rulesetFile, ruleset.Bytes()); err != nil {
		return err
	}

	fmt.Println("🎉 Lint docs updated successfully!")
	return nil
}

func updateReadme(docGen *linter.DocGenerator[*document.Document]) error {
	data, err := os.ReadFile(readmeFile)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("⚠️  No README file found: %s\n", readmeFile)
		return nil
	}
	if err != nil {
		return err
	}

	updated, err := replaceBetweenMarkers(string(data), generateRulesTable(docGen.GenerateAllRuleDocs()))
	if err != nil {
		return err
	}

	if err := os.WriteFile(readmeFile, []byte(updated), 0o600); err != nil {
		return err
	}
	fmt.Printf("✅ Updated %s\n", readmeFile)
	return nil
}

func generateRulesTable(docs []*linter.RuleDoc) string {
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})

	var content strings.Builder
	content.WriteString("| Rule | Category | Severity | Description |\n")
	content.WriteString("|------|----------|----------|-------------|\n")

	for _, doc := range docs {
		desc := strings.ReplaceAll(doc.Description, "|", "\\|")
		desc = strings.ReplaceAll(desc, "\n", " ")
		fmt.Fprintf(&content, "| <a name=\"%s\"></a>`%s` | %s | %s | %s |\n", doc.ID, doc.ID, doc.Category, doc.DefaultSeverity, desc)
	}

	return content.String()
}

// replaceBetweenMarkers replaces the text between the lint rules markers.
func replaceBetweenMarkers(content, replacement string) (string, error) {
	startIdx := strings.Index(content, startMarker)
	endIdx := strings.Index(content, endMarker)
	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		return "", errors.New("could not find lint rules markers")
	}

	before := content[:startIdx+len(startMarker)]
	after := content[endIdx:]

	return before + "\n\n" + replacement + "\n" + after, nil
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o750); err != nil {
		return err
	}
	if err := os.WriteFile(name, data, 0o600); err != nil {
		return err
	}
	fmt.Printf("✅ Wrote %s\n", name)
	return nil
}
