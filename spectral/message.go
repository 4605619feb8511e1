package spectral

import (
	"strings"

	"github.com/openapi-jsonapi/jsonapi-lint/yml"
	"gopkg.in/yaml.v3"
)

const defaultMessage = "{{error}}"

type messageData struct {
	err         string
	description string
	path        []string
	value       *yaml.Node
}

// renderMessage fills a message template. {{error}} is substituted first so
// placeholders in function messages are filled too.
func renderMessage(template string, data messageData) string {
	if template == "" {
		template = defaultMessage
	}

	msg := strings.ReplaceAll(template, "{{error}}", data.err)

	property := "value"
	if len(data.path) > 0 {
		property = data.path[len(data.path)-1]
	}

	msg = strings.NewReplacer(
		"{{description}}", data.description,
		"{{path}}", strings.Join(data.path, "."),
		"{{property}}", property,
		"{{value}}", yml.Render(data.value),
	).Replace(msg)

	return strings.TrimSpace(msg)
}
