package spectral

import (
	"fmt"
	"strings"

	"github.com/openapi-jsonapi/jsonapi-lint/document"
)

type fieldKind int

const (
	fieldSelf fieldKind = iota
	fieldKeys
	fieldPath
	fieldQuery
)

type field struct {
	kind     fieldKind
	segments []string
	selector *document.Selector
}

func compileField(expr string) (field, error) {
	switch {
	case expr == "":
		return field{kind: fieldSelf}, nil
	case expr == FieldKey:
		return field{kind: fieldKeys}, nil
	case strings.HasPrefix(expr, "$"):
		sel, err := document.Compile(expr)
		if err != nil {
			return field{}, err
		}
		return field{kind: fieldQuery, selector: sel}, nil
	default:
		segments, err := splitFieldPath(expr)
		if err != nil {
			return field{}, err
		}
		return field{kind: fieldPath, segments: segments}, nil
	}
}

// splitFieldPath splits a property path such as data.attributes or
// content['application/vnd.api+json'].schema into segments.
func splitFieldPath(expr string) ([]string, error) {
	var segments []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			segments = append(segments, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(expr); i++ {
		switch c := expr[i]; c {
		case '.':
			flush()
		case '[':
			flush()
			end := strings.IndexByte(expr[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("field %q: unterminated bracket", expr)
			}
			inner := expr[i+1 : i+end]
			if len(inner) >= 2 && (inner[0] == '\'' || inner[0] == '"') && inner[len(inner)-1] == inner[0] {
				inner = inner[1 : len(inner)-1]
			}
			if inner == "" {
				return nil, fmt.Errorf("field %q: empty bracket", expr)
			}
			segments = append(segments, inner)
			i += end
		default:
			current.WriteByte(c)
		}
	}
	flush()

	if len(segments) == 0 {
		return nil, fmt.Errorf("field %q: empty path", expr)
	}
	return segments, nil
}
