package linter

// DocumentInfo contains a document and its metadata for linting
type DocumentInfo[T any] struct {
	// Document is the parsed document to lint
	Document T

	// Location is the file path or URL of the document, empty for stdin
	Location string
}

// NewDocumentInfo creates a new DocumentInfo with the given document and location
func NewDocumentInfo[T any](doc T, location string) *DocumentInfo[T] {
	return &DocumentInfo[T]{
		Document: doc,
		Location: location,
	}
}

// LintOptions contains runtime options for linting
type LintOptions struct {
	// VersionFilter is the document version (e.g. "3.0.3", "3.1", "2.0").
	// If set, only rules that apply to this version will be run.
	// Rules with nil/empty Versions() apply to all versions.
	VersionFilter *string
}
