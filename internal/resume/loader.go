// Package resume loads candidate resumes from JSON, PDF, or plain text files.
package resume

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmartin/jobmatch/internal/ingestion"
	"github.com/jmartin/jobmatch/internal/schemas"
	"github.com/jmartin/jobmatch/internal/types"
)

//go:embed resume.schema.json
var resumeSchema string

// LoadError represents an error loading a resume file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load resume %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load resume %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a resume from a file, dispatching on the extension.
// JSON files are validated against the resume schema and parsed into the
// structured document. PDF and plain text files produce a document carrying
// raw text only, with skills discovered from the text during extraction.
func Load(path string) (*types.ResumeDocument, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".pdf":
		return LoadPDF(path)
	default:
		return LoadText(path)
	}
}

// LoadJSON reads and validates a structured resume JSON file.
func LoadJSON(path string) (*types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if err := schemas.ValidateJSONString(resumeSchema, string(data)); err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse JSON", Cause: err}
	}

	if err := doc.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "validation failed", Cause: err}
	}

	return &doc, nil
}

// LoadText reads a plain text resume. The content becomes the raw text of a
// document without structured fields.
func LoadText(path string) (*types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	text := ingestion.CleanText(string(data))
	if text == "" {
		return nil, &LoadError{Path: path, Message: "file contains no text"}
	}

	return &types.ResumeDocument{RawText: text}, nil
}
