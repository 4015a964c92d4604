package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sink receives finished documents.
type Sink interface {
	Write(doc *Document) error
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, format Format, doc *Document) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FileSink writes each document to "<Dir>/<algorithm>_trace.<ext>".
type FileSink struct {
	Dir    string
	Format Format
}

// NewFileSink validates format and returns a sink rooted at dir.
func NewFileSink(dir string, format Format) (*FileSink, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &FileSink{Dir: dir, Format: format}, nil
}

// Path returns the file the document for algorithm is written to.
func (s *FileSink) Path(algorithm string) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s_trace.%s", algorithm, s.Format.Ext()))
}

// Write creates Dir if needed and replaces the document's file.
func (s *FileSink) Write(doc *Document) error {
	if doc == nil || len(doc.Steps) == 0 {
		return ErrEmptyTrace
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("export: create output directory: %w", err)
	}

	path := s.Path(doc.Algorithm)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err = Encode(f, s.Format, doc); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}

	return f.Close()
}

// ReadFile decodes a document written by FileSink, choosing the format
// from the file extension.
func ReadFile(path string) (*Document, error) {
	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	var doc Document
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("export: decode %s: %w", path, err)
	}

	return &doc, nil
}
