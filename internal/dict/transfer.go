package dict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ExportVersion is written into every export document.
const ExportVersion = "1.0"

// ProgressFunc receives progress updates between 0 and 100.
type ProgressFunc func(percent int, message string)

func (p ProgressFunc) report(percent int, format string, args ...any) {
	if p != nil {
		p(percent, fmt.Sprintf(format, args...))
	}
}

// Document is the import/export file layout.
type Document struct {
	Version    string          `json:"version"`
	Timestamp  string          `json:"timestamp"`
	Categories []CategoryWords `json:"categories"`
}

// CategoryWords is one category inside a Document.
type CategoryWords struct {
	ID    Category `json:"id"`
	Words []string `json:"words"`
}

// Export writes every category as a JSON document.
func (s *Service) Export(ctx context.Context, w io.Writer, now time.Time, progress ProgressFunc) error {
	progress.report(0, "preparing export")

	doc := Document{
		Version:   ExportVersion,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	for _, c := range AllCategories() {
		words := s.Raw(ctx, c)
		if words == nil {
			words = []string{}
		}
		doc.Categories = append(doc.Categories, CategoryWords{ID: c, Words: words})
	}
	progress.report(40, "collected %d categories", len(doc.Categories))

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding dictionary export: %w", err)
	}

	progress.report(100, "export complete")
	return nil
}

// rawDocument defers decoding of words so each entry can be type-checked.
type rawDocument struct {
	Version    string `json:"version"`
	Categories []struct {
		ID    string          `json:"id"`
		Words json.RawMessage `json:"words"`
	} `json:"categories"`
}

// ParseDocument decodes and validates an import document.
func ParseDocument(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if raw.Version == "" || raw.Categories == nil {
		return nil, fmt.Errorf("%w: missing version or categories", ErrInvalidFormat)
	}

	doc := &Document{Version: raw.Version}
	for i, rc := range raw.Categories {
		trimmed := bytes.TrimSpace(rc.Words)
		if rc.ID == "" || len(trimmed) == 0 || trimmed[0] != '[' {
			return nil, fmt.Errorf("%w: category %d has no id or word array", ErrInvalidFormat, i)
		}
		c, err := ParseCategory(rc.ID)
		if err != nil {
			return nil, err
		}
		var words []string
		if err := json.Unmarshal(trimmed, &words); err != nil {
			return nil, fmt.Errorf("%w: category %s: %v", ErrInvalidWords, c, err)
		}
		if words == nil {
			words = []string{}
		}
		doc.Categories = append(doc.Categories, CategoryWords{ID: c, Words: words})
	}

	return doc, nil
}

// Import validates a document read from r and stores every category in it
// as an override. Nothing is written unless the whole document is valid.
func (s *Service) Import(ctx context.Context, r io.Reader, progress ProgressFunc) (*Document, error) {
	progress.report(0, "starting import")

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary import: %w", err)
	}
	progress.report(20, "file read")

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	progress.report(80, "validated %d categories", len(doc.Categories))

	total := len(doc.Categories)
	for i, cw := range doc.Categories {
		if err := s.Save(ctx, cw.ID, cw.Words); err != nil {
			return nil, err
		}
		progress.report(80+(i+1)*20/total, "saved %s", cw.ID)
	}

	progress.report(100, "import complete")
	return doc, nil
}
