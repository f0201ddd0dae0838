// Package scheme turns notes into read-after schemes: marked text ready for
// rehearsal, with a title.
package scheme

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/f3rmion/readafter/internal/logger"
)

// Marker is the breath mark used in scheme text.
const Marker = "▼"

// UntitledTitle is used when no title can be extracted.
const UntitledTitle = "无标题"

// MaxTitleLength caps extracted titles, in runes.
const MaxTitleLength = 20

// Note is a piece of source prose.
type Note struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Tags          []string  `json:"tags"`
	Timestamp     time.Time `json:"timestamp"`
	IsTitleEdited bool      `json:"isTitleEdited,omitempty"`
}

// Scheme is a note's content with breath marks inserted.
type Scheme struct {
	ID            string    `json:"id"`
	NoteID        string    `json:"noteId"`
	Text          string    `json:"text"`
	Title         string    `json:"title"`
	Tags          []string  `json:"tags"`
	Timestamp     time.Time `json:"timestamp"`
	IsTitleEdited bool      `json:"isTitleEdited"`
}

// ExtractTitle returns the first sentence of text, trimmed and capped at
// MaxTitleLength runes.
func ExtractTitle(text string) string {
	end := strings.IndexAny(text, ".。?？!！\n")
	if end < 0 {
		end = len(text)
	}

	title := strings.TrimSpace(text[:end])
	if utf8.RuneCountInString(title) > MaxTitleLength {
		title = string([]rune(title)[:MaxTitleLength])
	}
	if title == "" {
		title = UntitledTitle
	}
	return title
}

// ResolveTitle keeps a title the user changed and otherwise extracts a
// fresh one from text.
func ResolveTitle(text, current, original string) (title string, edited bool) {
	if current != original {
		return current, true
	}
	return ExtractTitle(text), false
}

// Processor inserts breath marks into text.
type Processor interface {
	Process(ctx context.Context, text string) string
}

// Builder creates schemes from notes.
type Builder struct {
	processor Processor
	now       func() time.Time
	newID     func() string
}

// NewBuilder creates a Builder that marks text with p.
func NewBuilder(p Processor) *Builder {
	return &Builder{
		processor: p,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// AddBreathingPoints marks content. Empty content stays empty.
func (b *Builder) AddBreathingPoints(ctx context.Context, content string) string {
	if content == "" {
		return ""
	}
	return b.processor.Process(ctx, content)
}

// FromNote builds a scheme for one note.
func (b *Builder) FromNote(ctx context.Context, note Note) Scheme {
	text := b.AddBreathingPoints(ctx, note.Content)
	title, _ := ResolveTitle(strings.ReplaceAll(text, Marker, ""), note.Title, note.Title)

	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}

	return Scheme{
		ID:        b.newID(),
		NoteID:    note.ID,
		Text:      text,
		Title:     title,
		Tags:      tags,
		Timestamp: b.now().UTC(),
	}
}

// FromNotes builds schemes for the notes named by ids, in order. Unknown ids
// are skipped. An empty ids list selects every note.
func (b *Builder) FromNotes(ctx context.Context, ids []string, notes []Note) ([]Scheme, error) {
	byID := make(map[string]Note, len(notes))
	for _, n := range notes {
		byID[n.ID] = n
	}
	if len(ids) == 0 {
		for _, n := range notes {
			ids = append(ids, n.ID)
		}
	}

	schemes := make([]Scheme, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return schemes, err
		}
		note, ok := byID[id]
		if !ok {
			logger.Warn("note %s not found, skipping", id)
			continue
		}
		schemes = append(schemes, b.FromNote(ctx, note))
	}

	return schemes, nil
}

// ReadNotes decodes a JSON array of notes.
func ReadNotes(r io.Reader) ([]Note, error) {
	var notes []Note
	if err := json.NewDecoder(r).Decode(&notes); err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	return notes, nil
}

// WriteSchemes encodes schemes as indented JSON.
func WriteSchemes(w io.Writer, schemes []Scheme) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(schemes); err != nil {
		return fmt.Errorf("encoding schemes: %w", err)
	}
	return nil
}
