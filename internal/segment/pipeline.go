// Package segment inserts breath marks into Chinese prose.
//
// Processing runs in five stages over a marked-text string: PreBreak,
// ExtractSentences, Splitter.SplitLong, MergeShort and Normalize. Each stage
// is a plain function and can be used on its own.
package segment

import (
	"context"

	"github.com/f3rmion/readafter/internal/dict"
	"github.com/f3rmion/readafter/internal/logger"
)

// Default segmentation limits.
const (
	DefaultMaxLength = 20
	DefaultMinLength = 6
	DefaultMaxDepth  = 3
)

// Settings bounds segment sizes. Zero fields take the defaults.
type Settings struct {
	MaxLength int // Longest sentence left unsplit, in runes
	MinLength int // Shortest segment kept on its own, punctuation excluded
	MaxDepth  int // Word-split recursion cap
}

// DefaultSettings returns the standard limits.
func DefaultSettings() Settings {
	return Settings{
		MaxLength: DefaultMaxLength,
		MinLength: DefaultMinLength,
		MaxDepth:  DefaultMaxDepth,
	}
}

func (s Settings) withDefaults() Settings {
	if s.MaxLength <= 0 {
		s.MaxLength = DefaultMaxLength
	}
	if s.MinLength <= 0 {
		s.MinLength = DefaultMinLength
	}
	if s.MaxDepth <= 0 {
		s.MaxDepth = DefaultMaxDepth
	}
	return s
}

// Lexicons provides a dictionary snapshot for one run.
type Lexicons interface {
	Snapshot(ctx context.Context) *dict.Lexicon
}

// Trace holds the output of every stage.
type Trace struct {
	PreBroken string
	Sentences []Sentence
	LongSplit string
	Merged    string
	Final     string
}

// Pipeline runs all stages against a dictionary service.
type Pipeline struct {
	lexicons Lexicons
	settings Settings
}

// NewPipeline creates a Pipeline. It is safe for concurrent use.
func NewPipeline(lexicons Lexicons, settings Settings) *Pipeline {
	return &Pipeline{lexicons: lexicons, settings: settings.withDefaults()}
}

// Settings returns the effective limits.
func (p *Pipeline) Settings() Settings {
	return p.settings
}

// Process returns text with breath marks inserted.
func (p *Pipeline) Process(ctx context.Context, text string) string {
	return p.Stages(ctx, text).Final
}

// Stages runs the pipeline and returns every intermediate result.
func (p *Pipeline) Stages(ctx context.Context, text string) Trace {
	return Run(p.lexicons.Snapshot(ctx), p.settings, text)
}

// Run executes the pipeline against a fixed lexicon.
func Run(lex *dict.Lexicon, settings Settings, text string) Trace {
	settings = settings.withDefaults()
	var t Trace

	logger.Section("Segment")
	t.PreBroken = PreBreak(text)
	logger.Debug("pre-break: %s", t.PreBroken)

	t.Sentences = ExtractSentences(t.PreBroken)
	logger.Debug("extracted %d sentences", len(t.Sentences))

	t.LongSplit = NewSplitter(lex, settings).SplitLong(t.PreBroken, t.Sentences)
	logger.Debug("long split: %s", t.LongSplit)

	t.Merged = MergeShort(t.LongSplit, settings.MinLength)
	logger.Debug("merged: %s", t.Merged)

	t.Final = Normalize(t.Merged)
	return t
}
