package speech

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/f3rmion/readafter/internal/logger"
)

// Sink voices text.
type Sink interface {
	Speak(ctx context.Context, text string) error
}

// Cuer is implemented by sinks that can signal the learner's turn.
type Cuer interface {
	Cue(ctx context.Context) error
}

// WriterSink prints each utterance on its own line.
type WriterSink struct {
	W io.Writer
}

// Speak writes text followed by a newline.
func (s WriterSink) Speak(_ context.Context, text string) error {
	_, err := fmt.Fprintln(s.W, text)
	return err
}

// Cue writes a prompt line.
func (s WriterSink) Cue(_ context.Context) error {
	_, err := fmt.Fprintln(s.W, "  ↳ 跟读")
	return err
}

// CommandSink passes each utterance to an external text-to-speech program,
// for example "say" or "espeak-ng".
type CommandSink struct {
	Name string
	Args []string
}

// Speak runs the command with text as its final argument and waits for it.
func (s CommandSink) Speak(ctx context.Context, text string) error {
	args := append(append([]string{}, s.Args...), text)
	if err := exec.CommandContext(ctx, s.Name, args...).Run(); err != nil {
		return fmt.Errorf("running %s: %w", s.Name, err)
	}
	return nil
}

// Position addresses a segment within a playlist.
type Position struct {
	Text    int // Index of the marked text
	Segment int // Index of the utterance within it
}

// Options controls playback.
type Options struct {
	Start        Position      // Where to begin, for resuming
	Repeat       int           // Times each utterance is voiced; zero means once
	Cue          bool          // Signal the learner after each utterance
	PausePerRune time.Duration // Silence left for repeating, per voiced rune
	OnSegment    func(pos Position, u Utterance)
}

// Play voices every utterance of texts in order, starting at opts.Start. It
// returns the position reached, which is where playback should resume after
// an error or cancellation.
func Play(ctx context.Context, sink Sink, texts []string, opts Options) (Position, error) {
	repeat := opts.Repeat
	if repeat <= 0 {
		repeat = 1
	}

	for i := opts.Start.Text; i < len(texts); i++ {
		utterances := Utterances(texts[i])
		start := 0
		if i == opts.Start.Text {
			start = opts.Start.Segment
		}

		for j := start; j < len(utterances); j++ {
			pos := Position{Text: i, Segment: j}
			u := utterances[j]
			if opts.OnSegment != nil {
				opts.OnSegment(pos, u)
			}

			for r := 0; r < repeat; r++ {
				if err := ctx.Err(); err != nil {
					return pos, err
				}
				if err := sink.Speak(ctx, u.Spoken); err != nil {
					return pos, err
				}
			}
			if err := cue(ctx, sink, opts.Cue); err != nil {
				return pos, err
			}
			if err := wait(ctx, time.Duration(EffectiveCharCount(u.Spoken))*opts.PausePerRune); err != nil {
				return pos, err
			}
		}
	}

	logger.Debug("playback finished: %d texts", len(texts))
	return Position{Text: len(texts)}, nil
}

func cue(ctx context.Context, sink Sink, enabled bool) error {
	if !enabled {
		return nil
	}
	if c, ok := sink.(Cuer); ok {
		return c.Cue(ctx)
	}
	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
