package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/f3rmion/readafter/internal/speech"
)

var speakCmd = &cobra.Command{
	Use:   "speak [file]...",
	Short: "Play text one breath segment at a time",
	Long: `Play text one breath segment at a time, leaving a pause after each
segment for you to repeat it.

Text is marked first unless --marked is given. Without a speech command the
segments are printed; set speech.command in config.yaml or pass --command to
voice them, for example --command say or --command espeak-ng,-v,zh.

Press Ctrl+C to stop; the position is printed so you can resume with --from.`,
	RunE: runSpeak,
}

func init() {
	rootCmd.AddCommand(speakCmd)
	speakCmd.Flags().Bool("marked", false, "input already contains breath marks")
	speakCmd.Flags().Int("repeat", 0, "times each segment is voiced (default from config)")
	speakCmd.Flags().Bool("cue", true, "prompt after each segment")
	speakCmd.Flags().Duration("pause-per-char", 0, "silence left per character for repeating")
	speakCmd.Flags().StringSlice("command", nil, "text-to-speech program and arguments")
	speakCmd.Flags().IntSlice("from", nil, "resume at text,segment (0-based)")
	speakCmd.Flags().Bool("estimate", false, "only print the estimated duration")
}

func loadTexts(cmd *cobra.Command, args []string, a *app) ([]string, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	marked, _ := cmd.Flags().GetBool("marked")

	texts := make([]string, 0, len(args))
	for _, arg := range args {
		text, err := readInput([]string{arg})
		if err != nil {
			return nil, err
		}
		if !marked {
			text = a.process(cmd.Context(), text)
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func parsePosition(v []int) (speech.Position, error) {
	switch len(v) {
	case 0:
		return speech.Position{}, nil
	case 2:
		return speech.Position{Text: v[0], Segment: v[1]}, nil
	}
	return speech.Position{}, fmt.Errorf("--from takes text,segment, got %v", v)
}

func runSpeak(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	texts, err := loadTexts(cmd, args, a)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	d := speech.EstimateDuration(texts, a.cfg.Speech.SecondsPerSegment)
	if e, _ := cmd.Flags().GetBool("estimate"); e {
		fmt.Fprintln(out, speech.FormatDuration(d))
		return nil
	}

	from, _ := cmd.Flags().GetIntSlice("from")
	start, err := parsePosition(from)
	if err != nil {
		return err
	}

	repeat, _ := cmd.Flags().GetInt("repeat")
	if repeat == 0 {
		repeat = a.cfg.Speech.Repeat
	}
	cue, _ := cmd.Flags().GetBool("cue")
	pause, _ := cmd.Flags().GetDuration("pause-per-char")

	command, _ := cmd.Flags().GetStringSlice("command")
	if len(command) == 0 {
		command = a.cfg.Speech.Command
	}

	var sink speech.Sink = speech.WriterSink{W: out}
	if len(command) > 0 {
		sink = speech.CommandSink{Name: command[0], Args: command[1:]}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "Estimated duration: %s\n", speech.FormatDuration(d))
	pos, err := speech.Play(ctx, sink, texts, speech.Options{
		Start:        start,
		Repeat:       repeat,
		Cue:          cue,
		PausePerRune: pause,
		OnSegment: func(p speech.Position, u speech.Utterance) {
			if len(command) > 0 {
				fmt.Fprintf(out, "[%d.%d] %s\n", p.Text+1, p.Segment+1, u.Text)
			}
		},
	})
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nStopped. Resume with --from %d,%d\n", pos.Text, pos.Segment)
		return nil
	}
	if err != nil {
		return fmt.Errorf("playing segment %d.%d: %w", pos.Text+1, pos.Segment+1, err)
	}

	return nil
}
