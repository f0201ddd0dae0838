package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/readafter/internal/logger"
	"github.com/f3rmion/readafter/internal/scheme"
	"github.com/f3rmion/readafter/internal/speech"
	"github.com/f3rmion/readafter/internal/tui"
	"github.com/f3rmion/readafter/internal/tui/banner"
)

var rehearseCmd = &cobra.Command{
	Use:   "rehearse [file]...",
	Short: "Step through breath segments in the terminal",
	Long: `Open an interactive screen that shows one breath segment at a time
with its pinyin, the previous and the next segment.

Keys:
  →/space   next segment        ←   previous segment
  g         jump to a segment   p   toggle pinyin
  b         toggle block art    s   speak (with speech.command)
  y         copy segment        q   quit`,
	RunE: runRehearse,
}

func init() {
	rootCmd.AddCommand(rehearseCmd)
	rehearseCmd.Flags().Bool("marked", false, "input already contains breath marks")
	rehearseCmd.Flags().IntSlice("from", nil, "start at text,segment (0-based)")
	rehearseCmd.Flags().StringSlice("command", nil, "text-to-speech program and arguments")
}

func runRehearse(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	texts, err := loadTexts(cmd, args, a)
	if err != nil {
		return err
	}

	from, _ := cmd.Flags().GetIntSlice("from")
	start, err := parsePosition(from)
	if err != nil {
		return err
	}

	scripts := make([]tui.Script, len(texts))
	for i, t := range texts {
		title := "stdin"
		if i < len(args) && args[i] != "-" {
			title = filepath.Base(args[i])
		}
		scripts[i] = tui.Script{Title: title + " · " + scheme.ExtractTitle(t), Text: t}
	}

	opts := tui.Options{Start: start}

	command, _ := cmd.Flags().GetStringSlice("command")
	if len(command) == 0 {
		command = a.cfg.Speech.Command
	}
	if len(command) > 0 {
		opts.Sink = speech.CommandSink{Name: command[0], Args: command[1:]}
	}

	if face, err := banner.LoadSystemFace(); err == nil {
		opts.Banner = banner.NewRenderer(face)
	} else {
		logger.Debug("block art disabled: %v", err)
	}

	pos, err := tui.Run(scripts, opts)
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Stopped at %d,%d (resume with --from %d,%d)\n", pos.Text, pos.Segment, pos.Text, pos.Segment)
	return nil
}
