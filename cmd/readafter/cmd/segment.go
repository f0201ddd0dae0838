package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/f3rmion/readafter/internal/clipboard"
	"github.com/f3rmion/readafter/internal/pinyin"
	"github.com/f3rmion/readafter/internal/segment"
	"github.com/f3rmion/readafter/internal/speech"
	"github.com/f3rmion/readafter/internal/textfmt"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [file]",
	Short: "Insert breath marks into text",
	Long: `Insert breath marks (▼) into Chinese text read from a file or stdin.

Examples:
  readafter segment article.txt
  echo "今天天气很好。" | readafter segment
  readafter segment --table --pinyin article.txt
  readafter segment --trace article.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
	segmentCmd.Flags().Bool("format", false, "normalise punctuation, width and spacing first")
	segmentCmd.Flags().Bool("trace", false, "print the output of every stage")
	segmentCmd.Flags().Bool("table", false, "print one numbered segment per row")
	segmentCmd.Flags().Bool("pinyin", false, "add pinyin to table rows")
	segmentCmd.Flags().Bool("copy", false, "copy the marked text to the clipboard")
}

func runSegment(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if f, _ := cmd.Flags().GetBool("format"); f {
		text = textfmt.Format(text)
	} else {
		text = textfmt.Clean(text)
	}

	trace := a.pipeline.Stages(cmd.Context(), text)
	out := cmd.OutOrStdout()

	if t, _ := cmd.Flags().GetBool("trace"); t {
		printTrace(cmd, trace, a.pipeline.Settings().MaxLength)
	}

	if t, _ := cmd.Flags().GetBool("table"); t {
		withPinyin, _ := cmd.Flags().GetBool("pinyin")
		printTable(cmd, trace.Final, withPinyin)
	} else {
		fmt.Fprintln(out, trace.Final)
	}

	if c, _ := cmd.Flags().GetBool("copy"); c {
		if err := clipboard.Write(trace.Final); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Copied to clipboard.")
		}
	}

	return nil
}

func printTrace(cmd *cobra.Command, t segment.Trace, maxLength int) {
	out := cmd.OutOrStdout()
	section := func(name, body string) {
		fmt.Fprintf(out, "── %s ──\n%s\n\n", name, body)
	}

	section("pre-break", t.PreBroken)

	var sentences strings.Builder
	for i, s := range t.Sentences {
		marker := " "
		if s.Length > maxLength {
			marker = "*"
		}
		fmt.Fprintf(&sentences, "%s%3d  %3d  %s\n", marker, i+1, s.Length, s.Text)
	}
	section("sentences", strings.TrimRight(sentences.String(), "\n"))
	section("long split", t.LongSplit)
	section("merged", t.Merged)
	section("final", t.Final)
}

func printTable(cmd *cobra.Command, marked string, withPinyin bool) {
	out := cmd.OutOrStdout()
	segments := speech.Segments(marked)

	width := 0
	for _, s := range segments {
		width = max(width, runewidth.StringWidth(s))
	}

	var parser *pinyin.Parser
	if withPinyin {
		parser = pinyin.NewParser()
	}

	fmt.Fprintf(out, "%4s  %4s  %s\n", "#", "len", "segment")
	for i, s := range segments {
		line := fmt.Sprintf("%4d  %4d  %s", i+1, segment.EffectiveLength(s), runewidth.FillRight(s, width))
		if parser != nil {
			line += "  " + parser.Line(s)
		}
		fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
}
