package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/readafter/internal/logger"
	"github.com/f3rmion/readafter/internal/scheme"
	"github.com/f3rmion/readafter/internal/speech"
)

var schemeCmd = &cobra.Command{
	Use:   "scheme <notes.json>",
	Short: "Create read-after schemes from notes",
	Long: `Create read-after schemes from a JSON array of notes.

Each note's content is marked with breath points and given a title taken
from its first sentence. Schemes are written as JSON to stdout or --output.

Example:
  readafter scheme notes.json --ids n1,n3 -o schemes.json`,
	Args: cobra.ExactArgs(1),
	RunE: runScheme,
}

func init() {
	rootCmd.AddCommand(schemeCmd)
	schemeCmd.Flags().StringSlice("ids", nil, "note ids to convert (default: all)")
	schemeCmd.Flags().StringP("output", "o", "", "write schemes to this file")
}

func runScheme(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening notes: %w", err)
	}
	defer f.Close()

	notes, err := scheme.ReadNotes(f)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ids, _ := cmd.Flags().GetStringSlice("ids")
	logger.Info("read %d notes from %s", len(notes), args[0])
	schemes, err := scheme.NewBuilder(a.pipeline).FromNotes(cmd.Context(), ids, notes)
	if err != nil {
		return fmt.Errorf("creating schemes: %w", err)
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := scheme.WriteSchemes(out, schemes); err != nil {
		return err
	}

	texts := make([]string, len(schemes))
	for i, s := range schemes {
		texts[i] = s.Text
	}
	d := speech.EstimateDuration(texts, a.cfg.Speech.SecondsPerSegment)
	fmt.Fprintf(cmd.ErrOrStderr(), "Created %d scheme(s), about %s of read-after practice\n", len(schemes), speech.FormatDuration(d))
	return nil
}
