package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/f3rmion/readafter/internal/dict"
	"github.com/f3rmion/readafter/internal/segment"
	"github.com/f3rmion/readafter/internal/textfmt"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage segmentation dictionaries",
	Long: `Manage the word lists that steer breath-mark placement.

Categories:
  proper            terms never split (人名、地名)
  pause_proper      terms containing 、 that are never split at the 、
  no_split_before   words never followed by a breath mark (和、在)
  no_split_after    words never preceded by a breath mark (的、了)
  number            numerals
  no_number_after   words kept after a numeral (个、只)
  no_number_before  words kept before a numeral (第、每)

Edits are stored as overrides; 'reset' restores the built-in list.`,
}

var dictListCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List categories, or the words of one category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDictList,
}

var dictAddCmd = &cobra.Command{
	Use:   "add <category> <word>...",
	Short: "Add words to a category",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runDictAdd,
}

var dictRemoveCmd = &cobra.Command{
	Use:   "remove <category> <word>...",
	Short: "Remove words from a category",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runDictRemove,
}

var dictResetCmd = &cobra.Command{
	Use:   "reset [category]",
	Short: "Restore built-in word lists",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDictReset,
}

var dictExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all word lists as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDictExport,
}

var dictImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import word lists from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runDictImport,
}

var dictMatchCmd = &cobra.Command{
	Use:   "match <text>",
	Short: "Show the word boundaries where breath marks may go",
	Long: `Show how text is divided into dictionary words. A "|" marks every
boundary where a breath mark is allowed.

Example:
  readafter dict match 我们学习了第三个单元`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDictMatch,
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictListCmd, dictAddCmd, dictRemoveCmd, dictResetCmd,
		dictExportCmd, dictImportCmd, dictMatchCmd)
	dictResetCmd.Flags().Bool("all", false, "reset every category")
}

func parseCategoryArg(s string) (dict.Category, error) {
	c, err := dict.ParseCategory(s)
	if err != nil {
		return "", fmt.Errorf("%w (run 'readafter dict list' for categories)", err)
	}
	return c, nil
}

func runDictList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CATEGORY\tNAME\tWORDS\tSOURCE")
		for _, info := range dict.Categories {
			source := "built-in"
			if _, found, err := a.store.Get(ctx, info.ID); err == nil && found {
				source = "custom"
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", info.ID, info.Name, len(a.dict.Raw(ctx, info.ID)), source)
		}
		return tw.Flush()
	}

	c, err := parseCategoryArg(args[0])
	if err != nil {
		return err
	}
	for _, w := range a.dict.Raw(ctx, c) {
		fmt.Fprintln(out, w)
	}
	return nil
}

func runDictAdd(cmd *cobra.Command, args []string) error {
	c, err := parseCategoryArg(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	words := cleanWords(args[1:])
	if err := a.dict.Add(cmd.Context(), c, words...); err != nil {
		return fmt.Errorf("adding words: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %d word(s) to %s\n", len(words), c)
	return nil
}

func runDictRemove(cmd *cobra.Command, args []string) error {
	c, err := parseCategoryArg(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	words := cleanWords(args[1:])
	if err := a.dict.Remove(cmd.Context(), c, words...); err != nil {
		return fmt.Errorf("removing words: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d word(s) from %s\n", len(words), c)
	return nil
}

func runDictReset(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	if all == (len(args) == 1) {
		return fmt.Errorf("give either a category or --all")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if all {
		if err := a.dict.ResetAll(cmd.Context()); err != nil {
			return fmt.Errorf("resetting dictionaries: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All categories restored to built-in lists")
		return nil
	}

	c, err := parseCategoryArg(args[0])
	if err != nil {
		return err
	}
	if err := a.dict.Reset(cmd.Context(), c); err != nil {
		return fmt.Errorf("resetting %s: %w", c, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s restored to built-in list\n", c)
	return nil
}

func progressPrinter(cmd *cobra.Command) dict.ProgressFunc {
	return func(percent int, message string) {
		fmt.Fprintf(cmd.ErrOrStderr(), "[%3d%%] %s\n", percent, message)
	}
}

func runDictExport(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return a.dict.Export(cmd.Context(), out, time.Now(), progressPrinter(cmd))
}

func runDictImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := a.dict.Import(cmd.Context(), f, progressPrinter(cmd))
	if err != nil {
		return fmt.Errorf("importing %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d categories (export version %s)\n", len(doc.Categories), doc.Version)
	return nil
}

func runDictMatch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	lex := a.dict.Snapshot(cmd.Context())
	text := textfmt.Clean(strings.Join(args, ""))
	fmt.Fprintln(cmd.OutOrStdout(), segment.MarkBoundaries(text, lex, "|"))
	return nil
}

func cleanWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}
