package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/readafter/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize readafter configuration",
	Long: `Initialize readafter configuration in your config directory.

This writes config.yaml with the default segmentation limits:
  - segment.max_length   (20) longest sentence left unsplit
  - segment.min_length   (6)  shortest segment kept on its own
  - segment.max_depth    (3)  word-split recursion limit

Dictionary edits made with 'readafter dict' are stored next to it in
readafter.db.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized readafter configuration in %s\n\n", configDir)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit config.yaml to tune segment lengths or set speech.command")
	fmt.Fprintln(out, "  2. Run 'readafter segment <file>' to mark a text")
	fmt.Fprintln(out, "  3. Run 'readafter dict add proper <word>' to protect a term")

	return nil
}
