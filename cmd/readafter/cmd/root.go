// Package cmd contains all CLI commands for the readafter tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/readafter/internal/config"
	"github.com/f3rmion/readafter/internal/dict"
	"github.com/f3rmion/readafter/internal/logger"
	"github.com/f3rmion/readafter/internal/segment"
	"github.com/f3rmion/readafter/internal/store/sqlite"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "readafter",
	Short: "Insert breath marks into Chinese text for read-after practice",
	Long: `readafter prepares Chinese prose for read-after (跟读) practice.

It inserts breath marks (▼) at natural pause points: after sentence
punctuation, at enumeration commas that are not part of a protected term,
and at word boundaries chosen with a configurable dictionary. Segments that
are too short are merged with their neighbours.

The marked text can be printed, turned into schemes, spoken aloud or
rehearsed segment by segment in the terminal.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/readafter)")
	flags.Bool("verbose", false, "verbose output")
	flags.Int("max-length", 0, "longest sentence left unsplit, in characters")
	flags.Int("min-length", 0, "shortest segment kept on its own, punctuation excluded")
	flags.Int("max-depth", 0, "word-split recursion limit")

	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("segment.max_length", flags.Lookup("max-length"))
	viper.BindPFlag("segment.min_length", flags.Lookup("min-length"))
	viper.BindPFlag("segment.max_depth", flags.Lookup("max-depth"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("READAFTER")
	viper.AutomaticEnv()
	viper.BindEnv("segment.max_length", "READAFTER_MAX_LENGTH")
	viper.BindEnv("segment.min_length", "READAFTER_MIN_LENGTH")
	viper.BindEnv("segment.max_depth", "READAFTER_MAX_DEPTH")
	viper.BindEnv("dictionary.data_dir", "READAFTER_DATA_DIR")
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig reads config.yaml and applies flag and environment overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(filepath.Join(getConfigDir(), config.FileName))
	if err != nil {
		return cfg, err
	}

	if v := viper.GetInt("segment.max_length"); v > 0 {
		cfg.Segment.MaxLength = v
	}
	if v := viper.GetInt("segment.min_length"); v > 0 {
		cfg.Segment.MinLength = v
	}
	if v := viper.GetInt("segment.max_depth"); v > 0 {
		cfg.Segment.MaxDepth = v
	}
	if v := viper.GetString("dictionary.data_dir"); v != "" {
		cfg.Dictionary.DataDir = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// app bundles what most commands need.
type app struct {
	cfg      config.Config
	store    *sqlite.Store
	dict     *dict.Service
	pipeline *segment.Pipeline
}

// openApp loads configuration and opens the dictionary store.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := sqlite.Open(cfg.DataDir(getConfigDir()))
	if err != nil {
		return nil, fmt.Errorf("opening dictionary store: %w", err)
	}
	logger.Debug("dictionary overrides: %s", store.Path())

	var source dict.Source = dict.EmbeddedSource{}
	if cfg.Dictionary.Dir != "" {
		source = dict.DirSource{Dir: cfg.Dictionary.Dir, Fallback: dict.EmbeddedSource{}}
		logger.Debug("dictionary defaults: %s", cfg.Dictionary.Dir)
	}

	svc := dict.NewService(source, store)
	return &app{
		cfg:   cfg,
		store: store,
		dict:  svc,
		pipeline: segment.NewPipeline(svc, segment.Settings{
			MaxLength: cfg.Segment.MaxLength,
			MinLength: cfg.Segment.MinLength,
			MaxDepth:  cfg.Segment.MaxDepth,
		}),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// process runs the pipeline over text.
func (a *app) process(ctx context.Context, text string) string {
	return a.pipeline.Process(ctx, text)
}

// readInput reads the named file, or stdin when the name is empty or "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
