package cmd

import (
	"fmt"
	"os"

	"github.com/corey/kwscan/internal/adapters/logger"
	"github.com/corey/kwscan/internal/app"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	dbPath     string
	colorMode  string
)

var rootCmd = &cobra.Command{
	Use:           "kwscan",
	Short:         "kwscan: parallel keyword search over text files",
	Long:          "Finds which files of a directory contain each of a set of keywords, using Boyer-Moore-Horspool matchers across parallel workers.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	return dir
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default .kwscan/config.yaml)")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&dbPath, "db", "", "Run database path (default .kwscan/kwscan.db)")
	pf.StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the persistent flags.
func loadConfig(cmd *cobra.Command, paths *app.Paths) (*app.Config, string, error) {
	path := configPath
	if path == "" {
		path = paths.Config
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		return nil, path, err
	}
	var o app.Overrides
	if cmd.Flags().Changed("log-level") {
		lvl := logger.NormalizeLevel(logLevel)
		o.LogLevel = &lvl
	}
	if cmd.Flags().Changed("db") {
		o.DBPath = &dbPath
	}
	cfg.MergeWithFlags(o)
	return cfg, path, nil
}

// setupApp loads and validates the configuration, applies the command's
// own overrides, and builds an App logging to the command's stderr.
func setupApp(cmd *cobra.Command, o app.Overrides) (*app.App, error) {
	root := projectRoot()
	paths := app.NewPaths(root)
	cfg, path, err := loadConfig(cmd, paths)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.MergeWithFlags(o)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log := logger.NewConsole(cmd.ErrOrStderr(), cfg.LogLevel)
	return app.New(cfg, root, log), nil
}

// fail reports err on stderr and returns the error exit code.
func fail(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "kwscan: %v\n", err)
	return exitError{2}
}
