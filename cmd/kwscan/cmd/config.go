package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/corey/kwscan/internal/app"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the resolved configuration (file values merged with flags) and the project paths.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configYAML, "yaml", false, "Print the resolved configuration as YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	paths := app.NewPaths(root)
	cfg, path, err := loadConfig(cmd, paths)
	if err != nil {
		return fail(cmd, fmt.Errorf("%s: %w", path, err))
	}

	out := cmd.OutOrStdout()
	if configYAML {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fail(cmd, err)
		}
		fmt.Fprint(out, string(data))
		fmt.Fprintf(out, "watch_debounce: %s\n", cfg.WatchDebounce)
		return nil
	}

	fileStatus := "not found, using defaults"
	if _, err := os.Stat(path); err == nil {
		fileStatus = "loaded"
	}
	dbFile := cfg.DBPath
	if dbFile == "" {
		dbFile = paths.DB
	}
	workers := fmt.Sprintf("%d", cfg.Workers)
	if cfg.Workers == 0 {
		workers = "0 (number of CPUs)"
	}

	p := newPalette(resolveColor(colorMode, out))
	fmt.Fprintf(out, "%s\n", p.bold("⚡ kwscan config"))
	fmt.Fprintf(out, "  Config:     %s (%s)\n", path, fileStatus)
	fmt.Fprintf(out, "  Root:       %s\n", cfg.Root)
	fmt.Fprintf(out, "  Extension:  %s\n", cfg.Extension)
	fmt.Fprintf(out, "  Recursive:  %t\n", cfg.Recursive)
	fmt.Fprintf(out, "  Keywords:   %s\n", strings.Join(cfg.Keywords, ", "))
	fmt.Fprintf(out, "  Workers:    %s\n", workers)
	fmt.Fprintf(out, "  Buffer:     %d bytes\n", cfg.BufferSize)
	fmt.Fprintf(out, "  Log level:  %s\n", cfg.LogLevel)
	fmt.Fprintf(out, "  DB:         %s\n", dbFile)
	fmt.Fprintf(out, "  Save runs:  %t\n", cfg.Save)
	fmt.Fprintf(out, "  Debounce:   %s\n", cfg.WatchDebounce)
	return nil
}
