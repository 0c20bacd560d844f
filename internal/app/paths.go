package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .kwscan/ project directory.
type Paths struct {
	Root      string // .kwscan/
	Config    string // .kwscan/config.yaml
	DB        string // .kwscan/kwscan.db
	RunDir    string // .kwscan/run/
	WatchLock string // .kwscan/run/watch.lock
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".kwscan")
	return &Paths{
		Root:      root,
		Config:    filepath.Join(root, "config.yaml"),
		DB:        filepath.Join(root, "kwscan.db"),
		RunDir:    filepath.Join(root, "run"),
		WatchLock: filepath.Join(root, "run", "watch.lock"),
	}
}

// EnsureDirs creates the .kwscan/ and run/ directories.
func (p *Paths) EnsureDirs() error {
	for _, dir := range []string{p.Root, p.RunDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
