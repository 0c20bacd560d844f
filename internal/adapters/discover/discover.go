// Package discover lists the corpus files a search runs over: regular files
// under a root directory whose names end in a given extension.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrDirectoryUnavailable is returned when the root is missing, unreadable
// or not a directory. The accompanying file list is always empty.
var ErrDirectoryUnavailable = errors.New("directory unavailable")

// DefaultExtension is the extension matched when none is configured.
const DefaultExtension = ".txt"

// skipDirs lists directories never descended into during a recursive walk.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".venv":        true,
	"__pycache__":  true,
	"vendor":       true,
	".idea":        true,
	".vscode":      true,
	".kwscan":      true,
}

// Options controls which files are collected.
type Options struct {
	// Extension is matched as a filename suffix (".txt"). Empty means DefaultExtension.
	Extension string
	// Recursive walks subdirectories; otherwise only direct children of root are listed.
	Recursive bool
	// ExcludeDirs are extra directory names to skip in a recursive walk.
	ExcludeDirs []string
}

// Files returns the matching files under root, sorted. Unreadable entries
// below root are skipped silently.
func Files(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return []string{}, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	if !info.IsDir() {
		return []string{}, fmt.Errorf("%w: %s is not a directory", ErrDirectoryUnavailable, root)
	}

	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	if !opts.Recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return []string{}, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
		}
		files := make([]string, 0, len(entries))
		for _, e := range entries {
			path := filepath.Join(root, e.Name())
			if strings.HasSuffix(e.Name(), ext) && isRegular(path, e) {
				files = append(files, path)
			}
		}
		return files, nil
	}

	exclude := make(map[string]bool, len(opts.ExcludeDirs))
	for _, d := range opts.ExcludeDirs {
		exclude[d] = true
	}

	files := []string{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || exclude[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) && isRegular(path, d) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return []string{}, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	sort.Strings(files)
	return files, nil
}

// isRegular reports whether d is a regular file, following a symlink to
// its target. Dangling links are not files.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
