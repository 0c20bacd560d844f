package ports

// Watcher monitors a corpus directory for file changes so a search can be
// re-run. The adapter (fsnotify) filters out ignored directories and files
// rejected by match before invoking onChange. Only one Watch call should be
// active at a time.
type Watcher interface {
	// Watch starts monitoring root. When recursive is false only root
	// itself is watched. onChange is called with the path of each changed
	// file accepted by match (nil accepts every file). The callback may be
	// invoked from any goroutine. Returns an error if the directory doesn't
	// exist or permissions are insufficient.
	Watch(root string, recursive bool, match func(path string) bool, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
