package ports

// Logger receives leveled progress messages from the search engine and the
// CLI. Implementations must be safe for concurrent use: every worker logs
// through the same Logger.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}
