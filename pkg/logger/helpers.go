package logger

// LogRequest logs HTTP request information at debug level. Status failures
// are reported by whoever handles the returned error.
func LogRequest(l Logger, method, url string, statusCode int, durationMs float64) {
	fields := map[string]interface{}{
		"method":      method,
		"url":         url,
		"status_code": statusCode,
		"duration_ms": durationMs,
	}

	if statusCode >= 200 && statusCode < 300 {
		l.DebugWithFields("HTTP request completed", fields)
		return
	}
	l.DebugWithFields("HTTP request unsuccessful", fields)
}

// LogItem logs the outcome of one wallpaper on a listing page
func LogItem(l Logger, page, index int, outcome string, err error) {
	entry := l.WithFields(map[string]interface{}{
		"page":    page,
		"index":   index,
		"outcome": outcome,
	})

	if err != nil {
		entry.WithError(err).Debug("Wallpaper skipped after error")
		return
	}
	entry.Debug("Wallpaper processed")
}

// LogPageSummary logs the per-page counters
func LogPageSummary(l Logger, page, found, downloaded, skipped, failed int) {
	l.InfoWithFields("Page processed", map[string]interface{}{
		"page":       page,
		"found":      found,
		"downloaded": downloaded,
		"skipped":    skipped,
		"failed":     failed,
	})
}

// NewNopLogger creates a no-operation logger for testing
func NewNopLogger() Logger {
	return &nopLogger{}
}

// nopLogger is a logger that does nothing (useful for testing)
type nopLogger struct{}

func (n *nopLogger) Debug(msg string)                                          {}
func (n *nopLogger) Info(msg string)                                           {}
func (n *nopLogger) Warn(msg string)                                           {}
func (n *nopLogger) Error(msg string)                                          {}
func (n *nopLogger) WithField(key string, value interface{}) Logger            { return n }
func (n *nopLogger) WithFields(fields map[string]interface{}) Logger           { return n }
func (n *nopLogger) WithError(err error) Logger                                { return n }
func (n *nopLogger) DebugWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) InfoWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) WarnWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) ErrorWithFields(msg string, fields map[string]interface{}) {}
