// Package logger provides a structured logging interface for wallgrab.
//
// It wraps zerolog with:
//   - levels debug, info, warn, error and disabled
//   - structured fields via WithField / WithFields / WithError
//   - console output on stderr (stdout belongs to the progress console)
//   - optional append-only file output
//   - a global instance plus NewNopLogger and TestLogger for tests
//
// Usage:
//
//	if err := logger.InitializeWithWriter(&cfg.Logging, os.Stderr); err != nil {
//	    return err
//	}
//	logger.GetLogger().WithField("page", 3).Info("Listing fetched")
package logger
