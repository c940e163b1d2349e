// Package log provides structured logging for the vinv application.
//
// It wraps [log/slog] with a small surface: leveled logging (including a
// Trace level below Debug), selectable text or JSON output, optional
// colorized pretty printing, and functional options for configuration.
//
// The zero value of [Logger] is a valid no-op logger. Packages that accept a
// Logger can therefore treat logging as strictly optional:
//
//	var logger log.Logger // discards everything
//	logger.Debug("never seen")
//
// A package-level default logger writes to stderr and is reconfigured with
// [Config]:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatText))
//	log.Info("ready", slog.String("version", pkg.Version))
package log
