package silog

import "log/slog"

// Level is the severity of a log message.
type Level slog.Level

var _ slog.Leveler = Level(0)

// Supported log levels.
const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
	LevelFatal = Level(slog.LevelError + 4)
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return slog.Level(l).String()
	}
}

// Level implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }
