// Package silog is the logger used throughout pq.
//
// It wraps a [log/slog] logger that renders through
// the handler from go.abhg.dev/log/silog,
// and adds printf-style methods and a fatal level.
// Messages are printed without timestamps:
//
//	INF feat1: created on main
//	WRN feat2: push skipped  error=...
package silog

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"go.abhg.dev/log/silog"
)

// Options configures a [Logger].
type Options struct {
	// Level is the minimum level to print.
	// Defaults to LevelInfo.
	Level Level

	// OnFatal is called after a fatal message is printed.
	// It must not return.
	// Defaults to exiting with status 1.
	OnFatal func() // optional

	// Style overrides the output style.
	// By default, terminals get colored output
	// and everything else gets plain text.
	Style *silog.Style // optional
}

// Logger posts structured and printf-style messages.
// A nil Logger discards everything except fatal messages,
// which still exit the program.
type Logger struct {
	sl      *slog.Logger
	lvl     *slog.LevelVar
	onFatal func()
}

// New builds a logger that writes to w.
func New(w io.Writer, opts *Options) *Logger {
	opts = cmp.Or(opts, &Options{Level: LevelInfo})

	style := opts.Style
	if style == nil {
		style = styleFor(w)
	}

	lvl := new(slog.LevelVar)
	lvl.Set(opts.Level.Level())

	handler := silog.NewHandler(w, &silog.HandlerOptions{
		Level:       lvl,
		Style:       style,
		ReplaceAttr: dropTime,
	})

	onFatal := opts.OnFatal
	if onFatal == nil {
		onFatal = exitOnFatal
	}

	return &Logger{
		sl:      slog.New(handler),
		lvl:     lvl,
		onFatal: onFatal,
	}
}

// Nop returns a logger that discards all messages.
func Nop() *Logger {
	return New(io.Discard, &Options{Level: LevelInfo, Style: silog.PlainStyle(nil)})
}

func styleFor(w io.Writer) *silog.Style {
	var style *silog.Style
	if f, ok := w.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
		style = silog.DefaultStyle(nil)
	} else {
		style = silog.PlainStyle(nil)
	}
	style.LevelLabels[LevelFatal.Level()] = style.LevelLabels[slog.LevelError].SetString("FTL")
	return style
}

func dropTime(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return attr
}

// Level reports the minimum level that is printed.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelFatal + 1
	}
	return Level(l.lvl.Level())
}

// SetLevel changes the minimum level for this logger
// and all loggers derived from it with [Logger.With].
func (l *Logger) SetLevel(lvl Level) {
	if l != nil {
		l.lvl.Set(lvl.Level())
	}
}

// With returns a logger that adds the given key-value pairs
// to every message.
func (l *Logger) With(kvs ...any) *Logger {
	if l == nil || len(kvs) == 0 {
		return l
	}
	newL := *l
	newL.sl = l.sl.With(kvs...)
	return &newL
}

// Log posts msg at lvl with the given key-value pairs.
func (l *Logger) Log(lvl Level, msg string, kvs ...any) {
	if l == nil {
		if lvl >= LevelFatal {
			_osExit(1)
		}
		return
	}

	l.sl.Log(context.Background(), lvl.Level(), msg, kvs...)
	if lvl >= LevelFatal {
		l.onFatal()
		panic("unreachable: OnFatal returned")
	}
}

// Logf posts a printf-style message at lvl.
func (l *Logger) Logf(lvl Level, format string, args ...any) {
	l.Log(lvl, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(msg string, kvs ...any) { l.Log(LevelDebug, msg, kvs...) }
func (l *Logger) Info(msg string, kvs ...any)  { l.Log(LevelInfo, msg, kvs...) }
func (l *Logger) Warn(msg string, kvs ...any)  { l.Log(LevelWarn, msg, kvs...) }
func (l *Logger) Error(msg string, kvs ...any) { l.Log(LevelError, msg, kvs...) }

// Fatal posts msg and exits the program.
func (l *Logger) Fatal(msg string, kvs ...any) { l.Log(LevelFatal, msg, kvs...) }

func (l *Logger) Debugf(format string, args ...any) { l.Logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.Logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.Logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LevelError, format, args...) }

// Fatalf posts a printf-style message and exits the program.
func (l *Logger) Fatalf(format string, args ...any) { l.Logf(LevelFatal, format, args...) }

var _osExit = os.Exit

func exitOnFatal() { _osExit(1) }
