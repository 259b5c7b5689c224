// Package logging provides the gateway's slog handler: single-line,
// level-colored output meant for a terminal.
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"

	"github.com/fatih/color"
)

type Handler struct {
	l     *log.Logger
	level slog.Level
}

func NewHandler(out io.Writer, level slog.Level) *Handler {
	return &Handler{
		l:     log.New(out, "", 0),
		level: level,
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.HiBlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	attrs := ""
	r.Attrs(func(a slog.Attr) bool {
		attrs += color.GreenString(a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " "
		return true
	})

	h.l.Println(r.Time.Format("15:04:05.000"), level, r.Message, attrs)
	return nil
}

func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *Handler) WithGroup(_ string) slog.Handler { return h }

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// New builds a *slog.Logger writing to out at the given textual level
// ("debug", "info", "warn", "error").
func New(out io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(NewHandler(out, l))
}
