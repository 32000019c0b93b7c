package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// homeMarker replaces the home directory prefix in logged paths.
const homeMarker = "~"

// RedactingHandler wraps an slog.Handler and shortens home directory paths
// in string attributes before passing records on.
type RedactingHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// home is the directory prefix to replace. Empty disables rewriting.
	home string
}

// NewRedactingHandler creates a RedactingHandler wrapping handler.
// If handler is nil, slog.Default().Handler() is used. The home directory is
// taken from os.UserHomeDir.
func NewRedactingHandler(handler slog.Handler) *RedactingHandler {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return newRedactingHandler(handler, home)
}

func newRedactingHandler(handler slog.Handler, home string) *RedactingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	home = filepath.Clean(home)
	if home == "." || home == string(filepath.Separator) {
		home = ""
	}
	return &RedactingHandler{handler: handler, home: home}
}

// Enabled delegates to the underlying handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it on.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})
	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &RedactingHandler{handler: h.handler.WithAttrs(rewritten), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// rewriteAttr rewrites a single attribute, recursing into groups.
func (h *RedactingHandler) rewriteAttr(a slog.Attr) slog.Attr {
	if h.home == "" {
		return a
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			rewritten[i] = h.rewriteAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	case slog.KindString:
		return slog.String(a.Key, h.shorten(a.Value.String()))
	default:
		return a
	}
}

// shorten replaces a leading home directory with "~".
// "/home/al" is not treated as a prefix of "/home/alice".
func (h *RedactingHandler) shorten(value string) string {
	if value == h.home {
		return homeMarker
	}
	rest, ok := strings.CutPrefix(value, h.home+string(filepath.Separator))
	if !ok {
		return value
	}
	return homeMarker + string(filepath.Separator) + rest
}

// levelFor returns Debug when verbose is set and Warn otherwise.
func levelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a text slog.Logger with path redaction.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFor(verbose)}
	return slog.New(NewRedactingHandler(slog.NewTextHandler(w, opts)))
}

// NewJSONLogger creates a JSON slog.Logger with path redaction.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFor(verbose)}
	return slog.New(NewRedactingHandler(slog.NewJSONHandler(w, opts)))
}
