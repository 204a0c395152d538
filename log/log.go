// Package log is a trimmed, context-carrying severity logger in the style
// of github.com/google/gapid's core/log: callers attach structured values
// to a context.Context as they descend through a call tree, then emit a
// message at a severity through that context — "ctx.Info().Log(...)" there,
// "log.From(ctx).Info(...)" here, after collapsing the Context/Logger
// indirection the original uses to keep this package's surface
// proportionate to what a formatter actually needs from its logger: a
// handful of severities, structured key-values, and one pluggable handler.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Severity mirrors core/log's Severity enum, trimmed to the levels a CLI
// tool actually emits.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "?"
	}
}

// Value is one structured key-value attached to a logger via With.
type Value struct {
	Key   string
	Value any
}

// Handler receives every record that passes a Logger's severity filter.
// WriterHandler (the handler Default uses) writes a plain
// "severity: [tag] message k=v" line to an io.Writer.
type Handler func(sev Severity, tag string, msg string, values []Value)

// Logger carries an accumulated tag, a set of structured values, a minimum
// severity, and a Handler. Loggers are immutable: With/Tag return a new
// Logger rather than mutating the receiver, so a logger can be safely
// shared across goroutines and specialized per call site.
type Logger struct {
	tag    string
	values []Value
	min    Severity
	handle Handler
}

// WriterHandler returns a Handler that writes one line per record to w.
func WriterHandler(w io.Writer) Handler {
	return func(sev Severity, tag, msg string, values []Value) {
		fmt.Fprintf(w, "%s: ", sev)
		if tag != "" {
			fmt.Fprintf(w, "[%s] ", tag)
		}
		fmt.Fprint(w, msg)
		for _, v := range values {
			fmt.Fprintf(w, " %s=%v", v.Key, v.Value)
		}
		fmt.Fprintln(w)
	}
}

// New returns a Logger at the given minimum severity, writing through
// handle.
func New(min Severity, handle Handler) Logger {
	return Logger{min: min, handle: handle}
}

// Default returns a Logger at Info severity, writing to stderr.
func Default() Logger {
	return New(Info, WriterHandler(os.Stderr))
}

// Tag returns a Logger with tag appended (dot-joined) to the receiver's tag.
func (l Logger) Tag(tag string) Logger {
	n := l
	if n.tag == "" {
		n.tag = tag
	} else {
		n.tag = n.tag + "." + tag
	}
	return n
}

// With returns a Logger with an additional structured value attached.
func (l Logger) With(key string, value any) Logger {
	n := l
	n.values = append(append([]Value{}, l.values...), Value{Key: key, Value: value})
	return n
}

func (l Logger) log(sev Severity, msg string) {
	if sev < l.min || l.handle == nil {
		return
	}
	l.handle(sev, l.tag, msg, l.values)
}

func (l Logger) Debug(msg string, args ...any)   { l.log(Debug, fmt.Sprintf(msg, args...)) }
func (l Logger) Info(msg string, args ...any)    { l.log(Info, fmt.Sprintf(msg, args...)) }
func (l Logger) Warning(msg string, args ...any) { l.log(Warning, fmt.Sprintf(msg, args...)) }
func (l Logger) Error(msg string, args ...any)   { l.log(Error, fmt.Sprintf(msg, args...)) }

type ctxKey struct{}

// WithContext attaches l to ctx, so a later call to From(ctx) recovers it.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From recovers the Logger attached to ctx, or Default() if none was
// attached.
func From(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok {
		return l
	}
	return Default()
}
