// Package log configures the zerolog logger shared by the CLI and services.
package log

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Field names used across the codebase
const (
	FieldMessageID    = "message_id"
	FieldRecordType   = "type"
	FieldRollTemplate = "rolltemplate"
	FieldArchiveID    = "archive_id"
	FieldChannelID    = "channel_id"
	FieldSource       = "source"
)

// Config holds logger configuration
type Config struct {
	// Level is the minimum level logged, e.g. "debug" or "warn"
	Level string

	// Pretty switches to human readable console output
	Pretty bool

	// Out is where logs are written. Defaults to stderr so the
	// transcript can go to stdout.
	Out io.Writer
}

var (
	global zerolog.Logger
	mu     sync.RWMutex
)

func init() {
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// New creates a configured logger
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

// Init replaces the global logger
func Init(cfg Config) {
	logger := New(cfg)
	mu.Lock()
	global = logger
	mu.Unlock()
}

// L returns the global logger
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

type ctxKey struct{}

// WithLogger stores a logger in the context
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// Ctx returns the logger stored in the context, or the global logger
func Ctx(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
			return l
		}
	}
	return L()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
