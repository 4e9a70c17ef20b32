// Package runctx provides service context for dependency injection via
// context.Context. It plays the same role shelf's svcctx package plays for
// its HTTP handlers: components pull only what they need out of a single
// attached Services struct instead of threading long parameter lists.
package runctx

import (
	"context"
	"log/slog"

	"github.com/iarchive/hocr-pagenumber/internal/config"
	"github.com/iarchive/hocr-pagenumber/internal/home"
)

// Services holds the services that flow through context during a single
// inference run.
type Services struct {
	Config *config.Config
	Logger *slog.Logger
	Home   *home.Dir
	// RunID correlates all log lines and the optional --explain trace for
	// one invocation of the CLI.
	RunID string
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// LoggerFrom extracts the logger from context, falling back to slog's
// default logger so callers never need a nil check.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil && s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// ConfigFrom extracts the run configuration from context.
func ConfigFrom(ctx context.Context) *config.Config {
	if s := ServicesFrom(ctx); s != nil {
		return s.Config
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// RunIDFrom extracts the run correlation id from context.
func RunIDFrom(ctx context.Context) string {
	if s := ServicesFrom(ctx); s != nil {
		return s.RunID
	}
	return ""
}
