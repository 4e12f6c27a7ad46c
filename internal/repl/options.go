package repl

import (
	"log/slog"
)

// Option configures a Session.
type Option func(*Session)

// WithSettings sets the initial display settings.
func WithSettings(s *Settings) Option {
	return func(sess *Session) {
		sess.settings.Store(s)
	}
}

// WithInteractive controls whether the prompt is written before each read.
func WithInteractive(interactive bool) Option {
	return func(sess *Session) {
		sess.interactive = interactive
	}
}

// WithLogger sets the logger; the session id is attached to it.
func WithLogger(logger *slog.Logger) Option {
	return func(sess *Session) {
		sess.logger = logger
	}
}
