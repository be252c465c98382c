package runner

import (
	"log/slog"

	"github.com/viant/drafter/inspector"
)

type Option func(*Runner)

// WithConfig sets runner config, config is copied
func WithConfig(config *Config) Option {
	return func(r *Runner) {
		if config == nil {
			return
		}
		clone := *config
		r.config = &clone
	}
}

// WithConcurrency sets admission ceiling
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		r.config.MaxConcurrent = n
	}
}

// WithInspector sets tokenizer and parsers used by workers
func WithInspector(inspector inspector.Inspector) Option {
	return func(r *Runner) {
		r.inspector = inspector
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}
