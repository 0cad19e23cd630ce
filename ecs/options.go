package ecs

import "github.com/rs/zerolog"

// Option configures an EntityManager.
type Option func(*EntityManager)

// WithLogger sets the logger used for index maintenance events. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *EntityManager) {
		m.logger = logger.With().Str("component", "entity-manager").Logger()
	}
}

// WithInitialCapacity presizes the entity table for n entities.
func WithInitialCapacity(n int) Option {
	return func(m *EntityManager) {
		if n > 0 {
			m.capacity = n
		}
	}
}
