package cask

import "github.com/rs/zerolog"

// NewLoggingMiddleware returns middleware that logs resolutions and scope
// transitions through logger. Successful resolutions log at debug,
// failures at error, scope events at debug.
func NewLoggingMiddleware(logger zerolog.Logger) Middleware {
	return &loggingMiddleware{logger: logger}
}

type loggingMiddleware struct {
	logger zerolog.Logger
}

func (m *loggingMiddleware) BeforeResolve(name, key string) error {
	evt := m.logger.Trace().Str("service", name)
	if key != "" {
		evt = evt.Str("key", key)
	}
	evt.Msg("resolving")

	return nil
}

func (m *loggingMiddleware) AfterResolve(name, key string, instance any, err error) {
	if err != nil {
		evt := m.logger.Error().Err(err).Str("service", name)
		if key != "" {
			evt = evt.Str("key", key)
		}
		evt.Msg("resolve failed")

		return
	}

	evt := m.logger.Debug().Str("service", name)
	if key != "" {
		evt = evt.Str("key", key)
	}
	evt.Msg("resolved")
}

func (m *loggingMiddleware) ScopeBegan(token string) {
	m.logger.Debug().Str("scope", token).Msg("scope began")
}

func (m *loggingMiddleware) ScopeEnded(token string, err error) {
	if err != nil {
		m.logger.Error().Err(err).Str("scope", token).Msg("scope ended with cleanup errors")

		return
	}

	m.logger.Debug().Str("scope", token).Msg("scope ended")
}
