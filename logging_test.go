package cask

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*bytes.Buffer, zerolog.Logger) {
	var buf bytes.Buffer

	return &buf, zerolog.New(&buf).Level(zerolog.TraceLevel)
}

func TestLoggingMiddleware_LogsResolutions(t *testing.T) {
	c := New()
	buf, logger := newTestLogger()

	c.Use(NewLoggingMiddleware(logger))

	require.NoError(t, c.RegisterInstance("test", "value"))

	_, err := c.Resolve("test")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"service":"test"`)
	assert.Contains(t, out, "resolving")
	assert.Contains(t, out, "resolved")
}

func TestLoggingMiddleware_LogsFailures(t *testing.T) {
	c := New()
	buf, logger := newTestLogger()

	c.Use(NewLoggingMiddleware(logger))

	_, err := c.Resolve("nonexistent")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "resolve failed")
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "not registered")
}

func TestLoggingMiddleware_IncludesKey(t *testing.T) {
	c := New()
	buf, logger := newTestLogger()

	c.Use(NewLoggingMiddleware(logger))

	require.NoError(t, c.RegisterInstance("gw", "stripe", Keyed("stripe")))

	_, err := c.ResolveKeyed("gw", "stripe")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"key":"stripe"`)
}

func TestLoggingMiddleware_OmitsEmptyKey(t *testing.T) {
	c := New()
	buf, logger := newTestLogger()

	c.Use(NewLoggingMiddleware(logger))

	require.NoError(t, c.RegisterInstance("test", "value"))

	_, err := c.Resolve("test")
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), `"key"`)
}

func TestLoggingMiddleware_ScopeEvents(t *testing.T) {
	c := New()
	buf, logger := newTestLogger()

	c.Use(NewLoggingMiddleware(logger))

	scope := c.BeginScope()
	require.NoError(t, scope.End())

	out := buf.String()
	assert.Contains(t, out, "scope began")
	assert.Contains(t, out, "scope ended")
	assert.Contains(t, out, `"scope":"`+scope.Token()+`"`)
}

func TestLoggingMiddleware_ScopeEndedWithCleanupErrors(t *testing.T) {
	c := New()
	buf, logger := newTestLogger()

	c.Use(NewLoggingMiddleware(logger))

	err := c.Register("session", func(deps ...any) (any, error) {
		return &disposer{name: "session", disposeErr: errors.New("flush failed")}, nil
	}, AsScoped())
	require.NoError(t, err)

	scope := c.BeginScope()
	_, err = scope.Resolve("session")
	require.NoError(t, err)

	require.Error(t, scope.End())

	out := buf.String()
	assert.Contains(t, out, "scope ended with cleanup errors")
	assert.Contains(t, out, "flush failed")
}
