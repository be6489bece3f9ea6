package cask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyed_EmptyKeyEqualsUnkeyed(t *testing.T) {
	c := New()

	require.NoError(t, c.RegisterInstance("db", "postgres", Keyed("")))

	value, err := c.Resolve("db")
	require.NoError(t, err)
	assert.Equal(t, "postgres", value)

	keyed, err := c.ResolveKeyed("db", "")
	require.NoError(t, err)
	assert.Equal(t, value, keyed)
}

func TestResolve_NilValueIsAValidInstance(t *testing.T) {
	c := New()

	callCount := 0
	err := c.Register("nothing", func(deps ...any) (any, error) {
		callCount++

		return nil, nil
	}, AsSingleton())
	require.NoError(t, err)

	value, err := c.Resolve("nothing")
	require.NoError(t, err)
	assert.Nil(t, value)

	// A nil instance still counts as built and is cached.
	value, err = c.Resolve("nothing")
	require.NoError(t, err)
	assert.Nil(t, value)
	assert.Equal(t, 1, callCount)
}

func TestGetAll_MixedKeyedAndUnkeyed(t *testing.T) {
	c := New()

	require.NoError(t, c.RegisterInstance("gw", "default"))
	require.NoError(t, c.RegisterInstance("gw", "stripe", Keyed("stripe")))
	require.NoError(t, c.RegisterInstance("gw", "paypal", Keyed("paypal")))

	assert.Equal(t, []any{"default", "stripe", "paypal"}, c.GetAll("gw"))
}

func TestRegister_AfterResolvePurgesCachedSingleton(t *testing.T) {
	c := New()

	err := c.Register("db", func(deps ...any) (any, error) {
		return "postgres", nil
	}, AsSingleton())
	require.NoError(t, err)

	value, err := c.Resolve("db")
	require.NoError(t, err)
	assert.Equal(t, "postgres", value)

	err = c.Register("db", func(deps ...any) (any, error) {
		return "mysql", nil
	}, AsSingleton())
	require.NoError(t, err)

	value, err = c.Resolve("db")
	require.NoError(t, err)
	assert.Equal(t, "mysql", value)
}

func TestRegister_OverwriteDoesNotDisposeOldSingleton(t *testing.T) {
	c := New()

	err := c.Register("db", func(deps ...any) (any, error) {
		return &disposer{name: "db"}, nil
	}, AsSingleton())
	require.NoError(t, err)

	value, err := c.Resolve("db")
	require.NoError(t, err)
	old := value.(*disposer)

	err = c.Register("db", func(deps ...any) (any, error) {
		return &disposer{name: "db-v2"}, nil
	}, AsSingleton())
	require.NoError(t, err)

	// Purged instances are not disposed; callers may still hold them.
	assert.False(t, old.disposed)
}

func TestScope_ResolveDoesNotCacheTransients(t *testing.T) {
	c := New()

	callCount := 0
	err := c.Register("request-id", func(deps ...any) (any, error) {
		callCount++

		return callCount, nil
	})
	require.NoError(t, err)

	scope := c.BeginScope()
	defer func() { _ = scope.End() }()

	first, err := scope.Resolve("request-id")
	require.NoError(t, err)
	second, err := scope.Resolve("request-id")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, callCount)
}

func TestResolve_DependencyResolvedFreshPerTopLevelCall(t *testing.T) {
	c := New()

	callCount := 0
	err := c.Register("db", func(deps ...any) (any, error) {
		callCount++

		return callCount, nil
	})
	require.NoError(t, err)

	err = c.Register("repo", func(deps ...any) (any, error) {
		return deps[0], nil
	}, WithDeps(Ref("db")))
	require.NoError(t, err)

	first, err := c.Resolve("repo")
	require.NoError(t, err)
	second, err := c.Resolve("repo")
	require.NoError(t, err)

	// Transient dependencies are rebuilt per resolution.
	assert.NotEqual(t, first, second)
}

func TestContainer_ManyRegistrations(t *testing.T) {
	c := New()

	const count = 100
	for i := 0; i < count; i++ {
		name := string(rune('a'+i%26)) + string(rune('0'+i/26))
		require.NoError(t, c.RegisterInstance(name, i))
	}

	assert.Len(t, c.Registrations(), count)
	require.NoError(t, c.Validate())
}
