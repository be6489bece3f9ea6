package cask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerChain(t *testing.T, c *Container, name string, deps ...Dep) {
	t.Helper()

	err := c.Register(name, func(d ...any) (any, error) {
		return name, nil
	}, WithDeps(deps...))
	require.NoError(t, err)
}

func TestResolve_CircularDependency_Direct(t *testing.T) {
	c := New()

	registerChain(t, c, "a", Ref("b"))
	registerChain(t, c, "b", Ref("a"))

	_, err := c.Resolve("a")
	assert.ErrorIs(t, err, ErrCircularDependency)

	var cycle *CircularDependencyError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"a", "b", "a"}, cycle.Path)
	assert.Contains(t, err.Error(), "a -> b -> a")
}

func TestResolve_CircularDependency_SelfReference(t *testing.T) {
	c := New()

	registerChain(t, c, "a", Ref("a"))

	_, err := c.Resolve("a")
	assert.ErrorIs(t, err, ErrCircularDependency)

	var cycle *CircularDependencyError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"a", "a"}, cycle.Path)
}

func TestResolve_CircularDependency_Deep(t *testing.T) {
	c := New()

	registerChain(t, c, "a", Ref("b"))
	registerChain(t, c, "b", Ref("c"))
	registerChain(t, c, "c", Ref("a"))

	_, err := c.Resolve("a")
	assert.ErrorIs(t, err, ErrCircularDependency)

	var cycle *CircularDependencyError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cycle.Path)
}

func TestResolve_CircularDependency_PathStartsAtFirstOccurrence(t *testing.T) {
	c := New()

	// The entry point sits outside the cycle; the reported path must not
	// include it.
	registerChain(t, c, "root", Ref("a"))
	registerChain(t, c, "a", Ref("b"))
	registerChain(t, c, "b", Ref("a"))

	_, err := c.Resolve("root")
	assert.ErrorIs(t, err, ErrCircularDependency)

	var cycle *CircularDependencyError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"a", "b", "a"}, cycle.Path)
}

func TestResolve_CircularDependency_KeyedFrames(t *testing.T) {
	c := New()

	registerChain(t, c, "a", RefKeyed("gateway", "stripe"))

	err := c.Register("gateway", func(d ...any) (any, error) {
		return "gateway", nil
	}, Keyed("stripe"), WithDeps(Ref("a")))
	require.NoError(t, err)

	_, err = c.Resolve("a")
	assert.ErrorIs(t, err, ErrCircularDependency)

	var cycle *CircularDependencyError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"a", "gateway[stripe]", "a"}, cycle.Path)
}

func TestResolve_DiamondDependencyIsNotACycle(t *testing.T) {
	c := New()
	sharedCount := 0

	err := c.Register("shared", func(d ...any) (any, error) {
		sharedCount++

		return "shared", nil
	})
	require.NoError(t, err)

	registerChain(t, c, "left", Ref("shared"))
	registerChain(t, c, "right", Ref("shared"))
	registerChain(t, c, "root", Ref("left"), Ref("right"))

	v, err := c.Resolve("root")
	assert.NoError(t, err)
	assert.Equal(t, "root", v)

	// Transient: both branches built their own copy
	assert.Equal(t, 2, sharedCount)
}

func TestResolve_DiamondDependency_SingletonBuiltOnce(t *testing.T) {
	c := New()
	sharedCount := 0

	err := c.Register("shared", func(d ...any) (any, error) {
		sharedCount++

		return "shared", nil
	}, AsSingleton())
	require.NoError(t, err)

	registerChain(t, c, "left", Ref("shared"))
	registerChain(t, c, "right", Ref("shared"))
	registerChain(t, c, "root", Ref("left"), Ref("right"))

	_, err = c.Resolve("root")
	assert.NoError(t, err)
	assert.Equal(t, 1, sharedCount)
}

func TestResolve_CycleDoesNotPoisonLaterCalls(t *testing.T) {
	c := New()

	registerChain(t, c, "a", Ref("b"))
	registerChain(t, c, "b", Ref("a"))

	_, err := c.Resolve("a")
	require.ErrorIs(t, err, ErrCircularDependency)

	// Break the cycle; the next call starts from a fresh stack
	registerChain(t, c, "b")

	v, err := c.Resolve("a")
	assert.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestResolve_DeepChain(t *testing.T) {
	c := New()

	registerChain(t, c, "d")
	registerChain(t, c, "c", Ref("d"))
	registerChain(t, c, "b", Ref("c"))
	registerChain(t, c, "a", Ref("b"))

	v, err := c.Resolve("a")
	assert.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestResolve_NestedBuildErrorNamesTheFailingService(t *testing.T) {
	c := New()
	cause := errors.New("db unreachable")

	err := c.Register("db", func(d ...any) (any, error) {
		return nil, cause
	})
	require.NoError(t, err)

	registerChain(t, c, "repo", Ref("db"))
	registerChain(t, c, "service", Ref("repo"))

	_, err = c.Resolve("service")
	assert.ErrorIs(t, err, cause)

	var buildErr *BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "db", buildErr.Name)
}

func TestResolve_MissingDependencyNamesTheMissingService(t *testing.T) {
	c := New()

	registerChain(t, c, "service", Ref("repo"))

	_, err := c.Resolve("service")
	assert.ErrorIs(t, err, ErrNotRegistered)

	var notFound *NotRegisteredError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "repo", notFound.Name)
}
