package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/source"
	"github.com/shyptr/gqlcore/syntax"
)

// TestParseRecursionLimitZeroTripsImmediately is a regression test for §8's
// boundary case: recursion_limit=0 must be a real limit, not a synonym for
// unbounded — the first nested selection set trips it, leaving an empty
// document with the limit-reached flag set.
func TestParseRecursionLimitZeroTripsImmediately(t *testing.T) {
	tree := syntax.Parse(source.NewMap(), "test.graphql", `{ hero }`, syntax.Config{RecursionLimit: 0})
	assert.True(t, tree.RecursionReached)
	require.NotNil(t, tree.Root)
	assert.Empty(t, tree.Root.Children)
}

func TestParseRecursionLimitNegativeIsUnbounded(t *testing.T) {
	tree := syntax.Parse(source.NewMap(), "test.graphql", `{ hero { name } }`, syntax.Config{RecursionLimit: -1})
	assert.False(t, tree.RecursionReached)
	assert.Empty(t, tree.Errors)
}

func TestParseRecursionLimitPositiveAllowsShallowNesting(t *testing.T) {
	tree := syntax.Parse(source.NewMap(), "test.graphql", `{ hero { name } }`, syntax.Config{RecursionLimit: 2})
	assert.False(t, tree.RecursionReached)
	assert.Empty(t, tree.Errors)
}
