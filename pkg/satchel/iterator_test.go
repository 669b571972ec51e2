package satchel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/satchel/internal/counter"
)

func TestIteratorTraversesInOrder(t *testing.T) {
	s := New([]int{1, 2, 3})
	it := s.Iterator()

	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.False(t, it.Next(), "an exhausted traversal must stay exhausted")
}

func TestIteratorRemoveFailsAndPreservesContent(t *testing.T) {
	s := New([]int{1, 2, 3})

	it := s.Iterator()
	require.True(t, it.Next())
	assert.Equal(t, 1, it.Value())

	assert.ErrorIs(t, it.Remove(), ErrUnsupported)
	assert.Equal(t, []int{1, 2, 3}, s.Values(), "failed removal must leave the satchel untouched")

	// The traversal itself keeps working after the failed removal.
	require.True(t, it.Next())
	assert.Equal(t, 2, it.Value())
}

func TestIteratorFreshPerCall(t *testing.T) {
	s := New([]int{1, 2})

	first := s.Iterator()
	require.True(t, first.Next())
	require.True(t, first.Next())
	require.False(t, first.Next())

	// A new call yields a new traversal from the start.
	second := s.Iterator()
	require.True(t, second.Next())
	assert.Equal(t, 1, second.Value())
}

func TestIteratorSharesElementHandles(t *testing.T) {
	c1, c2 := counter.New(1), counter.New(2)
	s := New([]*counter.Counter{c1, c2})

	for it := s.Iterator(); it.Next(); {
		it.Value().Add(10)
	}

	assert.Equal(t, 11, c1.Value())
	assert.Equal(t, 12, c2.Value())
}
