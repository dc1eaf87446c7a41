package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitsetBasics(t *testing.T) {
	b := fullBitset(70)
	require.Equal(t, 70, b.count())

	b.clear(5)
	require.False(t, b.has(5))
	require.Equal(t, 69, b.count())

	b.set(5)
	require.True(t, b.has(5))
	require.Equal(t, 70, b.count())
}

func TestBitsetSingleton(t *testing.T) {
	b := newBitset(10)
	require.Equal(t, -1, b.singleton())

	b.set(3)
	require.Equal(t, 3, b.singleton())

	b.set(7)
	require.Equal(t, -1, b.singleton())
}

func TestBitsetMaxAndUnion(t *testing.T) {
	a := newBitset(100)
	a.set(2)
	a.set(90)

	b := newBitset(100)
	b.set(50)

	a.union(b)
	require.True(t, a.has(2))
	require.True(t, a.has(50))
	require.True(t, a.has(90))
	require.Equal(t, 90, a.max())
}

func TestBitsetCloneIsIndependent(t *testing.T) {
	a := fullBitset(8)
	b := a.clone()
	b.clear(0)
	require.True(t, a.has(0))
	require.False(t, b.has(0))
}
