package csp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func trivialSAT(t *testing.T) *CSP {
	t.Helper()
	c, err := New([]string{"A", "B"}, [][]int{{1, 2}, {1, 2}}, []Constraint{NotEqual{X: 0, Y: 1}})
	require.NoError(t, err)
	return c
}

func TestNewRejectsEmptyDomain(t *testing.T) {
	_, err := New([]string{"A"}, [][]int{{}}, nil)
	require.Error(t, err)
	var mc *MalformedCSPError
	require.ErrorAs(t, err, &mc)
	require.True(t, errors.Is(err, ErrEmptyDomain))
}

func TestNewRejectsConstraintOutOfRange(t *testing.T) {
	_, err := New([]string{"A"}, [][]int{{1}}, []Constraint{NotEqual{X: 0, Y: 5}})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownVariable))
}

func TestNewRejectsEmptyScope(t *testing.T) {
	_, err := New([]string{"A"}, [][]int{{1}}, []Constraint{NewPredicateConstraint(nil, func(Assignment) bool { return true })})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoScope))
}

func TestNeighborsAreSymmetricAndDeduplicated(t *testing.T) {
	c := trivialSAT(t)
	require.Equal(t, []VarID{1}, c.Neighbors(0))
	require.Equal(t, []VarID{0}, c.Neighbors(1))
}

func TestIsConsistent(t *testing.T) {
	c := trivialSAT(t)
	require.True(t, c.IsConsistent(Assignment{0: 1, 1: 2}))
	require.False(t, c.IsConsistent(Assignment{0: 1, 1: 1}))
	require.True(t, c.IsConsistent(Assignment{0: 1}))
}

func TestInitialWeightsAreAllOnes(t *testing.T) {
	c := trivialSAT(t)
	for _, w := range c.InitialWeights() {
		require.Equal(t, int64(1), w)
	}
}

func TestCloneDomainsAreIndependentFromOriginal(t *testing.T) {
	c := trivialSAT(t)
	domains := c.CloneDomains()
	domains[0].Remove(1)
	require.True(t, c.OriginalDomain(0).Contains(1))
}
