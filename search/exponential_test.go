package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExponentialSearch(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6}

	tests := []struct {
		name     string
		target   int
		expected int
	}{
		{"find first", 1, 0},
		{"find last", 6, 5},
		{"find middle", 4, 3},
		{"not find 7", 7, NotFound},
		{"not find 0", 0, NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ExponentialSearch(a, tt.target))
		})
	}
}

func TestExponentialSearchEdgeCases(t *testing.T) {
	require.Equal(t, NotFound, ExponentialSearch([]int{}, 1))
	require.Equal(t, 0, ExponentialSearch([]int{1}, 1))
	require.Equal(t, NotFound, ExponentialSearch([]int{1}, 2))
}

func TestExponentialSearchDuplicates(t *testing.T) {
	a := []int{1, 2, 2, 2, 3, 4, 5}
	i := ExponentialSearch(a, 2)
	require.NotEqual(t, NotFound, i)
	require.Equal(t, 2, a[i])
}

// The doubling loop must hand a range to the bounded search that covers every
// position, including targets sitting exactly on a power-of-two index.
func TestExponentialSearchEveryPosition(t *testing.T) {
	a := make([]int, 100)
	for i := range a {
		a[i] = i * 2
	}

	for i, v := range a {
		require.Equal(t, i, ExponentialSearch(a, v))
		require.Equal(t, NotFound, ExponentialSearch(a, v+1))
	}
}

func TestExponentialSearchStrings(t *testing.T) {
	a := []string{"apple", "banana", "cherry", "date"}
	require.Equal(t, 1, ExponentialSearch(a, "banana"))
	require.Equal(t, NotFound, ExponentialSearch(a, "fig"))
}
