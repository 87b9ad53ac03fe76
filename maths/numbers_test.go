package maths

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMax(t *testing.T) {
	type testCase struct {
		name     string
		a        int
		b        int
		expected int
	}

	cases := []testCase{
		{
			name:     "normal",
			a:        550,
			b:        8e6,
			expected: 8e6,
		},
		{
			name:     "zero-value",
			a:        20,
			b:        0,
			expected: 20,
		},
		{
			name:     "negative",
			a:        -5,
			b:        1,
			expected: 1,
		},
		{
			name:     "same",
			a:        9e15,
			b:        9e15,
			expected: 9e15,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Max(tc.a, tc.b))
		})
	}
}

func TestMin(t *testing.T) {
	type testCase struct {
		name     string
		a        float64
		b        float64
		expected float64
	}

	cases := []testCase{
		{
			name:     "normal",
			a:        550,
			b:        8e6,
			expected: 550,
		},
		{
			name:     "zero-value",
			a:        20,
			b:        0,
			expected: 0,
		},
		{
			name:     "same",
			a:        0.5,
			b:        0.5,
			expected: 0.5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Min(tc.a, tc.b))
		})
	}
}

func TestMinMaxStrings(t *testing.T) {
	require.Equal(t, "apple", Min("banana", "apple"))
	require.Equal(t, "banana", Max("banana", "apple"))
}
