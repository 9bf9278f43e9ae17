package x_decode

import (
	"strings"
	"testing"

	"github.com/rskv-p/kata/pkg/x_err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumDecodings(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"0", 0},
		{"06", 0},
		{"1", 1},
		{"9", 1},
		{"10", 1},
		{"12", 2},
		{"27", 1},
		{"100", 0},
		{"101", 1},
		{"226", 3},
		{"11106", 2},
		{"1111", 5},
		{"2101", 1},
		{"230", 0},
	}

	for _, tt := range tests {
		t.Run("in="+tt.in, func(t *testing.T) {
			got, err := NumDecodings(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumDecodings_NonDigit(t *testing.T) {
	for _, in := range []string{"1a", "a1", "12 3", "-1", "٣"} {
		t.Run(in, func(t *testing.T) {
			n, err := NumDecodings(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, x_err.ErrInvalidArgument)
			assert.Zero(t, n)
		})
	}
}

func TestNumDecodings_Fibonacci(t *testing.T) {
	// a run of n ones decodes in Fib(n+1) ways
	fib := []int{1, 1}
	for i := 2; i <= 41; i++ {
		fib = append(fib, fib[i-1]+fib[i-2])
	}

	n, err := NumDecodings(strings.Repeat("1", 40))
	require.NoError(t, err)
	assert.Equal(t, fib[40], n)
}

func TestNumDecodings_Pure(t *testing.T) {
	a, _ := NumDecodings("226")
	b, _ := NumDecodings("226")
	assert.Equal(t, a, b)
}

func TestLetter(t *testing.T) {
	tests := []struct {
		in   string
		want byte
		ok   bool
	}{
		{"1", 'A', true},
		{"9", 'I', true},
		{"10", 'J', true},
		{"26", 'Z', true},
		{"0", 0, false},
		{"06", 0, false},
		{"27", 0, false},
		{"", 0, false},
		{"123", 0, false},
		{"x", 0, false},
	}

	for _, tt := range tests {
		got, ok := Letter(tt.in)
		assert.Equal(t, tt.ok, ok, "group %q", tt.in)
		assert.Equal(t, tt.want, got, "group %q", tt.in)
	}
}
