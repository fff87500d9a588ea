package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {

	type test struct {
		input  float64
		output string
	}

	tests := map[string]test{
		"0": {
			input:  0,
			output: "0.00",
		},
		"-1": {
			input:  -1,
			output: "-1.00",
		},
		"+1": {
			input:  1,
			output: "1.00",
		},
		"5": {
			input:  1.5555,
			output: "1.56",
		},
		"4": {
			input:  1.4444,
			output: "1.44",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Format(tt.input)
			assert.Equal(t, tt.output, s)
		})
	}

}

func TestFormatP(t *testing.T) {
	assert.Equal(t, "1.2346", FormatP(1.23456, 4))
	assert.Equal(t, "-", FormatP(math.NaN(), 4))
	assert.Equal(t, "-", FormatP(math.Inf(-1), 2))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite())
	assert.True(t, Finite(0, -1, 1e300))
	assert.False(t, Finite(1, math.NaN()))
	assert.False(t, Finite(math.Inf(1)))
}

func TestReverse(t *testing.T) {
	ff := []float64{1, 2, 3}
	assert.Equal(t, []float64{3, 2, 1}, Reverse(ff))
	// original stays untouched
	assert.Equal(t, []float64{1, 2, 3}, ff)
	assert.Equal(t, []float64{}, Reverse([]float64{}))
}

func TestLine(t *testing.T) {
	assert.Equal(t, []float64{1, 3, 5}, Line(1, 2, []float64{0, 1, 2}))
}
