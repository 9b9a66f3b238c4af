package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChiSquareExactMatch(t *testing.T) {
	res, err := ChiSquare([]int{50, 50}, []float64{50, 50})
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Stat)
	require.Equal(t, 1, res.DF)
	require.InDelta(t, 1.0, res.P, 1e-12)
}

func TestChiSquareKnownValue(t *testing.T) {
	// (60-50)^2/50 + (40-50)^2/50 = 4, p = P(chi2_1 > 4) ~ 0.0455.
	res, err := ChiSquare([]int{60, 40}, []float64{50, 50})
	require.NoError(t, err)
	require.InDelta(t, 4.0, res.Stat, 1e-12)
	require.Equal(t, 1, res.DF)
	require.InDelta(t, 0.0455, res.P, 1e-3)
}

func TestChiSquareRejectsBadInput(t *testing.T) {
	_, err := ChiSquare([]int{1, 2}, []float64{1})
	require.Error(t, err)

	_, err = ChiSquare([]int{5}, []float64{5})
	require.Error(t, err)

	_, err = ChiSquare([]int{1, 2}, []float64{1, 0})
	require.Error(t, err)
}

func TestChiSquareUniform(t *testing.T) {
	res, err := ChiSquareUniform([]int{25, 25, 25, 25})
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Stat)
	require.Equal(t, 3, res.DF)

	_, err = ChiSquareUniform([]int{0, 0})
	require.Error(t, err)
}
