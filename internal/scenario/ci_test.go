package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCIBaseline(t *testing.T) {
	res, err := CI(DefaultCIInput())
	require.NoError(t, err)

	require.Len(t, res.Cases, 3)
	assert.Equal(t, 10.0, res.Cases[0].LoadMW)
	assert.Equal(t, 20.0, res.Cases[1].LoadMW)
	assert.Equal(t, 30.0, res.Cases[2].LoadMW)

	// $1M/MW EBITDA, 2 years earlier start, 10% discount, 10 year horizon.
	assert.InDelta(t, 1.066412, res.Cases[0].AnnualizedNPVMillions, 1e-5)
	assert.InDelta(t, 2.132825, res.Cases[1].AnnualizedNPVMillions, 1e-5)
	assert.InDelta(t, 3.199237, res.Cases[2].AnnualizedNPVMillions, 1e-5)
}

func TestCINoTimeSavingsNoAdvantage(t *testing.T) {
	in := DefaultCIInput()
	in.TimeSavingsYears = 0

	res, err := CI(in)
	require.NoError(t, err)
	for _, cs := range res.Cases {
		assert.InDelta(t, 0, cs.AnnualizedNPVMillions, 1e-12)
	}
}

func TestCIAdvantageGrowsWithDelay(t *testing.T) {
	short := DefaultCIInput()
	short.TimeSavingsYears = 1
	long := DefaultCIInput()
	long.TimeSavingsYears = 5

	shortRes, err := CI(short)
	require.NoError(t, err)
	longRes, err := CI(long)
	require.NoError(t, err)

	assert.Greater(t, longRes.Cases[0].AnnualizedNPVMillions, shortRes.Cases[0].AnnualizedNPVMillions)
}

func TestCIValidation(t *testing.T) {
	var invErr *InvalidInputError

	in := DefaultCIInput()
	in.OpHorizonYears = 0
	_, err := CI(in)
	assert.ErrorAs(t, err, &invErr)

	in = DefaultCIInput()
	in.EBITDAPerMWMillions = -1
	_, err = CI(in)
	assert.ErrorAs(t, err, &invErr)
}
