package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHVACProfileShape(t *testing.T) {
	usage, err := HVACProfile(HVACProfileParams{ConsumptionKW: 3.5, PeakHour: 16, LoadShape: 5})
	require.NoError(t, err)

	// Peak of the curve is the consumption at the peak hour.
	assert.Equal(t, 3.5, usage[16])

	// Symmetric around the peak.
	assert.InDelta(t, usage[15], usage[17], 1e-12)
	assert.InDelta(t, usage[14], usage[18], 1e-12)

	// Monotone decay away from the peak.
	for h := 16; h < 23; h++ {
		assert.Greater(t, usage[h], usage[h+1], "hour %d should exceed hour %d", h, h+1)
	}
	for h := 1; h <= 16; h++ {
		assert.GreaterOrEqual(t, usage[h], usage[h-1], "hour %d should be at least hour %d", h, h-1)
	}
}

func TestHVACProfilePeakier(t *testing.T) {
	wide, err := HVACProfile(HVACProfileParams{ConsumptionKW: 2, PeakHour: 12, LoadShape: 1})
	require.NoError(t, err)
	narrow, err := HVACProfile(HVACProfileParams{ConsumptionKW: 2, PeakHour: 12, LoadShape: 10})
	require.NoError(t, err)

	// Same peak, but a higher shape parameter drops off much faster.
	assert.Equal(t, wide[12], narrow[12])
	assert.Greater(t, wide[6], narrow[6])
}

func TestHVACProfileValidation(t *testing.T) {
	cases := []HVACProfileParams{
		{ConsumptionKW: -1, PeakHour: 12, LoadShape: 5},
		{ConsumptionKW: 1, PeakHour: 24, LoadShape: 5},
		{ConsumptionKW: 1, PeakHour: -1, LoadShape: 5},
		{ConsumptionKW: 1, PeakHour: 12, LoadShape: 0},
		{ConsumptionKW: 1, PeakHour: 12, LoadShape: 11},
	}
	for _, p := range cases {
		_, err := HVACProfile(p)
		assert.Error(t, err, "params %+v should be rejected", p)
	}
}
