package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyRatesTOU(t *testing.T) {
	sched := RateSchedule{
		Model:       PricingTOU,
		PeakRate:    0.28,
		OffPeakRate: 0.12,
		PeakStart:   14,
		PeakEnd:     19,
	}
	rates, err := sched.HourlyRates()
	require.NoError(t, err)

	for h := 0; h < HoursPerDay; h++ {
		if h >= 14 && h < 19 {
			assert.Equal(t, 0.28, rates[h], "hour %d", h)
		} else {
			assert.Equal(t, 0.12, rates[h], "hour %d", h)
		}
	}
}

func TestHourlyRatesRTPPadding(t *testing.T) {
	sched := RateSchedule{
		Model:        PricingRTP,
		HourlyPrices: []float64{0.10, 0.20, 0.30},
	}
	rates, err := sched.HourlyRates()
	require.NoError(t, err)

	assert.Equal(t, 0.10, rates[0])
	assert.Equal(t, 0.20, rates[1])
	// Short series pads with the last price.
	for h := 2; h < HoursPerDay; h++ {
		assert.Equal(t, 0.30, rates[h], "hour %d", h)
	}
}

func TestHourlyRatesRTPTruncation(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = float64(i)
	}
	sched := RateSchedule{Model: PricingRTP, HourlyPrices: prices}
	rates, err := sched.HourlyRates()
	require.NoError(t, err)
	assert.Equal(t, 23.0, rates[23])
}

func TestRateScheduleValidation(t *testing.T) {
	cases := []RateSchedule{
		{Model: "flat"},
		{Model: PricingTOU, PeakRate: -0.1},
		{Model: PricingTOU, PeakStart: 19, PeakEnd: 14},
		{Model: PricingTOU, PeakStart: -1, PeakEnd: 5},
		{Model: PricingRTP},
		{Model: PricingRTP, HourlyPrices: []float64{-1}},
	}
	for _, sched := range cases {
		_, err := sched.HourlyRates()
		assert.Error(t, err, "schedule %+v should be rejected", sched)
	}
}
