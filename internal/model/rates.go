package model

import "errors"

// PricingModel selects how the hourly rate curve is built.
type PricingModel string

const (
	PricingTOU PricingModel = "tou" // two-tier time-of-use schedule
	PricingRTP PricingModel = "rtp" // caller-supplied real-time prices
)

// RateSchedule describes retail electricity pricing for one day.
// Units: $/kWh. The peak window is [PeakStart, PeakEnd) in local hours.
type RateSchedule struct {
	Model        PricingModel
	PeakRate     float64
	OffPeakRate  float64
	PeakStart    int
	PeakEnd      int
	HourlyPrices []float64 // RTP only
}

func (r RateSchedule) Validate() error {
	switch r.Model {
	case PricingTOU:
		if r.PeakRate < 0 || r.OffPeakRate < 0 {
			return errors.New("rates must be >= 0")
		}
		if r.PeakStart < 0 || r.PeakStart > HoursPerDay || r.PeakEnd < 0 || r.PeakEnd > HoursPerDay {
			return errors.New("peak window hours must be in [0, 24]")
		}
		if r.PeakStart > r.PeakEnd {
			return errors.New("PeakStart must be <= PeakEnd")
		}
	case PricingRTP:
		if len(r.HourlyPrices) == 0 {
			return errors.New("rtp pricing requires hourlyPrices")
		}
		for _, p := range r.HourlyPrices {
			if p < 0 {
				return errors.New("hourlyPrices must be >= 0")
			}
		}
	default:
		return errors.New("pricing model must be \"tou\" or \"rtp\"")
	}
	return nil
}

// InPeak reports whether the hour falls inside the TOU peak window.
func (r RateSchedule) InPeak(hour int) bool {
	return hour >= r.PeakStart && hour < r.PeakEnd
}

// HourlyRates expands the schedule into 24 hourly prices.
// RTP series shorter than 24 hours are padded with the last price; longer
// series are truncated.
func (r RateSchedule) HourlyRates() ([HoursPerDay]float64, error) {
	var rates [HoursPerDay]float64
	if err := r.Validate(); err != nil {
		return rates, err
	}
	if r.Model == PricingRTP {
		last := r.HourlyPrices[len(r.HourlyPrices)-1]
		for hour := 0; hour < HoursPerDay; hour++ {
			if hour < len(r.HourlyPrices) {
				rates[hour] = r.HourlyPrices[hour]
			} else {
				rates[hour] = last
			}
		}
		return rates, nil
	}
	for hour := 0; hour < HoursPerDay; hour++ {
		if r.InPeak(hour) {
			rates[hour] = r.PeakRate
		} else {
			rates[hour] = r.OffPeakRate
		}
	}
	return rates, nil
}
