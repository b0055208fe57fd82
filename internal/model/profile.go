package model

import (
	"errors"
	"math"
)

const HoursPerDay = 24

// HVACProfileParams shape a 24-hour HVAC load curve.
// Units:
// - ConsumptionKW: kW at the peak of the curve
// - PeakHour: hour of day (0-23) where the peak lands
// - LoadShape: 1..10, higher = more peaky (narrower curve)
type HVACProfileParams struct {
	ConsumptionKW float64
	PeakHour      int
	LoadShape     int
}

func (p HVACProfileParams) Validate() error {
	if p.ConsumptionKW < 0 {
		return errors.New("ConsumptionKW must be >= 0")
	}
	if p.PeakHour < 0 || p.PeakHour > 23 {
		return errors.New("PeakHour must be in [0, 23]")
	}
	if p.LoadShape < 1 || p.LoadShape > 10 {
		return errors.New("LoadShape must be in [1, 10]")
	}
	return nil
}

// HVACProfile generates the hourly usage curve as a Gaussian centered on
// PeakHour. The spread is (11 - LoadShape), so shape 10 is the narrowest.
func HVACProfile(p HVACProfileParams) ([HoursPerDay]float64, error) {
	var usage [HoursPerDay]float64
	if err := p.Validate(); err != nil {
		return usage, err
	}
	spread := float64(11 - p.LoadShape)
	for hour := 0; hour < HoursPerDay; hour++ {
		d := float64(hour - p.PeakHour)
		usage[hour] = math.Exp(-(d*d)/(2*spread*spread)) * p.ConsumptionKW
	}
	return usage, nil
}
