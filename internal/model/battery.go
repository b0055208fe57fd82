package model

import "errors"

// BatteryParams defines the physical parameters of a residential battery.
// Units:
// - CapacityKWh: kWh (nameplate)
// - PowerKW: kW (max charge/discharge power)
// - RoundTripEfficiency: 0..1
// - SOC bounds: fraction 0..1
// - DischargeHours: hours per day the battery is allowed to discharge
type BatteryParams struct {
	CapacityKWh         float64
	PowerKW             float64
	RoundTripEfficiency float64
	MinSOC              float64
	MaxSOC              float64
	DischargeHours      int
}

func (p BatteryParams) Validate() error {
	if p.CapacityKWh < 0 {
		return errors.New("CapacityKWh must be >= 0")
	}
	if p.PowerKW < 0 {
		return errors.New("PowerKW must be >= 0")
	}
	if p.RoundTripEfficiency <= 0 || p.RoundTripEfficiency > 1 {
		return errors.New("RoundTripEfficiency must be in (0, 1]")
	}
	if p.MinSOC < 0 || p.MinSOC > 1 || p.MaxSOC < 0 || p.MaxSOC > 1 || p.MinSOC > p.MaxSOC {
		return errors.New("MinSOC/MaxSOC must satisfy 0<=MinSOC<=MaxSOC<=1")
	}
	if p.DischargeHours < 0 || p.DischargeHours > HoursPerDay {
		return errors.New("DischargeHours must be in [0, 24]")
	}
	return nil
}

// UsableCapacityKWh is the energy available between the SOC bounds.
func (p BatteryParams) UsableCapacityKWh() float64 {
	return p.CapacityKWh * (p.MaxSOC - p.MinSOC)
}
