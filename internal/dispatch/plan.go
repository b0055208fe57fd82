package dispatch

import (
	"fmt"
	"sort"

	"battery-value/internal/model"
)

// HourRow is one hour of the dispatch plan.
// This is the primary artifact for "what happened" in a scenario day.
type HourRow struct {
	Hour int

	Rate     float64 // $/kWh
	UsageKWh float64 // HVAC load this hour

	Action model.Action

	ChargeKWh    float64 // energy pulled from grid into the battery
	DischargeKWh float64 // battery energy serving the load
	GridKWh      float64 // load served by the grid (usage - discharge)

	SOCStart float64
	SOCEnd   float64
}

// Plan is the battery schedule for one representative day.
type Plan struct {
	Rows [model.HoursPerDay]HourRow

	ChargeKWh    [model.HoursPerDay]float64
	DischargeKWh [model.HoursPerDay]float64

	// EnergyStoredKWh is the energy cycled through the battery (the amount
	// shifted off peak hours), bounded by usable capacity.
	EnergyStoredKWh float64
}

type pricedHour struct {
	rate float64
	hour int
}

// Optimize builds a greedy charge/discharge schedule against the hourly rate
// curve: discharge the highest-priced hours (up to DischargeHours of them),
// charge the amount needed (grossed up for round-trip losses) in the
// cheapest hours, capped at PowerKW per hour.
//
// Ties on rate break toward later hours for discharge and earlier hours for
// charge, so a flat TOU peak discharges its tail end first.
func Optimize(usage, rates [model.HoursPerDay]float64, batt model.BatteryParams) (*Plan, error) {
	if err := batt.Validate(); err != nil {
		return nil, fmt.Errorf("battery params invalid: %w", err)
	}

	priced := make([]pricedHour, model.HoursPerDay)
	for hour, rate := range rates {
		priced[hour] = pricedHour{rate: rate, hour: hour}
	}

	// Highest-priced hours take discharge.
	sort.Slice(priced, func(i, j int) bool {
		if priced[i].rate != priced[j].rate {
			return priced[i].rate > priced[j].rate
		}
		return priced[i].hour > priced[j].hour
	})
	dischargeHours := make([]int, 0, batt.DischargeHours)
	for _, ph := range priced[:batt.DischargeHours] {
		dischargeHours = append(dischargeHours, ph.hour)
	}

	energyNeeded := 0.0
	for _, hour := range dischargeHours {
		energyNeeded += usage[hour]
	}

	energyToStore := energyNeeded
	if usable := batt.UsableCapacityKWh(); energyToStore > usable {
		energyToStore = usable
	}
	energyToCharge := energyToStore / batt.RoundTripEfficiency

	p := &Plan{EnergyStoredKWh: energyToStore}

	// Cheapest hours take charge, up to PowerKW each.
	sort.Slice(priced, func(i, j int) bool {
		if priced[i].rate != priced[j].rate {
			return priced[i].rate < priced[j].rate
		}
		return priced[i].hour < priced[j].hour
	})
	remaining := energyToCharge
	for _, ph := range priced {
		if remaining <= 0 {
			break
		}
		can := remaining
		if can > batt.PowerKW {
			can = batt.PowerKW
		}
		p.ChargeKWh[ph.hour] = can
		remaining -= can
	}

	stored := energyToStore
	for _, hour := range dischargeHours {
		if stored <= 0 {
			break
		}
		amount := usage[hour]
		if amount > stored {
			amount = stored
		}
		if amount > batt.PowerKW {
			amount = batt.PowerKW
		}
		p.DischargeKWh[hour] = amount
		stored -= amount
	}

	p.fillRows(usage, rates, batt)
	return p, nil
}

// fillRows builds the hourly ledger, including a SOC trace. SOC starts at
// MinSOC; charging banks ChargeKWh * efficiency, discharging withdraws the
// delivered energy directly (round-trip losses are charged on the way in).
func (p *Plan) fillRows(usage, rates [model.HoursPerDay]float64, batt model.BatteryParams) {
	soc := batt.MinSOC
	for hour := 0; hour < model.HoursPerDay; hour++ {
		row := HourRow{
			Hour:         hour,
			Rate:         rates[hour],
			UsageKWh:     usage[hour],
			ChargeKWh:    p.ChargeKWh[hour],
			DischargeKWh: p.DischargeKWh[hour],
			GridKWh:      usage[hour] - p.DischargeKWh[hour],
			Action:       model.ActionForHour(p.ChargeKWh[hour], p.DischargeKWh[hour]),
			SOCStart:     soc,
		}
		if batt.CapacityKWh > 0 {
			delta := p.ChargeKWh[hour]*batt.RoundTripEfficiency - p.DischargeKWh[hour]
			soc = clamp01(soc + delta/batt.CapacityKWh)
		}
		row.SOCEnd = soc
		p.Rows[hour] = row
	}
}

// GridUsageKWh is the hourly load left for the grid after battery discharge.
func (p *Plan) GridUsageKWh(usage [model.HoursPerDay]float64) [model.HoursPerDay]float64 {
	var grid [model.HoursPerDay]float64
	for hour := 0; hour < model.HoursPerDay; hour++ {
		grid[hour] = usage[hour] - p.DischargeKWh[hour]
	}
	return grid
}

// ChargeCost is the retail cost of the grid energy used to charge.
func (p *Plan) ChargeCost(rates [model.HoursPerDay]float64) float64 {
	cost := 0.0
	for hour := 0; hour < model.HoursPerDay; hour++ {
		cost += p.ChargeKWh[hour] * rates[hour]
	}
	return cost
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
