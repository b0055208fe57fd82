package scenario

import (
	"battery-value/internal/dispatch"
	"battery-value/internal/model"
)

// HomeownerInput describes one representative day for a single home.
type HomeownerInput struct {
	Pricing model.RateSchedule
	HVAC    model.HVACProfileParams
	Battery model.BatteryParams
}

// DefaultHomeownerInput returns the dashboard's baseline scenario: a summer
// afternoon TOU schedule and a 10 kWh wall battery.
func DefaultHomeownerInput() HomeownerInput {
	return HomeownerInput{
		Pricing: model.RateSchedule{
			Model:       model.PricingTOU,
			PeakRate:    0.28,
			OffPeakRate: 0.12,
			PeakStart:   14,
			PeakEnd:     19,
		},
		HVAC: model.HVACProfileParams{
			ConsumptionKW: 3.5,
			PeakHour:      16,
			LoadShape:     5,
		},
		Battery: model.BatteryParams{
			CapacityKWh:         10,
			PowerKW:             5,
			RoundTripEfficiency: 0.85,
			MinSOC:              0.1,
			MaxSOC:              0.9,
			DischargeHours:      4,
		},
	}
}

// CostBreakdown splits daily cost into its peak/off-peak/charging parts.
type CostBreakdown struct {
	PeakCostNoBattery      float64
	OffPeakCostNoBattery   float64
	ChargeCostWithBattery  float64
	PeakCostWithBattery    float64
	OffPeakCostWithBattery float64
}

// HourlyData carries the 24-hour curves behind the result, for charting.
type HourlyData struct {
	Rates         [model.HoursPerDay]float64
	HVACUsage     [model.HoursPerDay]float64
	HVACFromGrid  [model.HoursPerDay]float64
	ChargePlan    [model.HoursPerDay]float64
	DischargePlan [model.HoursPerDay]float64
}

type HomeownerResult struct {
	DailySavings       float64
	TotalHVACUsage     float64
	CostWithoutBattery float64
	CostWithBattery    float64
	EnergyShiftedKWh   float64
	Breakdown          CostBreakdown
	Hourly             HourlyData
	Plan               *dispatch.Plan
}

// Homeowner computes daily savings for one home: the cost of serving the
// HVAC load straight from the grid versus serving the priciest hours from a
// battery charged in the cheapest ones.
func Homeowner(in HomeownerInput) (*HomeownerResult, error) {
	usage, err := model.HVACProfile(in.HVAC)
	if err != nil {
		return nil, invalidInput("hvac profile: %v", err)
	}
	rates, err := in.Pricing.HourlyRates()
	if err != nil {
		return nil, invalidInput("rate schedule: %v", err)
	}

	plan, err := dispatch.Optimize(usage, rates, in.Battery)
	if err != nil {
		return nil, invalidInput("battery dispatch: %v", err)
	}

	res := &HomeownerResult{
		EnergyShiftedKWh: plan.EnergyStoredKWh,
		Plan:             plan,
	}

	grid := plan.GridUsageKWh(usage)
	for hour := 0; hour < model.HoursPerDay; hour++ {
		res.TotalHVACUsage += usage[hour]
		cost := usage[hour] * rates[hour]
		res.CostWithoutBattery += cost
		gridCost := grid[hour] * rates[hour]
		if in.Pricing.InPeak(hour) {
			res.Breakdown.PeakCostNoBattery += cost
			res.Breakdown.PeakCostWithBattery += gridCost
		} else {
			res.Breakdown.OffPeakCostNoBattery += cost
			res.Breakdown.OffPeakCostWithBattery += gridCost
		}
	}

	res.Breakdown.ChargeCostWithBattery = plan.ChargeCost(rates)
	res.CostWithBattery = res.Breakdown.ChargeCostWithBattery +
		res.Breakdown.PeakCostWithBattery +
		res.Breakdown.OffPeakCostWithBattery
	res.DailySavings = res.CostWithoutBattery - res.CostWithBattery

	res.Hourly = HourlyData{
		Rates:         rates,
		HVACUsage:     usage,
		HVACFromGrid:  grid,
		ChargePlan:    plan.ChargeKWh,
		DischargePlan: plan.DischargeKWh,
	}
	return res, nil
}
