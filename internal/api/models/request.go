package models

import (
	"battery-value/internal/model"
	"battery-value/internal/scenario"
)

// Request fields are pointers so an omitted field falls back to the
// dashboard default while an explicit zero (e.g. batteryCapacity: 0) is
// honored. Field names match the dashboard's fetch payloads.

// PricingParams selects the rate schedule for a scenario.
type PricingParams struct {
	PricingModel *string   `json:"pricingModel,omitempty"` // "tou" or "rtp"
	PeakRate     *float64  `json:"peakRate,omitempty"`
	OffPeakRate  *float64  `json:"offPeakRate,omitempty"`
	PeakStart    *int      `json:"peakStart,omitempty"`
	PeakEnd      *int      `json:"peakEnd,omitempty"`
	HourlyPrices []float64 `json:"hourlyPrices,omitempty"` // rtp only
}

func (p PricingParams) apply(r *model.RateSchedule) {
	if p.PricingModel != nil {
		r.Model = model.PricingModel(*p.PricingModel)
	}
	if p.PeakRate != nil {
		r.PeakRate = *p.PeakRate
	}
	if p.OffPeakRate != nil {
		r.OffPeakRate = *p.OffPeakRate
	}
	if p.PeakStart != nil {
		r.PeakStart = *p.PeakStart
	}
	if p.PeakEnd != nil {
		r.PeakEnd = *p.PeakEnd
	}
	if len(p.HourlyPrices) > 0 {
		r.HourlyPrices = p.HourlyPrices
	}
}

// HomeownerRequest is the POST body for /api/v1/calculate/homeowner.
type HomeownerRequest struct {
	PricingParams

	HVACConsumption *float64 `json:"hvacConsumption,omitempty"` // kW
	HVACPeakTime    *int     `json:"hvacPeakTime,omitempty"`    // hour 0-23
	HVACLoadShape   *int     `json:"hvacLoadShape,omitempty"`   // 1-10

	BatteryCapacity   *float64 `json:"batteryCapacity,omitempty"` // kWh
	MinSOC            *float64 `json:"minSoC,omitempty"`
	MaxSOC            *float64 `json:"maxSoC,omitempty"`
	DischargeDuration *int     `json:"dischargeDuration,omitempty"` // hours
	BatteryPower      *float64 `json:"batteryPower,omitempty"`      // kW
	BatteryEfficiency *float64 `json:"batteryEfficiency,omitempty"` // round-trip, 0-1
}

// ToInput resolves the request onto the default scenario.
func (r HomeownerRequest) ToInput() scenario.HomeownerInput {
	in := scenario.DefaultHomeownerInput()
	r.PricingParams.apply(&in.Pricing)

	if r.HVACConsumption != nil {
		in.HVAC.ConsumptionKW = *r.HVACConsumption
	}
	if r.HVACPeakTime != nil {
		in.HVAC.PeakHour = *r.HVACPeakTime
	}
	if r.HVACLoadShape != nil {
		in.HVAC.LoadShape = *r.HVACLoadShape
	}

	if r.BatteryCapacity != nil {
		in.Battery.CapacityKWh = *r.BatteryCapacity
	}
	if r.MinSOC != nil {
		in.Battery.MinSOC = *r.MinSOC
	}
	if r.MaxSOC != nil {
		in.Battery.MaxSOC = *r.MaxSOC
	}
	if r.DischargeDuration != nil {
		in.Battery.DischargeHours = *r.DischargeDuration
	}
	if r.BatteryPower != nil {
		in.Battery.PowerKW = *r.BatteryPower
	}
	if r.BatteryEfficiency != nil {
		in.Battery.RoundTripEfficiency = *r.BatteryEfficiency
	}
	return in
}

// YearlyRequest is the POST body for /api/v1/calculate/yearly.
type YearlyRequest struct {
	HomeownerRequest

	HotDays  *int `json:"hotDays,omitempty"`
	MildDays *int `json:"mildDays,omitempty"`
}

func (r YearlyRequest) ToInput() scenario.YearlyInput {
	in := scenario.DefaultYearlyInput()
	in.Base = r.HomeownerRequest.ToInput()
	if r.HotDays != nil {
		in.HotDays = *r.HotDays
	}
	if r.MildDays != nil {
		in.MildDays = *r.MildDays
	}
	return in
}

// REPRequest is the POST body for /api/v1/calculate/rep. The homeowner
// aggregates normally come straight out of a yearly response.
type REPRequest struct {
	RepHomes             *int     `json:"repHomes,omitempty"`
	WholesalePeak        *float64 `json:"wholesalePeak,omitempty"`        // $/MWh
	WholesaleOffPeak     *float64 `json:"wholesaleOffPeak,omitempty"`     // $/MWh
	AncillaryValue       *float64 `json:"ancillaryValue,omitempty"`       // $/kW-month
	CapacityContribution *float64 `json:"capacityContribution,omitempty"` // kW per home

	BlendedAnnualSavings *float64 `json:"blendedAnnualSavings,omitempty"` // $ per home per year
	TotalEnergyShifted   *float64 `json:"totalEnergyShifted,omitempty"`   // kWh per home per year
}

func (r REPRequest) ToInput() scenario.REPInput {
	in := scenario.DefaultREPInput()
	if r.RepHomes != nil {
		in.Homes = *r.RepHomes
	}
	if r.WholesalePeak != nil {
		in.WholesalePeakPerMWh = *r.WholesalePeak
	}
	if r.WholesaleOffPeak != nil {
		in.WholesaleOffPeakPerMWh = *r.WholesaleOffPeak
	}
	if r.AncillaryValue != nil {
		in.AncillaryValuePerKWMo = *r.AncillaryValue
	}
	if r.CapacityContribution != nil {
		in.CapacityContributionKW = *r.CapacityContribution
	}
	if r.BlendedAnnualSavings != nil {
		in.BlendedAnnualSavings = *r.BlendedAnnualSavings
	}
	if r.TotalEnergyShifted != nil {
		in.TotalEnergyShiftedKWh = *r.TotalEnergyShifted
	}
	return in
}

// CIRequest is the POST body for /api/v1/calculate/ci.
type CIRequest struct {
	EBITDAPerMW  *float64 `json:"ebitdaPerMW,omitempty"`  // $M per MW per year
	TimeSavings  *int     `json:"timeSavings,omitempty"`  // years
	DiscountRate *float64 `json:"discountRate,omitempty"` // percent
	OpHorizon    *int     `json:"opHorizon,omitempty"`    // years
}

func (r CIRequest) ToInput() scenario.CIInput {
	in := scenario.DefaultCIInput()
	if r.EBITDAPerMW != nil {
		in.EBITDAPerMWMillions = *r.EBITDAPerMW
	}
	if r.TimeSavings != nil {
		in.TimeSavingsYears = *r.TimeSavings
	}
	if r.DiscountRate != nil {
		in.DiscountRatePct = *r.DiscountRate
	}
	if r.OpHorizon != nil {
		in.OpHorizonYears = *r.OpHorizon
	}
	return in
}

// PaybackRequest is the POST body for /api/v1/calculate/payback.
type PaybackRequest struct {
	TotalCost     *float64 `json:"totalCost,omitempty"`
	FederalITC    *float64 `json:"federalITC,omitempty"` // percent
	StateRebates  *float64 `json:"stateRebates,omitempty"`
	UtilityRebate *float64 `json:"utilityRebate,omitempty"`
	AnnualSavings *float64 `json:"annualSavings,omitempty"`
}

func (r PaybackRequest) ToInput() scenario.PaybackInput {
	in := scenario.DefaultPaybackInput()
	if r.TotalCost != nil {
		in.TotalCost = *r.TotalCost
	}
	if r.FederalITC != nil {
		in.FederalITCPct = *r.FederalITC
	}
	if r.StateRebates != nil {
		in.StateRebates = *r.StateRebates
	}
	if r.UtilityRebate != nil {
		in.UtilityRebate = *r.UtilityRebate
	}
	if r.AnnualSavings != nil {
		in.AnnualSavings = *r.AnnualSavings
	}
	return in
}

// RatesAnalyzeRequest is the POST body for /api/v1/rates/analyze.
type RatesAnalyzeRequest struct {
	PricingParams
}

func (r RatesAnalyzeRequest) ToSchedule() model.RateSchedule {
	sched := scenario.DefaultHomeownerInput().Pricing
	r.PricingParams.apply(&sched)
	return sched
}
