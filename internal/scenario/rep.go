package scenario

// REPInput sizes the fleet-level value proposition for a retail energy
// provider whose customers install batteries.
//
// BlendedAnnualSavings and TotalEnergyShiftedKWh are per home per year,
// normally taken from a Yearly result.
type REPInput struct {
	Homes int

	WholesalePeakPerMWh    float64 // $/MWh
	WholesaleOffPeakPerMWh float64 // $/MWh
	AncillaryValuePerKWMo  float64 // $/kW-month
	CapacityContributionKW float64 // kW per home bid into ancillary markets

	BlendedAnnualSavings  float64
	TotalEnergyShiftedKWh float64
}

func DefaultREPInput() REPInput {
	return REPInput{
		Homes:                  10000,
		WholesalePeakPerMWh:    250,
		WholesaleOffPeakPerMWh: 30,
		AncillaryValuePerKWMo:  2.5,
		CapacityContributionKW: 4,
	}
}

type REPResult struct {
	AvgDailyEnergyShifted float64 // kWh per home
	AvgDailyFleetShifted  float64 // kWh fleet-wide
	TotalEnergyShiftedMWh float64 // MWh fleet-wide per year

	// The three legs of the margin story. Revenue loss equals the
	// homeowners' savings, so net margin can go negative when the retail
	// spread is wider than the wholesale spread.
	WholesaleCostSavings float64
	RetailRevenueLoss    float64
	NetMarginImprovement float64

	AncillaryRevenue float64
	TotalValue       float64
}

// REP aggregates homeowner results to the fleet and nets wholesale
// procurement savings against lost retail revenue, plus new ancillary
// services revenue. Homeowner savings are used directly as the revenue loss
// so the rate complexity is never double-counted.
func REP(in REPInput) (*REPResult, error) {
	if in.Homes < 0 {
		return nil, invalidInput("homes must be >= 0")
	}
	if in.WholesalePeakPerMWh < 0 || in.WholesaleOffPeakPerMWh < 0 {
		return nil, invalidInput("wholesale prices must be >= 0")
	}
	if in.CapacityContributionKW < 0 || in.AncillaryValuePerKWMo < 0 {
		return nil, invalidInput("ancillary parameters must be >= 0")
	}

	homes := float64(in.Homes)
	res := &REPResult{}

	if in.TotalEnergyShiftedKWh > 0 {
		res.AvgDailyEnergyShifted = in.TotalEnergyShiftedKWh / daysPerYear
	}
	fleetAnnualShiftKWh := in.TotalEnergyShiftedKWh * homes
	res.AvgDailyFleetShifted = res.AvgDailyEnergyShifted * homes
	res.TotalEnergyShiftedMWh = fleetAnnualShiftKWh / 1000

	res.RetailRevenueLoss = in.BlendedAnnualSavings * homes

	// Shifted energy moves from peak to off-peak wholesale procurement.
	wholesalePeakPerKWh := in.WholesalePeakPerMWh / 1000
	wholesaleOffPeakPerKWh := in.WholesaleOffPeakPerMWh / 1000
	res.WholesaleCostSavings = fleetAnnualShiftKWh * (wholesalePeakPerKWh - wholesaleOffPeakPerKWh)

	res.NetMarginImprovement = res.WholesaleCostSavings - res.RetailRevenueLoss
	res.AncillaryRevenue = homes * in.CapacityContributionKW * in.AncillaryValuePerKWMo * 12
	res.TotalValue = res.NetMarginImprovement + res.AncillaryRevenue
	return res, nil
}
