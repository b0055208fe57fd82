package scenario

// PaybackInput nets incentives out of the system cost and divides by annual
// savings (normally a Yearly blended figure).
type PaybackInput struct {
	TotalCost     float64
	FederalITCPct float64 // percent of total cost
	StateRebates  float64
	UtilityRebate float64
	AnnualSavings float64
}

func DefaultPaybackInput() PaybackInput {
	return PaybackInput{
		TotalCost:     3500,
		FederalITCPct: 30,
		UtilityRebate: 500,
	}
}

type PaybackResult struct {
	NetCost       float64
	AnnualSavings float64
	PaybackYears  float64
}

// Payback reports 0 years when annual savings are not positive, rather than
// a division blowup; the dashboard renders that as "never pays back".
func Payback(in PaybackInput) (*PaybackResult, error) {
	if in.TotalCost < 0 {
		return nil, invalidInput("totalCost must be >= 0")
	}
	if in.FederalITCPct < 0 || in.FederalITCPct > 100 {
		return nil, invalidInput("federalITC must be in [0, 100]")
	}
	if in.StateRebates < 0 || in.UtilityRebate < 0 {
		return nil, invalidInput("rebates must be >= 0")
	}

	federalCredit := in.TotalCost * in.FederalITCPct / 100
	netCost := in.TotalCost - federalCredit - in.StateRebates - in.UtilityRebate

	res := &PaybackResult{
		NetCost:       netCost,
		AnnualSavings: in.AnnualSavings,
	}
	if in.AnnualSavings > 0 {
		res.PaybackYears = netCost / in.AnnualSavings
	}
	return res, nil
}
