package scenario

import "math"

// ciProjectLoadsMW are the reference interconnection sizes shown on the
// dashboard.
var ciProjectLoadsMW = []float64{10, 20, 30}

// CIInput values the interconnection speedup a VPP gives a commercial &
// industrial customer: the same EBITDA stream starting TimeSavingsYears
// earlier.
type CIInput struct {
	EBITDAPerMWMillions float64 // $M per MW per year
	TimeSavingsYears    int     // years of interconnection delay avoided
	DiscountRatePct     float64 // percent, e.g. 10 for 10%
	OpHorizonYears      int     // operating horizon
}

func DefaultCIInput() CIInput {
	return CIInput{
		EBITDAPerMWMillions: 1.0,
		TimeSavingsYears:    2,
		DiscountRatePct:     10,
		OpHorizonYears:      10,
	}
}

// CICase is the annualized NPV advantage for one project size.
type CICase struct {
	LoadMW                float64
	AnnualizedNPVMillions float64
}

type CIResult struct {
	Cases []CICase
}

// CI discounts the EBITDA stream with and without the VPP head start and
// annualizes the NPV advantage over the operating horizon.
func CI(in CIInput) (*CIResult, error) {
	if in.EBITDAPerMWMillions < 0 {
		return nil, invalidInput("ebitdaPerMW must be >= 0")
	}
	if in.TimeSavingsYears < 0 {
		return nil, invalidInput("timeSavings must be >= 0")
	}
	if in.DiscountRatePct < 0 {
		return nil, invalidInput("discountRate must be >= 0")
	}
	if in.OpHorizonYears <= 0 {
		return nil, invalidInput("opHorizon must be > 0")
	}

	rate := in.DiscountRatePct / 100
	res := &CIResult{Cases: make([]CICase, 0, len(ciProjectLoadsMW))}

	for _, loadMW := range ciProjectLoadsMW {
		totalEBITDA := loadMW * in.EBITDAPerMWMillions * 1e6

		var withVPP, withoutVPP float64
		for year := 1; year <= in.OpHorizonYears; year++ {
			withVPP += totalEBITDA / math.Pow(1+rate, float64(year))
			withoutVPP += totalEBITDA / math.Pow(1+rate, float64(year+in.TimeSavingsYears))
		}

		annualized := (withVPP - withoutVPP) / float64(in.OpHorizonYears)
		res.Cases = append(res.Cases, CICase{
			LoadMW:                loadMW,
			AnnualizedNPVMillions: annualized / 1e6,
		})
	}
	return res, nil
}
