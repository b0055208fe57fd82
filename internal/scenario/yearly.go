package scenario

import "battery-value/internal/model"

const daysPerYear = 365

// DayType is a representative weather day used to blend annual savings.
type DayType string

const (
	DayTypeHot    DayType = "hot"
	DayTypeMild   DayType = "mild"
	DayTypeWinter DayType = "winter"
)

// DayTypePresets maps each day type to its HVAC load characteristics.
// Hot days run the compressor hard into the evening peak; winter days are
// morning-heavy heating load.
var DayTypePresets = map[DayType]model.HVACProfileParams{
	DayTypeHot:    {ConsumptionKW: 3.5, PeakHour: 16, LoadShape: 5},
	DayTypeMild:   {ConsumptionKW: 1.5, PeakHour: 15, LoadShape: 3},
	DayTypeWinter: {ConsumptionKW: 2.5, PeakHour: 7, LoadShape: 6},
}

// YearlyInput blends the homeowner scenario across a year of day types.
// Winter days are whatever remains of the 365 after hot and mild.
type YearlyInput struct {
	Base     HomeownerInput
	HotDays  int
	MildDays int
}

func DefaultYearlyInput() YearlyInput {
	return YearlyInput{
		Base:     DefaultHomeownerInput(),
		HotDays:  90,
		MildDays: 180,
	}
}

type YearlyResult struct {
	BlendedAnnualSavings  float64
	TotalEnergyShiftedKWh float64
	AvgDailyEnergyShifted float64
	DayTypeResults        map[DayType]*HomeownerResult
	DayCounts             map[DayType]int
}

// Yearly runs the homeowner scenario once per day type and blends the daily
// results by day counts.
func Yearly(in YearlyInput) (*YearlyResult, error) {
	if in.HotDays < 0 || in.MildDays < 0 {
		return nil, invalidInput("day counts must be >= 0")
	}
	winterDays := daysPerYear - in.HotDays - in.MildDays
	if winterDays < 0 {
		return nil, invalidInput("hotDays + mildDays must be <= %d", daysPerYear)
	}

	counts := map[DayType]int{
		DayTypeHot:    in.HotDays,
		DayTypeMild:   in.MildDays,
		DayTypeWinter: winterDays,
	}

	res := &YearlyResult{
		DayTypeResults: make(map[DayType]*HomeownerResult, len(DayTypePresets)),
		DayCounts:      counts,
	}

	for dayType, preset := range DayTypePresets {
		dayInput := in.Base
		dayInput.HVAC = preset
		dayRes, err := Homeowner(dayInput)
		if err != nil {
			return nil, err
		}
		res.DayTypeResults[dayType] = dayRes

		days := float64(counts[dayType])
		res.BlendedAnnualSavings += days * dayRes.DailySavings
		res.TotalEnergyShiftedKWh += days * dayRes.EnergyShiftedKWh
	}

	res.AvgDailyEnergyShifted = res.TotalEnergyShiftedKWh / daysPerYear
	return res, nil
}
