package models

// HomeownerResponse mirrors the original dashboard's homeowner payload.
type HomeownerResponse struct {
	ID                 string        `json:"id,omitempty"`
	DailySavings       float64       `json:"dailySavings"`
	TotalHVACUsage     float64       `json:"totalHVACUsage"`
	CostWithoutBattery float64       `json:"costWithoutBattery"`
	CostWithBattery    float64       `json:"costWithBattery"`
	EnergyShifted      float64       `json:"energyShifted"`
	Breakdown          CostBreakdown `json:"breakdown"`
	HourlyData         HourlyData    `json:"hourlyData"`
}

type CostBreakdown struct {
	PeakCostNoBattery      float64 `json:"peakCostNoBattery"`
	OffPeakCostNoBattery   float64 `json:"offPeakCostNoBattery"`
	ChargeCostWithBattery  float64 `json:"chargeCostWithBattery"`
	PeakCostWithBattery    float64 `json:"peakCostWithBattery"`
	OffPeakCostWithBattery float64 `json:"offPeakCostWithBattery"`
}

type HourlyData struct {
	Rates         []float64 `json:"rates"`
	HVACUsage     []float64 `json:"hvacUsage"`
	HVACFromGrid  []float64 `json:"hvacFromGrid"`
	ChargePlan    []float64 `json:"chargePlan"`
	DischargePlan []float64 `json:"dischargePlan"`
}

type YearlyResponse struct {
	ID                    string                        `json:"id,omitempty"`
	BlendedAnnualSavings  float64                       `json:"blendedAnnualSavings"`
	TotalEnergyShifted    float64                       `json:"totalEnergyShifted"`
	AvgDailyEnergyShifted float64                       `json:"avgDailyEnergyShifted"`
	DayTypeResults        map[string]HomeownerResponse `json:"dayTypeResults"`
}

type REPResponse struct {
	ID                    string  `json:"id,omitempty"`
	AvgDailyEnergyShifted float64 `json:"avgDailyEnergyShifted"`
	AvgDailyFleetShifted  float64 `json:"avgDailyFleetShifted"`
	TotalEnergyShifted    float64 `json:"totalEnergyShifted"` // MWh fleet-wide
	WholesaleCostSavings  float64 `json:"wholesaleCostSavings"`
	RetailRevenueLoss     float64 `json:"retailRevenueLoss"`
	NetMarginImprovement  float64 `json:"netMarginImprovement"`
	AncillaryRevenue      float64 `json:"ancillaryRevenue"`
	TotalValue            float64 `json:"totalValue"`
	// Legacy field kept for older dashboard builds.
	WholesaleSavings float64 `json:"wholesaleSavings"`
}

type CIResponse struct {
	ID    string   `json:"id,omitempty"`
	Cases []CICase `json:"cases"`
}

type CICase struct {
	LoadMW        float64 `json:"loadMW"`
	AnnualizedNPV float64 `json:"annualizedNPV"` // $M per year
}

type PaybackResponse struct {
	ID            string  `json:"id,omitempty"`
	NetCost       float64 `json:"netCost"`
	AnnualSavings float64 `json:"annualSavings"`
	PaybackYears  float64 `json:"paybackYears"`
}

// RateStatsResponse is the response for /api/v1/rates/analyze.
type RateStatsResponse struct {
	Rates         []float64 `json:"rates"`
	Min           float64   `json:"min"`
	Max           float64   `json:"max"`
	Mean          float64   `json:"mean"`
	P05           float64   `json:"p05"`
	P95           float64   `json:"p95"`
	SpreadP95P05  float64   `json:"spreadP95P05"`
	OracleSavings float64   `json:"oracleSavings"`
}

// SummaryResponse is the static summary table behind the dashboard's
// comparison view. Values are $ per scenario column.
type SummaryResponse struct {
	Homeowners []float64 `json:"homeowners"`
	REPs       []float64 `json:"reps"`
	TDU        []float64 `json:"tdu"`
	Region     []float64 `json:"region"`
}

// BatteryInfo represents information about a battery preset
type BatteryInfo struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	File  string       `json:"file"`
	Specs BatterySpecs `json:"specs"`
}

// BatterySpecs contains battery specifications
type BatterySpecs struct {
	CapacityKWh float64 `json:"capacityKWh"`
	PowerKW     float64 `json:"powerKW"`
}

// DayTypeInfo describes one representative day type preset.
type DayTypeInfo struct {
	ID              string  `json:"id"`
	HVACConsumption float64 `json:"hvacConsumption"`
	HVACPeakTime    int     `json:"hvacPeakTime"`
	HVACLoadShape   int     `json:"hvacLoadShape"`
	DefaultDays     int     `json:"defaultDays"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
