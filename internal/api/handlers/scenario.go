package handlers

import (
	"errors"
	"net/http"

	"battery-value/internal/analysis"
	"battery-value/internal/api/models"
	"battery-value/internal/model"
	"battery-value/internal/scenario"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScenarioHandler handles the calculate endpoints.
type ScenarioHandler struct{}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{}
}

// CalculateHomeowner handles POST /api/v1/calculate/homeowner
func (h *ScenarioHandler) CalculateHomeowner(c *gin.Context) {
	var req models.HomeownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := scenario.Homeowner(req.ToInput())
	if err != nil {
		writeCalcError(c, err)
		return
	}

	resp := toHomeownerResponse(res)
	resp.ID = uuid.NewString()
	c.JSON(http.StatusOK, resp)
}

// CalculateYearly handles POST /api/v1/calculate/yearly
func (h *ScenarioHandler) CalculateYearly(c *gin.Context) {
	var req models.YearlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := scenario.Yearly(req.ToInput())
	if err != nil {
		writeCalcError(c, err)
		return
	}

	resp := models.YearlyResponse{
		ID:                    uuid.NewString(),
		BlendedAnnualSavings:  res.BlendedAnnualSavings,
		TotalEnergyShifted:    res.TotalEnergyShiftedKWh,
		AvgDailyEnergyShifted: res.AvgDailyEnergyShifted,
		DayTypeResults:        make(map[string]models.HomeownerResponse, len(res.DayTypeResults)),
	}
	for dayType, dayRes := range res.DayTypeResults {
		resp.DayTypeResults[string(dayType)] = toHomeownerResponse(dayRes)
	}
	c.JSON(http.StatusOK, resp)
}

// CalculateREP handles POST /api/v1/calculate/rep
func (h *ScenarioHandler) CalculateREP(c *gin.Context) {
	var req models.REPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := scenario.REP(req.ToInput())
	if err != nil {
		writeCalcError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.REPResponse{
		ID:                    uuid.NewString(),
		AvgDailyEnergyShifted: res.AvgDailyEnergyShifted,
		AvgDailyFleetShifted:  res.AvgDailyFleetShifted,
		TotalEnergyShifted:    res.TotalEnergyShiftedMWh,
		WholesaleCostSavings:  res.WholesaleCostSavings,
		RetailRevenueLoss:     res.RetailRevenueLoss,
		NetMarginImprovement:  res.NetMarginImprovement,
		AncillaryRevenue:      res.AncillaryRevenue,
		TotalValue:            res.TotalValue,
		WholesaleSavings:      res.WholesaleCostSavings,
	})
}

// CalculateCI handles POST /api/v1/calculate/ci
func (h *ScenarioHandler) CalculateCI(c *gin.Context) {
	var req models.CIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := scenario.CI(req.ToInput())
	if err != nil {
		writeCalcError(c, err)
		return
	}

	resp := models.CIResponse{ID: uuid.NewString(), Cases: make([]models.CICase, 0, len(res.Cases))}
	for _, cs := range res.Cases {
		resp.Cases = append(resp.Cases, models.CICase{
			LoadMW:        cs.LoadMW,
			AnnualizedNPV: cs.AnnualizedNPVMillions,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// CalculatePayback handles POST /api/v1/calculate/payback
func (h *ScenarioHandler) CalculatePayback(c *gin.Context) {
	var req models.PaybackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	res, err := scenario.Payback(req.ToInput())
	if err != nil {
		writeCalcError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PaybackResponse{
		ID:            uuid.NewString(),
		NetCost:       res.NetCost,
		AnnualSavings: res.AnnualSavings,
		PaybackYears:  res.PaybackYears,
	})
}

// AnalyzeRates handles POST /api/v1/rates/analyze
func (h *ScenarioHandler) AnalyzeRates(c *gin.Context) {
	var req models.RatesAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	rates, err := req.ToSchedule().HourlyRates()
	if err != nil {
		writeCalcError(c, &scenario.InvalidInputError{Message: err.Error()})
		return
	}

	stats := analysis.ComputeRateStats(rates)
	c.JSON(http.StatusOK, models.RateStatsResponse{
		Rates:         hourlySlice(rates),
		Min:           stats.Min,
		Max:           stats.Max,
		Mean:          stats.Mean,
		P05:           stats.P05,
		P95:           stats.P95,
		SpreadP95P05:  stats.SpreadP95P05,
		OracleSavings: stats.OracleSavings,
	})
}

// Helper methods

func toHomeownerResponse(res *scenario.HomeownerResult) models.HomeownerResponse {
	return models.HomeownerResponse{
		DailySavings:       res.DailySavings,
		TotalHVACUsage:     res.TotalHVACUsage,
		CostWithoutBattery: res.CostWithoutBattery,
		CostWithBattery:    res.CostWithBattery,
		EnergyShifted:      res.EnergyShiftedKWh,
		Breakdown: models.CostBreakdown{
			PeakCostNoBattery:      res.Breakdown.PeakCostNoBattery,
			OffPeakCostNoBattery:   res.Breakdown.OffPeakCostNoBattery,
			ChargeCostWithBattery:  res.Breakdown.ChargeCostWithBattery,
			PeakCostWithBattery:    res.Breakdown.PeakCostWithBattery,
			OffPeakCostWithBattery: res.Breakdown.OffPeakCostWithBattery,
		},
		HourlyData: models.HourlyData{
			Rates:         hourlySlice(res.Hourly.Rates),
			HVACUsage:     hourlySlice(res.Hourly.HVACUsage),
			HVACFromGrid:  hourlySlice(res.Hourly.HVACFromGrid),
			ChargePlan:    hourlySlice(res.Hourly.ChargePlan),
			DischargePlan: hourlySlice(res.Hourly.DischargePlan),
		},
	}
}

func hourlySlice(a [model.HoursPerDay]float64) []float64 {
	out := make([]float64, model.HoursPerDay)
	copy(out, a[:])
	return out
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

func writeCalcError(c *gin.Context, err error) {
	var invErr *scenario.InvalidInputError
	if errors.As(err, &invErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: invErr.Message,
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "CALCULATION_ERROR",
			Message: err.Error(),
		},
	})
}
