package handlers

import (
	"net/http"

	"battery-value/internal/api/models"
	"battery-value/internal/scenario"

	"github.com/gin-gonic/gin"
)

// GetSummary handles GET /api/v1/summary.
// The dashboard's comparison table is static reference data; each slice has
// one entry per adoption-scale column.
func GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, models.SummaryResponse{
		Homeowners: []float64{312500, 625000, 937500},
		REPs:       []float64{100000, 100000, 100000},
		TDU:        []float64{9236018, 23350000, 35025000},
		Region:     []float64{4700000, 14100000, 14100000},
	})
}

// ListDayTypes handles GET /api/v1/daytypes
func ListDayTypes(c *gin.Context) {
	defaults := scenario.DefaultYearlyInput()
	defaultDays := map[scenario.DayType]int{
		scenario.DayTypeHot:    defaults.HotDays,
		scenario.DayTypeMild:   defaults.MildDays,
		scenario.DayTypeWinter: 365 - defaults.HotDays - defaults.MildDays,
	}

	dayTypes := make([]models.DayTypeInfo, 0, len(scenario.DayTypePresets))
	for _, dayType := range []scenario.DayType{scenario.DayTypeHot, scenario.DayTypeMild, scenario.DayTypeWinter} {
		preset := scenario.DayTypePresets[dayType]
		dayTypes = append(dayTypes, models.DayTypeInfo{
			ID:              string(dayType),
			HVACConsumption: preset.ConsumptionKW,
			HVACPeakTime:    preset.PeakHour,
			HVACLoadShape:   preset.LoadShape,
			DefaultDays:     defaultDays[dayType],
		})
	}

	c.JSON(http.StatusOK, gin.H{"dayTypes": dayTypes})
}
