package dispatch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"battery-value/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBattery() model.BatteryParams {
	return model.BatteryParams{
		CapacityKWh:         10,
		PowerKW:             5,
		RoundTripEfficiency: 0.85,
		MinSOC:              0.1,
		MaxSOC:              0.9,
		DischargeHours:      4,
	}
}

func defaultCurves(t *testing.T) (usage, rates [model.HoursPerDay]float64) {
	t.Helper()
	var err error
	usage, err = model.HVACProfile(model.HVACProfileParams{ConsumptionKW: 3.5, PeakHour: 16, LoadShape: 5})
	require.NoError(t, err)
	rates, err = (model.RateSchedule{
		Model: model.PricingTOU, PeakRate: 0.28, OffPeakRate: 0.12, PeakStart: 14, PeakEnd: 19,
	}).HourlyRates()
	require.NoError(t, err)
	return usage, rates
}

func TestOptimizeBaselineScenario(t *testing.T) {
	usage, rates := defaultCurves(t)
	p, err := Optimize(usage, rates, defaultBattery())
	require.NoError(t, err)

	// Usable capacity caps the shift at 8 kWh even though the four priciest
	// hours need more.
	assert.InDelta(t, 8.0, p.EnergyStoredKWh, 1e-9)

	// Charging lands on the earliest cheap hours, 5 kW max per hour:
	// 8/0.85 = 9.411... kWh total.
	assert.InDelta(t, 5.0, p.ChargeKWh[0], 1e-9)
	assert.InDelta(t, 4.411764705882353, p.ChargeKWh[1], 1e-9)
	for h := 2; h < model.HoursPerDay; h++ {
		assert.Zero(t, p.ChargeKWh[h], "hour %d", h)
	}

	// Rate ties inside the flat peak break toward later hours, so discharge
	// fills 18, then 17, then what remains into 16.
	assert.InDelta(t, 3.310858141173679, p.DischargeKWh[18], 1e-9)
	assert.InDelta(t, 3.451724908603707, p.DischargeKWh[17], 1e-9)
	assert.InDelta(t, 1.2374169502226144, p.DischargeKWh[16], 1e-9)
	assert.Zero(t, p.DischargeKWh[15])
	assert.Zero(t, p.DischargeKWh[14])
}

func TestOptimizeSOCTrace(t *testing.T) {
	usage, rates := defaultCurves(t)
	p, err := Optimize(usage, rates, defaultBattery())
	require.NoError(t, err)

	assert.InDelta(t, 0.1, p.Rows[0].SOCStart, 1e-12)
	// Hour 0 banks 5 * 0.85 = 4.25 kWh on a 10 kWh pack.
	assert.InDelta(t, 0.525, p.Rows[0].SOCEnd, 1e-9)
	// Fully charged to MaxSOC after hour 1.
	assert.InDelta(t, 0.9, p.Rows[1].SOCEnd, 1e-9)
	// Back at MinSOC once the discharge hours are done.
	assert.InDelta(t, 0.1, p.Rows[23].SOCEnd, 1e-9)

	assert.Equal(t, model.ActionCharging, p.Rows[0].Action)
	assert.Equal(t, model.ActionIdle, p.Rows[5].Action)
	assert.Equal(t, model.ActionDischarging, p.Rows[17].Action)
}

func TestOptimizeZeroCapacity(t *testing.T) {
	usage, rates := defaultCurves(t)
	batt := defaultBattery()
	batt.CapacityKWh = 0

	p, err := Optimize(usage, rates, batt)
	require.NoError(t, err)

	assert.Zero(t, p.EnergyStoredKWh)
	for h := 0; h < model.HoursPerDay; h++ {
		assert.Zero(t, p.ChargeKWh[h], "charge hour %d", h)
		assert.Zero(t, p.DischargeKWh[h], "discharge hour %d", h)
		assert.InDelta(t, usage[h], p.Rows[h].GridKWh, 1e-12, "grid hour %d", h)
	}
}

func TestOptimizePowerLimitsDischarge(t *testing.T) {
	usage, rates := defaultCurves(t)
	batt := defaultBattery()
	batt.PowerKW = 2

	p, err := Optimize(usage, rates, batt)
	require.NoError(t, err)

	for h := 0; h < model.HoursPerDay; h++ {
		assert.LessOrEqual(t, p.ChargeKWh[h], 2.0, "charge hour %d", h)
		assert.LessOrEqual(t, p.DischargeKWh[h], 2.0, "discharge hour %d", h)
	}
}

func TestOptimizeRejectsBadBattery(t *testing.T) {
	usage, rates := defaultCurves(t)
	batt := defaultBattery()
	batt.RoundTripEfficiency = 0

	_, err := Optimize(usage, rates, batt)
	assert.Error(t, err)
}

func TestWritePlanCSV(t *testing.T) {
	usage, rates := defaultCurves(t)
	p, err := Optimize(usage, rates, defaultBattery())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, WritePlanCSV(path, p))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	// Header plus 24 hours.
	assert.Len(t, lines, 25)
	assert.True(t, strings.HasPrefix(lines[0], "hour,rate,usage_kwh,action"))
	assert.Contains(t, string(raw), "CHARGING")
	assert.Contains(t, string(raw), "DISCHARGING")
}
