package config

import (
	"os"
	"path/filepath"
	"testing"

	"battery-value/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadScenarioConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	writeFile(t, path, `
battery:
  capacity_kwh: 13.5
  power_kw: 5
  round_trip_efficiency: 0.9
pricing:
  model: tou
  peak_rate: 0.30
  off_peak_rate: 0.10
  peak_start: 15
  peak_end: 20
hvac:
  consumption_kw: 4
  peak_hour: 17
  load_shape: 6
year:
  hot_days: 120
  mild_days: 120
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	in := cfg.ToHomeownerInput()
	assert.Equal(t, 13.5, in.Battery.CapacityKWh)
	assert.Equal(t, 0.9, in.Battery.RoundTripEfficiency)
	// Unset fields keep the dashboard defaults.
	assert.Equal(t, 0.1, in.Battery.MinSOC)
	assert.Equal(t, 4, in.Battery.DischargeHours)

	assert.Equal(t, model.PricingTOU, in.Pricing.Model)
	assert.Equal(t, 0.30, in.Pricing.PeakRate)
	assert.Equal(t, 15, in.Pricing.PeakStart)

	assert.Equal(t, 4.0, in.HVAC.ConsumptionKW)
	assert.Equal(t, 17, in.HVAC.PeakHour)

	year := cfg.ToYearlyInput()
	assert.Equal(t, 120, year.HotDays)
	assert.Equal(t, 120, year.MildDays)
}

func TestLoadWithBatteryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "batteries", "wall.yaml"), `
battery:
  name: wall unit
  capacity_kwh: 10
  power_kw: 5
  round_trip_efficiency: 0.85
  min_soc: 0.1
  max_soc: 0.9
  discharge_hours: 4
`)
	path := filepath.Join(dir, "scenario.yaml")
	// battery_file resolves relative to the config file, and explicit
	// battery fields override the preset.
	writeFile(t, path, `
battery_file: batteries/wall.yaml
battery:
  capacity_kwh: 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	in := cfg.ToHomeownerInput()
	assert.Equal(t, 20.0, in.Battery.CapacityKWh)
	assert.Equal(t, 5.0, in.Battery.PowerKW)
	assert.Equal(t, 0.85, in.Battery.RoundTripEfficiency)
	assert.Equal(t, "wall unit", cfg.Battery.Name)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	writeFile(t, path, `
battery:
  capacity_kwh: 10
  min_soc: 0.9
  max_soc: 0.1
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMergeBattery(t *testing.T) {
	base := BatteryConfig{
		Name:                "base",
		CapacityKWh:         10,
		PowerKW:             5,
		RoundTripEfficiency: 0.85,
		MinSOC:              0.1,
		MaxSOC:              0.9,
		DischargeHours:      4,
	}
	out := MergeBattery(base, BatteryConfig{CapacityKWh: 13.5, DischargeHours: 5})

	assert.Equal(t, "base", out.Name)
	assert.Equal(t, 13.5, out.CapacityKWh)
	assert.Equal(t, 5.0, out.PowerKW)
	assert.Equal(t, 5, out.DischargeHours)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
