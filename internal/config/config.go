package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"battery-value/internal/model"
	"battery-value/internal/scenario"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML) consumed by the CLI.
type Config struct {
	// Optional: load battery parameters from a separate YAML (e.g. examples/batteries/*.yaml).
	// If both BatteryFile and Battery are provided, Battery overrides BatteryFile.
	BatteryFile string        `yaml:"battery_file"`
	Battery     BatteryConfig `yaml:"battery"`
	Pricing     PricingConfig `yaml:"pricing"`
	HVAC        HVACConfig    `yaml:"hvac"`
	Year        YearConfig    `yaml:"year"`
}

type BatteryConfig struct {
	Name                string  `yaml:"name"`
	CapacityKWh         float64 `yaml:"capacity_kwh"`
	PowerKW             float64 `yaml:"power_kw"`
	RoundTripEfficiency float64 `yaml:"round_trip_efficiency"`
	MinSOC              float64 `yaml:"min_soc"`
	MaxSOC              float64 `yaml:"max_soc"`
	DischargeHours      int     `yaml:"discharge_hours"`
}

type PricingConfig struct {
	Model        string    `yaml:"model"`
	PeakRate     float64   `yaml:"peak_rate"`
	OffPeakRate  float64   `yaml:"off_peak_rate"`
	PeakStart    int       `yaml:"peak_start"`
	PeakEnd      int       `yaml:"peak_end"`
	HourlyPrices []float64 `yaml:"hourly_prices"`
}

type HVACConfig struct {
	ConsumptionKW float64 `yaml:"consumption_kw"`
	PeakHour      int     `yaml:"peak_hour"`
	LoadShape     int     `yaml:"load_shape"`
}

type YearConfig struct {
	HotDays  int `yaml:"hot_days"`
	MildDays int `yaml:"mild_days"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If battery_file is set, load it and merge in any explicit overrides from c.Battery.
	if c.BatteryFile != "" {
		batteryPath := c.BatteryFile
		if !filepath.IsAbs(batteryPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), batteryPath)
			if _, err := os.Stat(cand); err == nil {
				batteryPath = cand
			}
		}
		loaded, err := LoadBatteryFile(batteryPath)
		if err != nil {
			return nil, err
		}
		c.Battery = MergeBattery(loaded, c.Battery)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	in := c.ToHomeownerInput()
	if err := in.Battery.Validate(); err != nil {
		return fmt.Errorf("battery config invalid: %w", err)
	}
	if err := in.HVAC.Validate(); err != nil {
		return fmt.Errorf("hvac config invalid: %w", err)
	}
	if err := in.Pricing.Validate(); err != nil {
		return fmt.Errorf("pricing config invalid: %w", err)
	}
	return nil
}

// ToHomeownerInput resolves the config onto the dashboard defaults: zero
// fields keep their default, non-zero fields override it.
func (c *Config) ToHomeownerInput() scenario.HomeownerInput {
	in := scenario.DefaultHomeownerInput()

	if c.Battery.CapacityKWh != 0 {
		in.Battery.CapacityKWh = c.Battery.CapacityKWh
	}
	if c.Battery.PowerKW != 0 {
		in.Battery.PowerKW = c.Battery.PowerKW
	}
	if c.Battery.RoundTripEfficiency != 0 {
		in.Battery.RoundTripEfficiency = c.Battery.RoundTripEfficiency
	}
	if c.Battery.MinSOC != 0 {
		in.Battery.MinSOC = c.Battery.MinSOC
	}
	if c.Battery.MaxSOC != 0 {
		in.Battery.MaxSOC = c.Battery.MaxSOC
	}
	if c.Battery.DischargeHours != 0 {
		in.Battery.DischargeHours = c.Battery.DischargeHours
	}

	if c.Pricing.Model != "" {
		in.Pricing.Model = model.PricingModel(c.Pricing.Model)
	}
	if c.Pricing.PeakRate != 0 {
		in.Pricing.PeakRate = c.Pricing.PeakRate
	}
	if c.Pricing.OffPeakRate != 0 {
		in.Pricing.OffPeakRate = c.Pricing.OffPeakRate
	}
	if c.Pricing.PeakStart != 0 {
		in.Pricing.PeakStart = c.Pricing.PeakStart
	}
	if c.Pricing.PeakEnd != 0 {
		in.Pricing.PeakEnd = c.Pricing.PeakEnd
	}
	if len(c.Pricing.HourlyPrices) > 0 {
		in.Pricing.HourlyPrices = c.Pricing.HourlyPrices
	}

	if c.HVAC.ConsumptionKW != 0 {
		in.HVAC.ConsumptionKW = c.HVAC.ConsumptionKW
	}
	if c.HVAC.PeakHour != 0 {
		in.HVAC.PeakHour = c.HVAC.PeakHour
	}
	if c.HVAC.LoadShape != 0 {
		in.HVAC.LoadShape = c.HVAC.LoadShape
	}

	return in
}

// ToYearlyInput resolves the yearly blend on top of ToHomeownerInput.
func (c *Config) ToYearlyInput() scenario.YearlyInput {
	in := scenario.DefaultYearlyInput()
	in.Base = c.ToHomeownerInput()
	if c.Year.HotDays != 0 {
		in.HotDays = c.Year.HotDays
	}
	if c.Year.MildDays != 0 {
		in.MildDays = c.Year.MildDays
	}
	return in
}

type batteryFileWrapper struct {
	Battery BatteryConfig `yaml:"battery"`
}

// LoadBatteryFile reads a battery preset YAML (a `battery:` block).
func LoadBatteryFile(path string) (BatteryConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BatteryConfig{}, err
	}
	var w batteryFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return BatteryConfig{}, err
	}
	return w.Battery, nil
}

// MergeBattery overlays non-zero fields from override onto base.
// This is used when loading a battery file and then applying overrides from the request.
func MergeBattery(base, override BatteryConfig) BatteryConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapacityKWh != 0 {
		out.CapacityKWh = override.CapacityKWh
	}
	if override.PowerKW != 0 {
		out.PowerKW = override.PowerKW
	}
	if override.RoundTripEfficiency != 0 {
		out.RoundTripEfficiency = override.RoundTripEfficiency
	}
	// Note: these are allowed to be 0 in theory, but our configs use non-zero values.
	if override.MinSOC != 0 {
		out.MinSOC = override.MinSOC
	}
	if override.MaxSOC != 0 {
		out.MaxSOC = override.MaxSOC
	}
	if override.DischargeHours != 0 {
		out.DischargeHours = override.DischargeHours
	}
	return out
}
