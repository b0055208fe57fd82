package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestREPFleetValue(t *testing.T) {
	in := DefaultREPInput()
	in.BlendedAnnualSavings = 268.98
	in.TotalEnergyShiftedKWh = 1937.56

	res, err := REP(in)
	require.NoError(t, err)

	// 10k homes, wholesale spread (0.25 - 0.03) $/kWh on the shifted energy.
	fleetShift := 1937.56 * 10000
	assert.InDelta(t, fleetShift*(0.25-0.03), res.WholesaleCostSavings, 1e-6)
	assert.InDelta(t, 268.98*10000, res.RetailRevenueLoss, 1e-6)
	assert.InDelta(t, res.WholesaleCostSavings-res.RetailRevenueLoss, res.NetMarginImprovement, 1e-6)

	// 10k homes * 4 kW * $2.5/kW-mo * 12 months.
	assert.InDelta(t, 1200000, res.AncillaryRevenue, 1e-6)
	assert.InDelta(t, res.NetMarginImprovement+res.AncillaryRevenue, res.TotalValue, 1e-6)

	assert.InDelta(t, 1937.56/365, res.AvgDailyEnergyShifted, 1e-9)
	assert.InDelta(t, fleetShift/1000, res.TotalEnergyShiftedMWh, 1e-6)
}

func TestREPNegativeMargin(t *testing.T) {
	// Retail spread wider than wholesale spread: the REP loses more revenue
	// than it saves on procurement.
	in := DefaultREPInput()
	in.WholesalePeakPerMWh = 50
	in.WholesaleOffPeakPerMWh = 30
	in.BlendedAnnualSavings = 500
	in.TotalEnergyShiftedKWh = 2000

	res, err := REP(in)
	require.NoError(t, err)
	assert.Less(t, res.NetMarginImprovement, 0.0)
}

func TestREPZeroShift(t *testing.T) {
	in := DefaultREPInput()

	res, err := REP(in)
	require.NoError(t, err)
	assert.Zero(t, res.AvgDailyEnergyShifted)
	assert.Zero(t, res.WholesaleCostSavings)
	// Ancillary revenue does not depend on energy shift.
	assert.InDelta(t, 1200000, res.AncillaryRevenue, 1e-6)
}

func TestREPValidation(t *testing.T) {
	var invErr *InvalidInputError

	in := DefaultREPInput()
	in.Homes = -1
	_, err := REP(in)
	assert.ErrorAs(t, err, &invErr)

	in = DefaultREPInput()
	in.WholesalePeakPerMWh = -5
	_, err = REP(in)
	assert.ErrorAs(t, err, &invErr)
}
