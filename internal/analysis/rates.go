package analysis

import (
	"math"
	"sort"

	"battery-value/internal/model"
)

// RateStats summarizes a 24-hour retail rate curve. It intentionally does
// not depend on a specific battery size; it includes both raw price stats
// and an "oracle" savings bound for a canonical 1 kW / 1 kWh battery.
type RateStats struct {
	Min  float64
	Max  float64
	Mean float64
	P05  float64
	P95  float64

	SpreadP95P05 float64

	// OracleSavings is the best possible arbitrage value ($/day) from a
	// canonical battery:
	// - 1 kW power, 1 kWh energy
	// - 100% efficiency
	// - SOC bounds [0,1], initial SOC 0.5
	// - dispatch choices {-1, 0, +1} kW each hour
	OracleSavings float64
}

func ComputeRateStats(rates [model.HoursPerDay]float64) RateStats {
	s := RateStats{}

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, model.HoursPerDay)
	for _, v := range rates {
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(vals)
	s.Min = minv
	s.Max = maxv
	s.Mean = sum / float64(len(vals))
	s.P05 = percentileSorted(vals, 0.05)
	s.P95 = percentileSorted(vals, 0.95)
	s.SpreadP95P05 = s.P95 - s.P05

	s.OracleSavings = oracleSavingsCanonical(rates)
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// oracleSavingsCanonical computes a best-effort upper bound using a simple
// DP: with 1 kW and 1 kWh on hourly steps, the battery fills or empties in
// one hour, so the SOC state space is just {empty, full} and the initial
// 0.5 snaps to the nearest state.
func oracleSavingsCanonical(rates [model.HoursPerDay]float64) float64 {
	const steps = 1
	nStates := steps + 1
	negInf := -1e100
	dp := make([]float64, nStates)
	next := make([]float64, nStates)
	for i := range dp {
		dp[i] = negInf
	}
	init := int(math.Round(0.5 * float64(steps)))
	dp[init] = 0

	for _, price := range rates {
		for i := range next {
			next[i] = negInf
		}
		for socIdx := 0; socIdx < nStates; socIdx++ {
			if dp[socIdx] <= negInf/2 {
				continue
			}

			// Idle
			if dp[socIdx] > next[socIdx] {
				next[socIdx] = dp[socIdx]
			}

			// Charge: buy 1 kWh at this hour's price.
			if socIdx < steps {
				gain := -price
				if dp[socIdx]+gain > next[socIdx+1] {
					next[socIdx+1] = dp[socIdx] + gain
				}
			}

			// Discharge: avoid buying 1 kWh at this hour's price.
			if socIdx > 0 {
				gain := price
				if dp[socIdx]+gain > next[socIdx-1] {
					next[socIdx-1] = dp[socIdx] + gain
				}
			}
		}
		dp, next = next, dp
	}

	best := negInf
	for _, v := range dp {
		if v > best {
			best = v
		}
	}
	if best <= negInf/2 {
		return 0
	}
	return best
}
