package model

// Action is a human-friendly operating mode for one hour of the plan.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionCharging    Action = "CHARGING"
	ActionIdle        Action = "IDLE"
	ActionDischarging Action = "DISCHARGING"
)

// ActionForHour classifies an hour by its planned energy flows. An hour that
// both charges and discharges is reported by the larger flow.
func ActionForHour(chargeKWh, dischargeKWh float64) Action {
	switch {
	case chargeKWh > dischargeKWh:
		return ActionCharging
	case dischargeKWh > chargeKWh:
		return ActionDischarging
	default:
		if chargeKWh > 0 {
			return ActionCharging
		}
		return ActionIdle
	}
}
