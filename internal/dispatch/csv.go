package dispatch

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WritePlanCSV(path string, p *Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"rate",
		"usage_kwh",
		"action",
		"charge_kwh",
		"discharge_kwh",
		"grid_kwh",
		"soc_start",
		"soc_end",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range p.Rows {
		row := []string{
			strconv.Itoa(r.Hour),
			fmtFloat(r.Rate),
			fmtFloat(r.UsageKWh),
			string(r.Action),
			fmtFloat(r.ChargeKWh),
			fmtFloat(r.DischargeKWh),
			fmtFloat(r.GridKWh),
			fmtFloat(r.SOCStart),
			fmtFloat(r.SOCEnd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
