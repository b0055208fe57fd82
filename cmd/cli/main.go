package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"battery-value/internal/config"
	"battery-value/internal/dispatch"
	"battery-value/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "homeowner":
		cmdHomeowner(os.Args[2:])
	case "yearly":
		cmdYearly(os.Args[2:])
	case "payback":
		cmdPayback(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli homeowner --config examples/scenario.yaml --out results/plan.csv")
	fmt.Println("  cli yearly --config examples/scenario.yaml")
	fmt.Println("  cli payback --config examples/scenario.yaml --total-cost 3500")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - homeowner outputs CSV with action=CHARGING/IDLE/DISCHARGING per hour")
	fmt.Println("  - payback derives annual savings from the yearly blend when --annual-savings is not set")
}

func cmdHomeowner(args []string) {
	fs := flag.NewFlagSet("homeowner", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	outPath := fs.String("out", "", "Optional output CSV path for the dispatch plan")
	_ = fs.Parse(args)

	in := scenario.DefaultHomeownerInput()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		in = cfg.ToHomeownerInput()
	}

	res, err := scenario.Homeowner(in)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("daily savings:        $%.2f\n", res.DailySavings)
	fmt.Printf("total HVAC usage:     %.2f kWh\n", res.TotalHVACUsage)
	fmt.Printf("cost without battery: $%.2f\n", res.CostWithoutBattery)
	fmt.Printf("cost with battery:    $%.2f\n", res.CostWithBattery)
	fmt.Printf("energy shifted:       %.2f kWh\n", res.EnergyShiftedKWh)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := dispatch.WritePlanCSV(*outPath, res.Plan); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote dispatch plan to %s\n", *outPath)
	}
}

func cmdYearly(args []string) {
	fs := flag.NewFlagSet("yearly", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	_ = fs.Parse(args)

	in := scenario.DefaultYearlyInput()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		in = cfg.ToYearlyInput()
	}

	res, err := scenario.Yearly(in)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("blended annual savings: $%.2f\n", res.BlendedAnnualSavings)
	fmt.Printf("total energy shifted:   %.2f kWh/yr\n", res.TotalEnergyShiftedKWh)
	fmt.Printf("avg daily shifted:      %.2f kWh\n", res.AvgDailyEnergyShifted)
	for _, dayType := range []scenario.DayType{scenario.DayTypeHot, scenario.DayTypeMild, scenario.DayTypeWinter} {
		dayRes := res.DayTypeResults[dayType]
		fmt.Printf("  %-6s %3d days: $%.2f/day, %.2f kWh shifted\n",
			dayType, res.DayCounts[dayType], dayRes.DailySavings, dayRes.EnergyShiftedKWh)
	}
}

func cmdPayback(args []string) {
	fs := flag.NewFlagSet("payback", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Optional YAML scenario config to derive annual savings from")
	totalCost := fs.Float64("total-cost", 3500, "Installed system cost ($)")
	federalITC := fs.Float64("federal-itc", 30, "Federal investment tax credit (%)")
	stateRebates := fs.Float64("state-rebates", 0, "State rebates ($)")
	utilityRebate := fs.Float64("utility-rebate", 500, "Utility rebate ($)")
	annualSavings := fs.Float64("annual-savings", 0, "Annual savings ($); 0 = derive from yearly blend")
	_ = fs.Parse(args)

	savings := *annualSavings
	if savings == 0 {
		in := scenario.DefaultYearlyInput()
		if *cfgPath != "" {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				fatal(err)
			}
			in = cfg.ToYearlyInput()
		}
		yearly, err := scenario.Yearly(in)
		if err != nil {
			fatal(err)
		}
		savings = yearly.BlendedAnnualSavings
	}

	res, err := scenario.Payback(scenario.PaybackInput{
		TotalCost:     *totalCost,
		FederalITCPct: *federalITC,
		StateRebates:  *stateRebates,
		UtilityRebate: *utilityRebate,
		AnnualSavings: savings,
	})
	if err != nil {
		fatal(err)
	}

	fmt.Printf("net cost:       $%.2f\n", res.NetCost)
	fmt.Printf("annual savings: $%.2f\n", res.AnnualSavings)
	if res.PaybackYears > 0 {
		fmt.Printf("payback:        %.1f years\n", res.PaybackYears)
	} else {
		fmt.Println("payback:        never (no savings)")
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
