package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/model"
	"github.com/shiftclock/shiftclock/internal/report"
)

var (
	reportBy        string
	reportAnomalies bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show aggregated hours per worker",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportBy, "by", "week", "Grouping period: day, week or month")
	reportCmd.Flags().BoolVar(&reportAnomalies, "anomalies", false, "List shifts exceeding the anomaly threshold instead")
}

func runReport(cmd *cobra.Command, args []string) error {
	if _, err := managerLogin(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	shifts, err := st.LoadLedger()
	if err != nil {
		return err
	}

	if reportAnomalies {
		flagged := report.FlagAnomalies(shifts, cfg.AnomalyThresholdHours)
		if len(flagged) == 0 {
			fmt.Printf("No shifts over %.1f hours.\n", cfg.AnomalyThresholdHours)
			return nil
		}
		fmt.Printf("Shifts over %.1f hours:\n", cfg.AnomalyThresholdHours)
		for _, sh := range flagged {
			fmt.Printf("  %-15s %s – %s  %6.2f\n",
				sh.Worker, model.FormatStamp(sh.ClockIn), model.FormatStamp(*sh.ClockOut), *sh.TotalHours)
		}
		return nil
	}

	period, err := report.ParsePeriod(reportBy)
	if err != nil {
		return err
	}

	totals := report.Summarize(shifts, period)
	if len(totals) == 0 {
		fmt.Println("No closed shifts to report.")
		return nil
	}

	fmt.Printf("%-15s %-10s  %6s\n", "worker", string(period), "hours")
	fmt.Println("----------------------------------")
	var grand float64
	for _, t := range totals {
		fmt.Printf("%-15s %-10s  %6.2f\n", t.Worker, t.Key, t.Hours)
		grand += t.Hours
	}
	fmt.Println("----------------------------------")
	fmt.Printf("%-15s %-10s  %6.2f\n", "Total", "", grand)
	return nil
}
