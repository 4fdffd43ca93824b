package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/auth"
	"github.com/shiftclock/shiftclock/internal/model"
	"github.com/shiftclock/shiftclock/internal/report"
)

var (
	listWorker  string
	listMonth   string
	listWeekday string
)

var listCmd = &cobra.Command{
	Use:   "list [name]",
	Short: "List closed shifts",
	Long: `With a worker name, lists that worker's own closed shifts after
whitelist authentication. With --password, lists all closed shifts and
accepts the manager filter flags. Row ids shown here are the targets
for the correct command. Shifts longer than the configured anomaly
threshold are marked with !.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listWorker, "worker", "", "Filter by worker name (manager only)")
	listCmd.Flags().StringVar(&listMonth, "month", "", "Filter by clock-in month (YYYY-MM)")
	listCmd.Flags().StringVar(&listWeekday, "weekday", "", "Filter by clock-in weekday (e.g. Sunday)")
}

func runList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}

	var sess auth.Session
	if len(args) == 1 {
		sess, err = workerLogin(st, args[0])
	} else {
		sess, err = managerLogin()
	}
	if err != nil {
		return err
	}

	shifts, err := st.LoadLedger()
	if err != nil {
		return err
	}

	opts := report.Options{Worker: listWorker, Month: listMonth}
	if sess.Role == auth.RoleWorker {
		// Workers see their own rows only.
		opts.Worker = sess.Worker
	}
	if listWeekday != "" {
		wd, err := report.ParseWeekday(listWeekday)
		if err != nil {
			return err
		}
		opts.Weekday = &wd
	}

	shown := 0
	for id, sh := range shifts {
		if !report.Matches(sh, opts) || !sess.CanView(sh) {
			continue
		}
		if shown == 0 {
			fmt.Printf("%4s  %-15s %-16s  %-16s  %6s\n", "id", "worker", "clock_in", "clock_out", "hours")
		}
		mark := ""
		if report.IsAnomaly(sh, cfg.AnomalyThresholdHours) {
			mark = " !"
		}
		fmt.Printf("%4d  %-15s %-16s  %-16s  %6.2f%s\n",
			id, sh.Worker, model.FormatStamp(sh.ClockIn), model.FormatStamp(*sh.ClockOut), *sh.TotalHours, mark)
		shown++
	}
	if shown == 0 {
		fmt.Println("No shifts found.")
	}
	return nil
}
