package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/ledger"
	"github.com/shiftclock/shiftclock/internal/model"
)

var statusCmd = &cobra.Command{
	Use:   "status <name>",
	Short: "Show a worker's current shift status",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	sess, err := workerLogin(st, args[0])
	if err != nil {
		return err
	}

	shifts, err := st.LoadLedger()
	if err != nil {
		return err
	}

	now := appClock().Now()
	if i := ledger.FindActive(shifts, sess.Worker); i >= 0 {
		sh := shifts[i]
		fmt.Printf("%s is on shift since %s (%.2f hours so far)\n",
			sess.Worker, model.FormatStamp(sh.ClockIn), model.Hours(sh.ClockIn, now))
		return nil
	}

	// Off shift — show today's closed total.
	today := now.Format("2006-01-02")
	var total float64
	for _, sh := range shifts {
		if sh.Open() || !sess.CanView(sh) {
			continue
		}
		if sh.ClockIn.Format("2006-01-02") == today {
			total += *sh.TotalHours
		}
	}
	fmt.Printf("%s is not on shift. %.2f hours logged today.\n", sess.Worker, total)
	return nil
}
