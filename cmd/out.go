package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/ledger"
	"github.com/shiftclock/shiftclock/internal/model"
)

var outCmd = &cobra.Command{
	Use:   "out <name>",
	Short: "Clock out of the active shift",
	Args:  cobra.ExactArgs(1),
	RunE:  runOut,
}

func runOut(cmd *cobra.Command, args []string) error {
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
	shifts, idx, err := ledger.ClockOut(shifts, sess.Worker, now)
	if err != nil {
		return err
	}
	if err := st.SaveLedger(shifts); err != nil {
		return err
	}

	closed := shifts[idx]
	log.Debug().Str("worker", sess.Worker).Float64("hours", *closed.TotalHours).Msg("clock-out persisted")
	fmt.Printf("%s clocked out at %s (%.2f hours)\n",
		sess.Worker, model.FormatStamp(now), *closed.TotalHours)
	return nil
}
