package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/ledger"
	"github.com/shiftclock/shiftclock/internal/model"
)

var inCmd = &cobra.Command{
	Use:   "in <name>",
	Short: "Clock in to a new shift",
	Args:  cobra.ExactArgs(1),
	RunE:  runIn,
}

func runIn(cmd *cobra.Command, args []string) error {
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
	shifts, err = ledger.ClockIn(shifts, sess.Worker, now)
	if err != nil {
		return err
	}
	if err := st.SaveLedger(shifts); err != nil {
		return err
	}

	log.Debug().Str("worker", sess.Worker).Msg("clock-in persisted")
	fmt.Printf("%s clocked in at %s\n", sess.Worker, model.FormatStamp(now))
	return nil
}
