package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/ledger"
	"github.com/shiftclock/shiftclock/internal/model"
)

var punchAt string

var punchCmd = &cobra.Command{
	Use:   "punch <name>",
	Short: "Clock a worker in or out at an arbitrary time",
	Long: `Records a clock-in or clock-out for the worker at the given time,
chosen by whether the worker currently has an active shift. The same
validation as the regular in and out commands applies. Manager only.`,
	Args: cobra.ExactArgs(1),
	RunE: runPunch,
}

func init() {
	punchCmd.Flags().StringVar(&punchAt, "at", "", `Punch time ("YYYY-MM-DD HH:MM"); defaults to now`)
}

func runPunch(cmd *cobra.Command, args []string) error {
	if _, err := managerLogin(); err != nil {
		return err
	}

	at := appClock().Now()
	if punchAt != "" {
		var err error
		at, err = model.ParseStamp(punchAt)
		if err != nil {
			return err
		}
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	shifts, err := st.LoadLedger()
	if err != nil {
		return err
	}

	shifts, action, err := ledger.PunchAt(shifts, args[0], at)
	if err != nil {
		return err
	}
	if err := st.SaveLedger(shifts); err != nil {
		return err
	}

	log.Debug().Str("worker", args[0]).Stringer("action", action).Msg("manual punch persisted")
	fmt.Printf("Recorded %s for %s at %s\n", action, args[0], model.FormatStamp(at))
	return nil
}
