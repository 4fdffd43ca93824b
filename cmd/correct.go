package cmd

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/ledger"
	"github.com/shiftclock/shiftclock/internal/model"
)

var (
	correctIn  string
	correctOut string
)

var correctCmd = &cobra.Command{
	Use:   "correct <id>",
	Short: "Rewrite both boundaries of a shift",
	Long: `Rewrites the clock-in and clock-out of the shift at the given row id
(as printed by list) and recomputes its total. The prior values are
not retained. Manager only.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorrect,
}

func init() {
	correctCmd.Flags().StringVar(&correctIn, "in", "", `New clock-in ("YYYY-MM-DD HH:MM")`)
	correctCmd.Flags().StringVar(&correctOut, "out", "", `New clock-out ("YYYY-MM-DD HH:MM")`)
	_ = correctCmd.MarkFlagRequired("in")
	_ = correctCmd.MarkFlagRequired("out")
}

func runCorrect(cmd *cobra.Command, args []string) error {
	if _, err := managerLogin(); err != nil {
		return err
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid shift id %q", args[0])
	}
	newIn, err := model.ParseStamp(correctIn)
	if err != nil {
		return err
	}
	newOut, err := model.ParseStamp(correctOut)
	if err != nil {
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

	shifts, err = ledger.Correct(shifts, id, newIn, newOut)
	if err != nil {
		return err
	}
	if err := st.SaveLedger(shifts); err != nil {
		return err
	}

	sh := shifts[id]
	log.Debug().Int("id", id).Str("worker", sh.Worker).Msg("correction persisted")
	fmt.Printf("Shift %d corrected: %s  %s – %s (%.2f hours)\n",
		id, sh.Worker, model.FormatStamp(sh.ClockIn), model.FormatStamp(*sh.ClockOut), *sh.TotalHours)
	return nil
}
