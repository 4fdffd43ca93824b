package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full ledger as CSV to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
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

	data, err := store.MarshalLedger(shifts)
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
