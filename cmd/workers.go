package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/model"
	"github.com/shiftclock/shiftclock/internal/store"
)

var workersCmd = &cobra.Command{
	Use:   "workers",
	Short: "Manage the authorized worker list",
}

var workersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List authorized workers",
	Args:  cobra.NoArgs,
	RunE:  runWorkersList,
}

var workersAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Authorize a worker",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkersAdd,
}

var workersRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a worker's authorization",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkersRemove,
}

func init() {
	workersCmd.AddCommand(workersListCmd)
	workersCmd.AddCommand(workersAddCmd)
	workersCmd.AddCommand(workersRemoveCmd)
}

func loadWhitelist() (*store.Store, []string, error) {
	if _, err := managerLogin(); err != nil {
		return nil, nil, err
	}
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	names, err := st.LoadAuthorized()
	if err != nil {
		return nil, nil, err
	}
	return st, names, nil
}

func runWorkersList(cmd *cobra.Command, args []string) error {
	_, names, err := loadWhitelist()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runWorkersAdd(cmd *cobra.Command, args []string) error {
	st, names, err := loadWhitelist()
	if err != nil {
		return err
	}
	key := model.NormalizeName(args[0])
	if key == "" {
		return fmt.Errorf("worker name must not be empty")
	}
	for _, name := range names {
		if model.NormalizeName(name) == key {
			return fmt.Errorf("%q is already authorized", name)
		}
	}
	if err := st.SaveAuthorized(append(names, args[0])); err != nil {
		return err
	}
	fmt.Printf("Authorized %s\n", args[0])
	return nil
}

func runWorkersRemove(cmd *cobra.Command, args []string) error {
	st, names, err := loadWhitelist()
	if err != nil {
		return err
	}
	key := model.NormalizeName(args[0])
	kept := names[:0]
	removed := false
	for _, name := range names {
		if model.NormalizeName(name) == key {
			removed = true
			continue
		}
		kept = append(kept, name)
	}
	if !removed {
		return fmt.Errorf("%q is not on the authorized list", args[0])
	}
	if err := st.SaveAuthorized(kept); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", args[0])
	return nil
}
