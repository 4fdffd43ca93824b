package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/auth"
	"github.com/shiftclock/shiftclock/internal/config"
	"github.com/shiftclock/shiftclock/internal/model"
	"github.com/shiftclock/shiftclock/internal/store"
)

var (
	cfg     config.Config
	verbose bool

	managerPassword string
)

var rootCmd = &cobra.Command{
	Use:   "shiftclock",
	Short: "shiftclock – a file-based shift tracker",
	Long: `shiftclock records clock-in/clock-out events for a small team.
Workers punch in and out by name; a manager reviews, corrects and
summarizes the ledger and can ask an AI assistant about it. All data
lives in two CSV files under ~/.shiftclock/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		setupLogger()
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&managerPassword, "password", "", "Manager password (required by manager commands)")

	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(correctCmd)
	rootCmd.AddCommand(punchCmd)
	rootCmd.AddCommand(workersCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(askCmd)
}

func setupLogger() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// openStore returns the store rooted at the configured data directory.
func openStore() (*store.Store, error) {
	dir := cfg.DataDir
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return store.New(dir), nil
}

func appClock() model.Clock {
	return model.NewClock(cfg.ClockOffsetHours)
}

// workerLogin authenticates a worker name against the whitelist.
func workerLogin(st *store.Store, name string) (auth.Session, error) {
	whitelist, err := st.LoadAuthorized()
	if err != nil {
		return auth.Session{}, err
	}
	sess, err := auth.AuthenticateWorker(name, whitelist)
	if err != nil {
		return auth.Session{}, err
	}
	log.Debug().Str("session", sess.ID.String()).Str("worker", sess.Worker).Msg("worker authenticated")
	return sess, nil
}

// managerLogin authenticates the --password flag against the
// configured secret.
func managerLogin() (auth.Session, error) {
	sess, err := auth.AuthenticateManager(managerPassword, cfg.ManagerPassword)
	if err != nil {
		return auth.Session{}, err
	}
	log.Debug().Str("session", sess.ID.String()).Msg("manager authenticated")
	return sess, nil
}
