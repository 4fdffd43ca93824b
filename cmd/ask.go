package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/shiftclock/shiftclock/internal/assistant"
	"github.com/shiftclock/shiftclock/internal/store"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI assistant about the ledger",
	Long: `Sends the full attendance ledger together with the question to the
configured Gemini model and prints the reply. Requires
SHIFTCLOCK_GEMINI_API_KEY to be set. Manager only.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
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

	ctx := cmd.Context()
	client, err := assistant.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")
	log.Debug().Int("ledger_bytes", len(data)).Msg("sending question to assistant")

	answer, err := client.Ask(ctx, string(data), question)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}
