package assistant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiftclock/shiftclock/internal/assistant"
)

func TestBuildPrompt(t *testing.T) {
	csv := "worker_name,clock_in,clock_out,total_hours\nDana,2024-01-01 09:00,2024-01-01 17:30,8.50\n"
	got := assistant.BuildPrompt(csv, "Who worked the most hours?")
	want := "Attendance data:\n" + csv + "\nQuestion: Who worked the most hours?"
	assert.Equal(t, want, got)
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := assistant.New(context.Background(), "", "gemini-2.5-flash")
	assert.ErrorIs(t, err, assistant.ErrService)
}
