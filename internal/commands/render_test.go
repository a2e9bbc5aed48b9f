package commands

import (
	"strings"
	"testing"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

func TestFormatNetAmounts(t *testing.T) {
	amounts := []ledger.NetAmount{
		{Name: "Alice", Amount: 100},
		{Name: "Bob", Amount: -50},
		{Name: "Carol", Amount: 0},
	}

	got := FormatNetAmounts(amounts)
	wantLines := []string{
		"- Alice  <--  100 руб.",
		"- Bob  -->  50 руб.",
		"- Carol в расчете",
	}
	if got != strings.Join(wantLines, "\n") {
		t.Errorf("FormatNetAmounts() =\n%s\nwant\n%s", got, strings.Join(wantLines, "\n"))
	}
}

func TestFormatGroupHistory(t *testing.T) {
	history := []ledger.GroupEntry{
		{Name: "Alice", Amount: 100, Comment: "взнос"},
		{Name: "Bob", Amount: -150, Comment: "шашлык"},
	}

	got := FormatGroupHistory(history)
	for _, want := range []string{"- Alice +100 'взнос'", "- Bob -150 'шашлык'", "Баланс: -50 руб."} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatGroupHistory() missing %q:\n%s", want, got)
		}
	}
}

func TestFormatParticipantHistory(t *testing.T) {
	history := []ledger.Entry{
		{Amount: 100, Comment: "взнос"},
		{Amount: -30, Comment: ""},
	}

	got := FormatParticipantHistory("Alice", history)
	for _, want := range []string{"Итак, Alice", "+100 'взнос'", "-30 ''", "Баланс: +70 руб."} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatParticipantHistory() missing %q:\n%s", want, got)
		}
	}
}

func TestFormatParticipantHistoryEmpty(t *testing.T) {
	got := FormatParticipantHistory("Alice", nil)
	if !strings.Contains(got, "Баланс: +0 руб.") {
		t.Errorf("empty history should report zero balance:\n%s", got)
	}
}
