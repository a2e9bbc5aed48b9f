package commands

import (
	"fmt"
	"strings"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

// FormatNetAmounts renders per-participant net amounts the way the bot
// reports a final status: arrows show money flowing back to (<--) or
// owed by (-->) each participant.
func FormatNetAmounts(amounts []ledger.NetAmount) string {
	var b strings.Builder
	for _, na := range amounts {
		switch {
		case na.Amount > 0:
			fmt.Fprintf(&b, "- %s  <--  %.0f руб.\n", na.Name, na.Amount)
		case na.Amount < 0:
			fmt.Fprintf(&b, "- %s  -->  %.0f руб.\n", na.Name, -na.Amount)
		default:
			fmt.Fprintf(&b, "- %s в расчете\n", na.Name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatGroupHistory renders the whole chat's operation log with the
// pool balance at the bottom.
func FormatGroupHistory(history []ledger.GroupEntry) string {
	var b strings.Builder
	for _, e := range history {
		fmt.Fprintf(&b, "- %s %+.0f '%s'\n", e.Name, e.Amount, e.Comment)
	}
	fmt.Fprintf(&b, "\nБаланс: %+.0f руб.", ledger.GroupNetBalance(history))
	return b.String()
}

// FormatParticipantHistory renders one participant's operation log with
// their net balance at the bottom.
func FormatParticipantHistory(name string, history []ledger.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Итак, %s\n", name)
	for _, e := range history {
		fmt.Fprintf(&b, "%+.0f '%s'\n", e.Amount, e.Comment)
	}
	fmt.Fprintf(&b, "\nБаланс: %+.0f руб.", ledger.NetBalance(history))
	return b.String()
}
