package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/svazhnov/kotelbot/internal/ledger"
	"github.com/svazhnov/kotelbot/internal/metrics"
)

// HandlePay records a payment into the pool (positive amount).
func HandlePay(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	recordOperation(s, i, svc, "pay", +1)
}

// HandleSpend records spending from the pool. The sign convention is
// applied here: the ledger receives a negated amount.
func HandleSpend(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	recordOperation(s, i, svc, "spend", -1)
}

func recordOperation(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service, command string, sign float64) {
	opts := i.ApplicationCommandData().Options
	name := strings.TrimSpace(optString(opts, "name"))
	comment := strings.TrimSpace(optString(opts, "comment"))

	amount, err := ParseAmount(optString(opts, "amount"))
	if err != nil {
		respondText(s, i, "Что-то не то: сумма должна быть положительным числом, например 150 или 99,50")
		return
	}
	amount *= sign

	channelID := ParseChannelID(i.ChannelID)
	err = svc.RecordOperation(context.Background(), channelID, name, amount, comment)
	switch {
	case errors.Is(err, ledger.ErrParticipantNotFound):
		respondText(s, i, fmt.Sprintf("Ошибка: %s отсутствует в списке", name))
		return
	case err != nil:
		reportError(s, i, command, err)
		return
	}

	metrics.OperationsRecorded.Inc()
	reply := fmt.Sprintf("Записано: %s %+.0f руб.", name, amount)
	if comment != "" {
		reply += fmt.Sprintf(" '%s'", comment)
	}
	respondText(s, i, reply)
}
