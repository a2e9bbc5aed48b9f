package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

// HistoryPrefix marks history-picker buttons; the rest of the customID
// is the participant name or chatToken for the whole chat.
const HistoryPrefix = "hist:"

// chatToken stands in for "the whole chat" on picker buttons, so it can
// never collide with a participant name option.
const chatToken = "__chat__"

// HandleHistory shows one participant's history when a name is given,
// otherwise offers a picker with the whole chat and every participant.
func HandleHistory(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	channelID := ParseChannelID(i.ChannelID)
	name := strings.TrimSpace(optString(i.ApplicationCommandData().Options, "name"))
	if name != "" {
		sendParticipantHistory(s, i, svc, channelID, name)
		return
	}

	names, err := svc.ListParticipants(context.Background(), channelID)
	if err != nil {
		reportError(s, i, "history", err)
		return
	}

	rows := nameButtonRows(HistoryPrefix, names, discordgo.Button{
		Label:    "Все",
		Style:    discordgo.PrimaryButton,
		CustomID: HistoryPrefix + chatToken,
	})
	respondWithButtons(s, i, "По кому показать историю?", rows)
}

// HandleHistorySelect answers a history-picker button.
func HandleHistorySelect(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	channelID := ParseChannelID(i.ChannelID)
	name := strings.TrimPrefix(i.MessageComponentData().CustomID, HistoryPrefix)

	if name == chatToken {
		history, err := svc.GroupHistory(context.Background(), channelID)
		if err != nil {
			reportError(s, i, "history", err)
			return
		}
		respondText(s, i, FormatGroupHistory(history))
		return
	}

	sendParticipantHistory(s, i, svc, channelID, name)
}

func sendParticipantHistory(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service, channelID int64, name string) {
	history, err := svc.ParticipantHistory(context.Background(), channelID, name)
	switch {
	case errors.Is(err, ledger.ErrParticipantNotFound):
		respondText(s, i, fmt.Sprintf("Ошибка: %s отсутствует в списке", name))
	case err != nil:
		reportError(s, i, "history", err)
	default:
		respondText(s, i, FormatParticipantHistory(name, history))
	}
}
