package commands

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

// ResetConfirmID is the customID of the reset confirmation button.
const ResetConfirmID = "reset:confirm"

// HandleReset asks for confirmation before wiping the chat's history.
func HandleReset(s *discordgo.Session, i *discordgo.InteractionCreate) {
	rows := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Подтверждаю",
				Style:    discordgo.DangerButton,
				CustomID: ResetConfirmID,
			},
		}},
	}
	respondWithButtons(s, i,
		"Нажмите кнопку, если точно хотите все сбросить. "+
			"История операций удалится, участники останутся.", rows)
}

// HandleResetConfirm wipes every operation in the chat. Participants
// survive; resetting an already empty chat succeeds the same way.
func HandleResetConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	channelID := ParseChannelID(i.ChannelID)
	if err := svc.ResetGroup(context.Background(), channelID); err != nil {
		reportError(s, i, "reset", err)
		return
	}
	respondText(s, i, "Ба-бах... сброшено")
}
