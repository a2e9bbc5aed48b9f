package commands

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

func respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		slog.Error("failed to respond to interaction", "error", err)
	}
}

func respondWithButtons(s *discordgo.Session, i *discordgo.InteractionCreate, content string, rows []discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: rows,
		},
	})
	if err != nil {
		slog.Error("failed to respond to interaction", "error", err)
	}
}

// nameButtonRows lays participant names out as button rows, customID
// prefix:name. Discord caps components at five rows of five; names past
// that are dropped, the name option on the command still covers them.
func nameButtonRows(prefix string, names []string, leading ...discordgo.MessageComponent) []discordgo.MessageComponent {
	const perRow = 4
	const maxRows = 5

	var rows []discordgo.MessageComponent
	if len(leading) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: leading})
	}

	var row []discordgo.MessageComponent
	for _, name := range names {
		row = append(row, discordgo.Button{
			Label:    name,
			Style:    discordgo.SecondaryButton,
			CustomID: prefix + name,
		})
		if len(row) == perRow {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
			if len(rows) == maxRows {
				return rows
			}
		}
	}
	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}
	return rows
}
