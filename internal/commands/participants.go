package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

func HandleAdd(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	name := strings.TrimSpace(optString(i.ApplicationCommandData().Options, "name"))
	if name == "" {
		respondText(s, i, "Что-то не то: нужно писать '/add Имя'")
		return
	}

	channelID := ParseChannelID(i.ChannelID)
	err := svc.AddParticipant(context.Background(), channelID, name)
	switch {
	case errors.Is(err, ledger.ErrParticipantExists):
		respondText(s, i, fmt.Sprintf("Ошибка: %s уже есть - двоих взять не можем :(", name))
	case err != nil:
		reportError(s, i, "add", err)
	default:
		respondText(s, i, fmt.Sprintf("Готово: %s теперь с нами!", name))
	}
}

func HandleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	name := strings.TrimSpace(optString(i.ApplicationCommandData().Options, "name"))
	if name == "" {
		respondText(s, i, "Что-то не то - нужно писать '/delete Имя'")
		return
	}

	channelID := ParseChannelID(i.ChannelID)
	err := svc.RemoveParticipant(context.Background(), channelID, name)
	switch {
	case errors.Is(err, ledger.ErrParticipantNotFound):
		respondText(s, i, fmt.Sprintf("Ошибка: %s отсутствует в списке", name))
	case err != nil:
		reportError(s, i, "delete", err)
	default:
		respondText(s, i, fmt.Sprintf("Готово: %s больше не с нами", name))
	}
}

func HandleUsers(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	channelID := ParseChannelID(i.ChannelID)
	names, err := svc.ListParticipants(context.Background(), channelID)
	if err != nil {
		reportError(s, i, "users", err)
		return
	}

	list := "никого нет"
	if len(names) > 0 {
		list = strings.Join(names, ", ")
	}
	respondText(s, i, fmt.Sprintf("У нас здесь: %s", list))
}
