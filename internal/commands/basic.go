package commands

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/svazhnov/kotelbot/internal/metrics"
)

func HandleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondText(s, i,
		"Привет! Я Котелбот - бот для контроля трат в компании.\n"+
			"Добавьте участников мероприятия, потом сообщайте, "+
			"кто сколько дал (/pay) и взял (/spend), а я подведу итог.\n"+
			"Наберите /help для вывода списка команд")
}

func HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondText(s, i,
		"Вот что я умею:\n"+
			"/add Имя - добавить участника\n"+
			"/delete Имя - удалить участника (вместе с его историей!)\n"+
			"/reset - удалить всю историю в чате (участники не удалятся)\n"+
			"/users - получить список текущих участников\n"+
			"/pay Имя Сумма [Комментарий] - записать оплату\n"+
			"/spend Имя Сумма [Комментарий] - записать трату\n"+
			"/history [Имя] - показать историю операций и баланс\n"+
			"/status - показать статус")
}

// reportError hides infrastructure failures behind a generic reply.
// Domain rejections (duplicate name and such) never come through here.
func reportError(s *discordgo.Session, i *discordgo.InteractionCreate, command string, err error) {
	metrics.CommandErrors.WithLabelValues(command).Inc()
	slog.Error("command failed", "command", command, "channel_id", i.ChannelID, "error", err)
	respondText(s, i, "Что-то пошло не так, попробуйте позже")
}
