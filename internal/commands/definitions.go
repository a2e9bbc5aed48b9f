package commands

import "github.com/bwmarrin/discordgo"

// Commands returns the slash commands registered for every guild.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         "start",
			Description:  "Рассказать, что умеет бот",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "help",
			Description:  "Показать список команд",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "add",
			Description:  "Добавить участника",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Имя участника",
					Required:    true,
				},
			},
		},
		{
			Name:         "delete",
			Description:  "Удалить участника (вместе с его историей!)",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Имя участника",
					Required:    true,
				},
			},
		},
		{
			Name:         "users",
			Description:  "Показать список участников",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "pay",
			Description:  "Записать оплату в котёл",
			DMPermission: boolPtr(false),
			Options:      operationOptions(),
		},
		{
			Name:         "spend",
			Description:  "Записать трату из котла",
			DMPermission: boolPtr(false),
			Options:      operationOptions(),
		},
		{
			Name:         "history",
			Description:  "Показать историю операций и баланс",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Имя участника (без имени — выбор кнопками)",
					Required:    false,
				},
			},
		},
		{
			Name:         "status",
			Description:  "Показать статус котла",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "reset",
			Description:  "Сбросить всю историю в чате (участники не удалятся)",
			DMPermission: boolPtr(false),
		},
	}
}

func operationOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: "Имя участника",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "amount",
			Description: "Сумма, например 150 или 99,50",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "comment",
			Description: "Комментарий",
			Required:    false,
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
