// Package bot wires the Discord session to the ledger: slash command
// registration and interaction dispatch.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/svazhnov/kotelbot/internal/commands"
	"github.com/svazhnov/kotelbot/internal/config"
	"github.com/svazhnov/kotelbot/internal/ledger"
	"github.com/svazhnov/kotelbot/internal/metrics"
)

type Bot struct {
	session    *discordgo.Session
	svc        *ledger.Service
	thresholds ledger.Thresholds
}

func New(cfg *config.Config, svc *ledger.Service) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session: session,
		svc:     svc,
		thresholds: ledger.Thresholds{
			Surplus: cfg.SurplusThreshold,
			Deficit: cfg.DeficitThreshold,
		},
	}

	// Register event handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onGuildCreate)
	session.AddHandler(bot.onInteractionCreate)

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	slog.Info("discord bot is running")
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	slog.Info("connected to discord", "user", event.User.Username)

	for _, guild := range event.Guilds {
		if err := b.registerGuildCommands(guild.ID); err != nil {
			slog.Error("failed to register commands", "guild_id", guild.ID, "error", err)
		}
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, event *discordgo.GuildCreate) {
	slog.Info("guild available, ensuring commands", "guild", event.Name, "guild_id", event.ID)
	if err := b.registerGuildCommands(event.ID); err != nil {
		slog.Error("failed to register commands", "guild_id", event.ID, "error", err)
	}
}

func (b *Bot) registerGuildCommands(guildID string) error {
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, guildID, commands.Commands())
	return err
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		return
	}

	// Every command implicitly works against the channel's group, so
	// make sure it exists before routing. Already existing is fine.
	channelID := commands.ParseChannelID(i.ChannelID)
	if err := b.svc.EnsureGroup(context.Background(), channelID); err != nil {
		slog.Error("failed to ensure group", "channel_id", i.ChannelID, "error", err)
		return
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleApplicationCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleMessageComponent(s, i)
	}
}

func (b *Bot) handleApplicationCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	metrics.CommandsTotal.WithLabelValues(name).Inc()

	switch name {
	case "start":
		commands.HandleStart(s, i)
	case "help":
		commands.HandleHelp(s, i)
	case "add":
		commands.HandleAdd(s, i, b.svc)
	case "delete":
		commands.HandleDelete(s, i, b.svc)
	case "users":
		commands.HandleUsers(s, i, b.svc)
	case "pay":
		commands.HandlePay(s, i, b.svc)
	case "spend":
		commands.HandleSpend(s, i, b.svc)
	case "history":
		commands.HandleHistory(s, i, b.svc)
	case "status":
		commands.HandleStatus(s, i, b.svc, b.thresholds)
	case "reset":
		commands.HandleReset(s, i)
	}
}

func (b *Bot) handleMessageComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, commands.HistoryPrefix):
		commands.HandleHistorySelect(s, i, b.svc)
	case strings.HasPrefix(customID, commands.StatusPrefix):
		commands.HandleStatusVariant(s, i, b.svc)
	case customID == commands.ResetConfirmID:
		commands.HandleResetConfirm(s, i, b.svc)
	}
}
