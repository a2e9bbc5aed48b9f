package commands

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ParseChannelID converts a Discord channel ID to the ledger's group
// key. Channel IDs are decimal snowflakes.
func ParseChannelID(channelID string) int64 {
	id, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		slog.Warn("failed to parse channel ID", "channel_id", channelID, "error", err)
		return 0
	}
	return id
}

// ParseAmount parses a user-entered amount. A decimal comma is accepted
// ("99,50"); the result must be a finite positive number, the command
// applies the sign.
func ParseAmount(raw string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsInf(amount, 0) || math.IsNaN(amount) || amount <= 0 {
		return 0, fmt.Errorf("amount must be a positive number, got %q", raw)
	}
	return amount, nil
}

func optString(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, o := range opts {
		if o.Name == name {
			return o.StringValue()
		}
	}
	return ""
}
