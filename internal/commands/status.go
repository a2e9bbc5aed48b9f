package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

// StatusPrefix marks settlement-choice buttons; the rest of the
// customID is a settlement variant.
const StatusPrefix = "status:"

const (
	variantReturn = "return"
	variantDivide = "divide"
)

// HandleStatus reports the pool state. Without a surplus the grouped
// net amounts are the final word; with one, the choice between
// refunding contributors and splitting evenly is offered.
func HandleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service, thresholds ledger.Thresholds) {
	channelID := ParseChannelID(i.ChannelID)
	history, err := svc.GroupHistory(context.Background(), channelID)
	if err != nil {
		reportError(s, i, "status", err)
		return
	}

	rest := ledger.GroupNetBalance(history)
	switch thresholds.Classify(rest) {
	case ledger.Surplus:
		rows := []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Вернуть тем, кто положил",
					Style:    discordgo.PrimaryButton,
					CustomID: StatusPrefix + variantReturn,
				},
				discordgo.Button{
					Label:    "Распределить поровну",
					Style:    discordgo.PrimaryButton,
					CustomID: StatusPrefix + variantDivide,
				},
			}},
		}
		respondWithButtons(s, i, fmt.Sprintf("В котле осталось %.0f руб. Что сделать?", rest), rows)

	case ledger.Deficit:
		// A strongly negative pool means someone forgot to record a
		// top-up; the bot reports the raw figure and leaves the fix to
		// the humans.
		reply := fmt.Sprintf(
			"Внимание! Отрицательный баланс: %.0f руб. - кто-то не записал пополнение.\n\n", rest) +
			"В итоге имеем:\n" + FormatNetAmounts(ledger.GroupedNetAmounts(history))
		respondText(s, i, reply)

	default:
		respondText(s, i, "В итоге имеем:\n"+FormatNetAmounts(ledger.GroupedNetAmounts(history)))
	}
}

// HandleStatusVariant answers a settlement-choice button.
func HandleStatusVariant(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	ctx := context.Background()
	channelID := ParseChannelID(i.ChannelID)
	variant := strings.TrimPrefix(i.MessageComponentData().CustomID, StatusPrefix)

	history, err := svc.GroupHistory(ctx, channelID)
	if err != nil {
		reportError(s, i, "status", err)
		return
	}

	var (
		amounts []ledger.NetAmount
		header  string
	)
	if variant == variantDivide {
		names, err := svc.ListParticipants(ctx, channelID)
		if err != nil {
			reportError(s, i, "status", err)
			return
		}
		amounts, err = ledger.ProposeSettlement(history, len(names), ledger.SplitEven)
		if err != nil {
			// Zero participants with a surplus on record should not
			// happen; report instead of inventing a split.
			reportError(s, i, "status", err)
			return
		}
		header = "Разделив остаток поровну, получим:\n"
	} else {
		amounts, _ = ledger.ProposeSettlement(history, 0, ledger.Refund)
		header = "Вернув остаток вкладчикам, получим:\n"
	}

	respondText(s, i, header+FormatNetAmounts(amounts))
}
