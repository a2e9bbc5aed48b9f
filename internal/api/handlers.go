package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

type netAmountJSON struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type groupEntryJSON struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Comment string  `json:"comment"`
}

type entryJSON struct {
	Amount  float64 `json:"amount"`
	Comment string  `json:"comment"`
}

type statusJSON struct {
	NetBalance float64         `json:"net_balance"`
	State      string          `json:"state"`
	Amounts    []netAmountJSON `json:"amounts"`
	// Settlement proposals, present only in the surplus state.
	Refund    []netAmountJSON `json:"refund,omitempty"`
	SplitEven []netAmountJSON `json:"split_even,omitempty"`
}

func channelIDVar(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["channel_id"], 10, 64)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func toNetAmountJSON(amounts []ledger.NetAmount) []netAmountJSON {
	out := make([]netAmountJSON, 0, len(amounts))
	for _, na := range amounts {
		out = append(out, netAmountJSON{Name: na.Name, Amount: na.Amount})
	}
	return out
}

func (a *API) handleParticipants(w http.ResponseWriter, r *http.Request) {
	channelID, err := channelIDVar(r)
	if err != nil {
		http.Error(w, "invalid channel_id", http.StatusBadRequest)
		return
	}

	names, err := a.svc.ListParticipants(r.Context(), channelID)
	if err != nil {
		http.Error(w, "failed to list participants", http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}

	writeJSON(w, map[string]interface{}{"participants": names})
}

// handleHistory returns the channel's operation log; with ?name= it
// narrows to one participant.
func (a *API) handleHistory(w http.ResponseWriter, r *http.Request) {
	channelID, err := channelIDVar(r)
	if err != nil {
		http.Error(w, "invalid channel_id", http.StatusBadRequest)
		return
	}

	if name := r.URL.Query().Get("name"); name != "" {
		history, err := a.svc.ParticipantHistory(r.Context(), channelID, name)
		if errors.Is(err, ledger.ErrParticipantNotFound) {
			http.Error(w, "participant not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "failed to load history", http.StatusInternalServerError)
			return
		}

		entries := make([]entryJSON, 0, len(history))
		for _, e := range history {
			entries = append(entries, entryJSON{Amount: e.Amount, Comment: e.Comment})
		}
		writeJSON(w, map[string]interface{}{
			"history":     entries,
			"net_balance": ledger.NetBalance(history),
		})
		return
	}

	history, err := a.svc.GroupHistory(r.Context(), channelID)
	if err != nil {
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	entries := make([]groupEntryJSON, 0, len(history))
	for _, e := range history {
		entries = append(entries, groupEntryJSON{Name: e.Name, Amount: e.Amount, Comment: e.Comment})
	}
	writeJSON(w, map[string]interface{}{
		"history":     entries,
		"net_balance": ledger.GroupNetBalance(history),
	})
}

// handleStatus mirrors the bot's /status command: grouped net amounts
// plus both settlement proposals when the pool holds a surplus.
func (a *API) handleStatus(w http.ResponseWriter, r *http.Request) {
	channelID, err := channelIDVar(r)
	if err != nil {
		http.Error(w, "invalid channel_id", http.StatusBadRequest)
		return
	}

	history, err := a.svc.GroupHistory(r.Context(), channelID)
	if err != nil {
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	net := ledger.GroupNetBalance(history)
	state := a.thresholds.Classify(net)
	resp := statusJSON{
		NetBalance: net,
		State:      state.String(),
		Amounts:    toNetAmountJSON(ledger.GroupedNetAmounts(history)),
	}

	if state == ledger.Surplus {
		names, err := a.svc.ListParticipants(r.Context(), channelID)
		if err != nil {
			http.Error(w, "failed to list participants", http.StatusInternalServerError)
			return
		}
		refund, _ := ledger.ProposeSettlement(history, len(names), ledger.Refund)
		resp.Refund = toNetAmountJSON(refund)
		if split, err := ledger.ProposeSettlement(history, len(names), ledger.SplitEven); err == nil {
			resp.SplitEven = toNetAmountJSON(split)
		}
	}

	writeJSON(w, resp)
}
