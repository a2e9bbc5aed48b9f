package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/svazhnov/kotelbot/internal/ledger"
)

// stubGateway serves canned ledger data for one channel.
type stubGateway struct {
	channelID int64
	names     []string
	history   []ledger.GroupEntry
}

func (g *stubGateway) CreateGroup(context.Context, int64) error { return nil }

func (g *stubGateway) InsertParticipant(context.Context, int64, string) error { return nil }

func (g *stubGateway) FindParticipant(_ context.Context, channelID int64, name string) (uuid.UUID, bool, error) {
	for _, n := range g.names {
		if channelID == g.channelID && n == name {
			return uuid.New(), true, nil
		}
	}
	return uuid.Nil, false, nil
}

func (g *stubGateway) DeleteParticipant(context.Context, uuid.UUID) error { return nil }

func (g *stubGateway) DeleteGroupOperations(context.Context, int64) error { return nil }

func (g *stubGateway) InsertOperation(context.Context, uuid.UUID, float64, string) error { return nil }

func (g *stubGateway) ListParticipantNames(_ context.Context, channelID int64) ([]string, error) {
	if channelID != g.channelID {
		return nil, nil
	}
	return g.names, nil
}

func (g *stubGateway) ListParticipantOperations(context.Context, uuid.UUID) ([]ledger.Entry, error) {
	return nil, nil
}

func (g *stubGateway) ListGroupOperations(_ context.Context, channelID int64) ([]ledger.GroupEntry, error) {
	if channelID != g.channelID {
		return nil, nil
	}
	return g.history, nil
}

func newTestAPI() *API {
	gw := &stubGateway{
		channelID: 42,
		names:     []string{"Alice", "Bob"},
		history: []ledger.GroupEntry{
			{Name: "Alice", Amount: 100, Comment: "взнос"},
			{Name: "Bob", Amount: 100},
			{Name: "Bob", Amount: -150, Comment: "шашлык"},
		},
	}
	return &API{
		svc:        ledger.NewService(gw),
		thresholds: ledger.Thresholds{Surplus: 1, Deficit: -1},
	}
}

func TestHandleParticipants(t *testing.T) {
	api := newTestAPI()

	req := httptest.NewRequest("GET", "/api/channels/42/participants", nil)
	req = mux.SetURLVars(req, map[string]string{"channel_id": "42"})
	w := httptest.NewRecorder()

	api.handleParticipants(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Participants []string `json:"participants"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Participants) != 2 || body.Participants[0] != "Alice" {
		t.Errorf("participants = %v", body.Participants)
	}
}

func TestHandleParticipantsBadChannelID(t *testing.T) {
	api := newTestAPI()

	req := httptest.NewRequest("GET", "/api/channels/abc/participants", nil)
	req = mux.SetURLVars(req, map[string]string{"channel_id": "abc"})
	w := httptest.NewRecorder()

	api.handleParticipants(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleStatusSurplus(t *testing.T) {
	api := newTestAPI()

	req := httptest.NewRequest("GET", "/api/channels/42/status", nil)
	req = mux.SetURLVars(req, map[string]string{"channel_id": "42"})
	w := httptest.NewRecorder()

	api.handleStatus(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body statusJSON
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	// Pool holds +50, so both settlement proposals come along.
	if body.NetBalance != 50 {
		t.Errorf("net_balance = %v, want 50", body.NetBalance)
	}
	if body.State != "surplus" {
		t.Errorf("state = %q, want surplus", body.State)
	}
	if len(body.Refund) != 2 || body.Refund[0].Amount != 100 || body.Refund[1].Amount != -50 {
		t.Errorf("refund = %v", body.Refund)
	}
	if len(body.SplitEven) != 2 || body.SplitEven[0].Amount != 75 || body.SplitEven[1].Amount != -75 {
		t.Errorf("split_even = %v", body.SplitEven)
	}
}

func TestHandleHistoryUnknownParticipant(t *testing.T) {
	api := newTestAPI()

	req := httptest.NewRequest("GET", "/api/channels/42/history?name=Nobody", nil)
	req = mux.SetURLVars(req, map[string]string{"channel_id": "42"})
	w := httptest.NewRecorder()

	api.handleHistory(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	api := newTestAPI()
	api.jwtSecret = []byte("test-secret")

	handler := api.authMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without a token")
	}))

	req := httptest.NewRequest("GET", "/api/channels/42/participants", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
