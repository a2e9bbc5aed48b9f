package ledger

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestNetBalance(t *testing.T) {
	tests := []struct {
		name    string
		history []Entry
		want    float64
	}{
		{
			name:    "empty history is zero",
			history: nil,
			want:    0,
		},
		{
			name:    "single payment",
			history: []Entry{{Amount: 100}},
			want:    100,
		},
		{
			name:    "payments and spends cancel out",
			history: []Entry{{Amount: 100}, {Amount: -150}, {Amount: 50}},
			want:    0,
		},
		{
			name:    "fractional amounts",
			history: []Entry{{Amount: 99.5}, {Amount: -0.5}},
			want:    99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NetBalance(tt.history); math.Abs(got-tt.want) > eps {
				t.Errorf("NetBalance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGroupedNetAmounts(t *testing.T) {
	history := []GroupEntry{
		{Name: "Alice", Amount: 100, Comment: "взнос"},
		{Name: "Bob", Amount: 100},
		{Name: "Bob", Amount: -150, Comment: "шашлык"},
	}

	got := GroupedNetAmounts(history)
	want := []NetAmount{{Name: "Alice", Amount: 100}, {Name: "Bob", Amount: -50}}
	assertNetAmounts(t, got, want)
}

func TestGroupedNetAmountsEmpty(t *testing.T) {
	if got := GroupedNetAmounts(nil); len(got) != 0 {
		t.Errorf("GroupedNetAmounts(nil) = %v, want empty", got)
	}
}

func TestGroupedNetAmountsOrderIndependentTotals(t *testing.T) {
	history := []GroupEntry{
		{Name: "Alice", Amount: 100},
		{Name: "Bob", Amount: 100},
		{Name: "Bob", Amount: -150},
		{Name: "Carol", Amount: 30},
	}
	permuted := []GroupEntry{
		{Name: "Carol", Amount: 30},
		{Name: "Bob", Amount: -150},
		{Name: "Alice", Amount: 100},
		{Name: "Bob", Amount: 100},
	}

	totals := func(amounts []NetAmount) map[string]float64 {
		m := make(map[string]float64, len(amounts))
		for _, na := range amounts {
			m[na.Name] = na.Amount
		}
		return m
	}

	a, b := totals(GroupedNetAmounts(history)), totals(GroupedNetAmounts(permuted))
	if len(a) != len(b) {
		t.Fatalf("different key sets: %v vs %v", a, b)
	}
	for name, amount := range a {
		if math.Abs(amount-b[name]) > eps {
			t.Errorf("total for %s differs: %v vs %v", name, amount, b[name])
		}
	}
}

func TestGroupedNetAmountsFirstAppearanceOrder(t *testing.T) {
	history := []GroupEntry{
		{Name: "Bob", Amount: 10},
		{Name: "Alice", Amount: 20},
		{Name: "Bob", Amount: 5},
	}

	got := GroupedNetAmounts(history)
	if len(got) != 2 || got[0].Name != "Bob" || got[1].Name != "Alice" {
		t.Errorf("expected first-appearance order [Bob Alice], got %v", got)
	}
}

func TestProposeSettlementRefund(t *testing.T) {
	history := []GroupEntry{
		{Name: "Alice", Amount: 100},
		{Name: "Bob", Amount: 100},
		{Name: "Bob", Amount: -150},
	}

	// Refund hands back grouped net amounts, whatever the count.
	for _, count := range []int{0, 1, 2, 10} {
		got, err := ProposeSettlement(history, count, Refund)
		if err != nil {
			t.Fatalf("ProposeSettlement(Refund, %d) error: %v", count, err)
		}
		assertNetAmounts(t, got, GroupedNetAmounts(history))
	}
}

func TestProposeSettlementSplitEven(t *testing.T) {
	// Alice +100; Bob +100, -150. Pool holds 50, share is 25.
	history := []GroupEntry{
		{Name: "Alice", Amount: 100},
		{Name: "Bob", Amount: 100},
		{Name: "Bob", Amount: -150},
	}

	got, err := ProposeSettlement(history, 2, SplitEven)
	if err != nil {
		t.Fatalf("ProposeSettlement(SplitEven) error: %v", err)
	}
	assertNetAmounts(t, got, []NetAmount{{Name: "Alice", Amount: 75}, {Name: "Bob", Amount: -75}})

	// The redistributed amounts sum to the original total minus n shares.
	share := GroupNetBalance(history) / 2
	var sum float64
	for _, na := range got {
		sum += na.Amount
	}
	want := GroupNetBalance(history) - 2*share
	if math.Abs(sum-want) > eps {
		t.Errorf("redistributed sum = %v, want %v", sum, want)
	}
}

func TestProposeSettlementSplitEvenZeroParticipants(t *testing.T) {
	history := []GroupEntry{{Name: "Alice", Amount: 100}}

	_, err := ProposeSettlement(history, 0, SplitEven)
	if !errors.Is(err, ErrNoParticipants) {
		t.Errorf("expected ErrNoParticipants, got %v", err)
	}
}

func TestThresholdsClassify(t *testing.T) {
	thresholds := Thresholds{Surplus: 1, Deficit: -1}

	tests := []struct {
		net  float64
		want BalanceState
	}{
		{net: 0, want: Settled},
		{net: 0.99, want: Settled},
		{net: 1, want: Surplus},
		{net: 50, want: Surplus},
		{net: -1, want: Settled},
		{net: -1.01, want: Deficit},
		{net: -200, want: Deficit},
	}

	for _, tt := range tests {
		if got := thresholds.Classify(tt.net); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.net, got, tt.want)
		}
	}
}

func assertNetAmounts(t *testing.T, got, want []NetAmount) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d amounts, want %d: %v vs %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("amount %d name = %s, want %s", i, got[i].Name, want[i].Name)
		}
		if math.Abs(got[i].Amount-want[i].Amount) > eps {
			t.Errorf("amount for %s = %v, want %v", want[i].Name, got[i].Amount, want[i].Amount)
		}
	}
}
