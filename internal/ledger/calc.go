package ledger

// Variant selects how ProposeSettlement distributes a pool surplus.
type Variant int

const (
	// Refund returns each participant exactly their net contribution.
	Refund Variant = iota
	// SplitEven divides the remaining pool evenly between all
	// participants and returns each net amount minus that share.
	SplitEven
)

// BalanceState classifies a group's pool balance against the configured
// thresholds.
type BalanceState int

const (
	// Settled: no meaningful surplus, grouped net amounts are final.
	Settled BalanceState = iota
	// Surplus: funds remain in the pool, a settlement choice applies.
	Surplus
	// Deficit: the pool went notably negative, which means an
	// unrecorded top-up or a data-entry mistake.
	Deficit
)

func (s BalanceState) String() string {
	switch s {
	case Surplus:
		return "surplus"
	case Deficit:
		return "deficit"
	default:
		return "settled"
	}
}

// Thresholds carries the product-defined boundaries for classifying a
// pool balance. Defaults are one currency unit either way.
type Thresholds struct {
	Surplus float64
	Deficit float64
}

// Classify maps a net pool balance to its state.
func (t Thresholds) Classify(net float64) BalanceState {
	switch {
	case net < t.Deficit:
		return Deficit
	case net < t.Surplus:
		return Settled
	default:
		return Surplus
	}
}

// NetBalance sums the amounts of a participant history.
func NetBalance(history []Entry) float64 {
	var total float64
	for _, e := range history {
		total += e.Amount
	}
	return total
}

// GroupNetBalance sums the amounts of a whole-group history.
func GroupNetBalance(history []GroupEntry) float64 {
	var total float64
	for _, e := range history {
		total += e.Amount
	}
	return total
}

// GroupedNetAmounts sums amounts per participant over a group history.
// Names appear in order of their first operation; amount totals do not
// depend on the input order.
func GroupedNetAmounts(history []GroupEntry) []NetAmount {
	index := make(map[string]int, len(history))
	grouped := make([]NetAmount, 0, len(history))
	for _, e := range history {
		i, ok := index[e.Name]
		if !ok {
			i = len(grouped)
			index[e.Name] = i
			grouped = append(grouped, NetAmount{Name: e.Name})
		}
		grouped[i].Amount += e.Amount
	}
	return grouped
}

// ProposeSettlement computes a per-participant payout mapping for the
// given history. Refund hands back the grouped net amounts unchanged;
// SplitEven subtracts an even share of the pool from each and needs a
// positive participant count.
func ProposeSettlement(history []GroupEntry, participantCount int, variant Variant) ([]NetAmount, error) {
	grouped := GroupedNetAmounts(history)
	if variant == Refund {
		return grouped, nil
	}

	if participantCount == 0 {
		return nil, ErrNoParticipants
	}
	share := GroupNetBalance(history) / float64(participantCount)
	for i := range grouped {
		grouped[i].Amount -= share
	}
	return grouped, nil
}
