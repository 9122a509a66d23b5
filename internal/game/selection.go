package game

// MaxSelectedCards caps how many cards a player may hold into a round.
const MaxSelectedCards = 2

type ToggleResult int

const (
	ToggleAdded ToggleResult = iota
	ToggleRemoved
	ToggleRejected
)

// SelectionLedger tracks the card ids chosen before joining a room,
// holding at most MaxSelectedCards.
type SelectionLedger struct {
	ids []int64
}

func NewSelectionLedger() *SelectionLedger {
	return &SelectionLedger{}
}

// Toggle removes id if present, otherwise adds it unless the ledger is
// at capacity, in which case the add is rejected and the ledger is
// left unchanged.
func (l *SelectionLedger) Toggle(id int64) ToggleResult {
	for i, held := range l.ids {
		if held == id {
			l.ids = append(l.ids[:i], l.ids[i+1:]...)
			return ToggleRemoved
		}
	}
	if len(l.ids) >= MaxSelectedCards {
		return ToggleRejected
	}
	l.ids = append(l.ids, id)
	return ToggleAdded
}

func (l *SelectionLedger) Contains(id int64) bool {
	for _, held := range l.ids {
		if held == id {
			return true
		}
	}
	return false
}

func (l *SelectionLedger) Len() int {
	return len(l.ids)
}

// IDs returns the selected card ids in selection order.
func (l *SelectionLedger) IDs() []int64 {
	out := make([]int64, len(l.ids))
	copy(out, l.ids)
	return out
}

func (l *SelectionLedger) Reset() {
	l.ids = nil
}
