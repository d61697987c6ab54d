package domain

// EntryKind tells what created a ledger entry
type EntryKind string

const (
	EntryInitial       EntryKind = "initial"
	EntrySpin          EntryKind = "spin"
	EntryAdjustment    EntryKind = "adjustment"
	EntrySet           EntryKind = "set"
	EntrySimulatedSpin EntryKind = "simulated_spin"
)

// LedgerEntry is one point of balance history
type LedgerEntry struct {
	EventIndex   int64     `json:"event_index"`
	BalanceAfter int64     `json:"balance_after"`
	Kind         EntryKind `json:"kind"`
}

// BatchSummary is the result of a quick simulation run
type BatchSummary struct {
	Requested    int   `json:"requested"`
	SpinsRun     int   `json:"spins_run"`
	Wins         int   `json:"wins"`
	NetChange    int64 `json:"net_change"`
	StartBalance int64 `json:"start_balance"`
	FinalBalance int64 `json:"final_balance"`
}

// StoppedEarly reports whether the batch ran fewer spins than requested
func (b BatchSummary) StoppedEarly() bool {
	return b.SpinsRun < b.Requested
}
