package sse

import "github.com/osse101/OwoSlots_Go/internal/domain"

// SpinPayload is the SSE payload for a resolved spin.
// It is sent before the reveal starts; clients should hold it until the idle frame.
type SpinPayload struct {
	SpinID      string                 `json:"spin_id"`
	Combination domain.ReelCombination `json:"combination"`
	Wager       int64                  `json:"wager"`
	Prize       int64                  `json:"prize"`
	RuleName    string                 `json:"rule_name,omitempty"`
	Balance     int64                  `json:"balance"`
	EventIndex  int64                  `json:"event_index"`
}

// RevealFramePayload is the SSE payload for one reveal frame
type RevealFramePayload struct {
	SpinID  string                 `json:"spin_id"`
	Phase   string                 `json:"phase"`
	Reels   domain.ReelCombination `json:"reels"`
	Display string                 `json:"display"`
	Message string                 `json:"message,omitempty"`
}

// BatchPayload is the SSE payload for a finished quick simulation
type BatchPayload struct {
	Summary         domain.BatchSummary `json:"summary"`
	Message         string              `json:"message"`
	FirstEventIndex int64               `json:"first_event_index"`
}

// BalancePayload is the SSE payload for adjust and set
type BalancePayload struct {
	Source     string `json:"source"` // "adjust" or "set"
	Previous   int64  `json:"previous"`
	Balance    int64  `json:"balance"`
	EventIndex int64  `json:"event_index"`
	Message    string `json:"message"`
}
