package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/osse101/OwoSlots_Go/internal/domain"
	"github.com/osse101/OwoSlots_Go/internal/ledger"
	"github.com/osse101/OwoSlots_Go/internal/logger"
	"github.com/osse101/OwoSlots_Go/internal/slots"
)

// Ledger is the session ledger behind the HTTP API. *ledger.Ledger satisfies it.
type Ledger interface {
	Balance() int64
	Limits() ledger.Limits
	History() []domain.LedgerEntry
	ApplyBet(ctx context.Context, wager int64) (domain.SpinOutcome, error)
	AdjustBalance(ctx context.Context, delta int64) (int64, error)
	SetBalance(ctx context.Context, amount int64) (int64, error)
	RunBatch(ctx context.Context, wager int64, count int) (domain.BatchSummary, error)
	ClampWager(wager int64) (int64, error)
	AllInWager() int64
	PresetWager(amount int64) int64
}

// Machine describes the paytable in play. *slots.Engine satisfies it.
type Machine interface {
	Paytable() slots.Paytable
	Odds() []slots.TierOdds
	ExpectedReturn() decimal.Decimal
	LossProbability() decimal.Decimal
}

// SlotsHandler handles spin, simulation and wager requests
type SlotsHandler struct {
	ledger      Ledger
	machine     Machine
	idempotency *IdempotencyCache
}

// NewSlotsHandler creates a new slots handler. idempotency may be nil to disable replay.
func NewSlotsHandler(l Ledger, machine Machine, idempotency *IdempotencyCache) *SlotsHandler {
	return &SlotsHandler{
		ledger:      l,
		machine:     machine,
		idempotency: idempotency,
	}
}

// SpinRequest represents a request to spin the reels
type SpinRequest struct {
	Wager *int64 `json:"wager" validate:"required"`
}

// SpinResponse is the applied outcome of one spin
type SpinResponse struct {
	SpinID  string                 `json:"spin_id"`
	Reels   domain.ReelCombination `json:"reels"`
	Display string                 `json:"display"`
	Wager   int64                  `json:"wager"`
	Prize   int64                  `json:"prize"`
	Net     int64                  `json:"net"`
	Rule    string                 `json:"rule,omitempty"`
	Win     bool                   `json:"win"`
	Message string                 `json:"message"`
	Balance int64                  `json:"balance"`
}

// HandleSpin applies one wager. A repeated Idempotency-Key replays the first
// successful response instead of spinning again.
func (h *SlotsHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	key := r.Header.Get(HeaderIdempotencyKey)
	if key == "" || h.idempotency == nil {
		status, body := h.spin(r, *req.Wager)
		respondRaw(w, status, body)
		return
	}
	if len(key) > MaxIdempotencyKeyLength {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIdempotencyKey)
		return
	}

	status, body, replayed := h.idempotency.Do(key, func() (int, []byte) {
		return h.spin(r, *req.Wager)
	})
	if replayed {
		logger.FromContext(r.Context()).Info(LogMsgIdempotentReplay, "key", key)
		w.Header().Set(HeaderIdempotentReplay, "true")
	}
	respondRaw(w, status, body)
}

func (h *SlotsHandler) spin(r *http.Request, wager int64) (int, []byte) {
	outcome, err := h.ledger.ApplyBet(r.Context(), wager)
	if err != nil {
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		logger.FromContext(r.Context()).Warn(ErrMsgSpinFailed, "wager", wager, "error", err)
		return statusCode, renderJSON(ErrorResponse{Error: userMsg})
	}

	return http.StatusOK, renderJSON(SpinResponse{
		SpinID:  outcome.SpinID,
		Reels:   outcome.Combination,
		Display: outcome.Combination.Display(),
		Wager:   outcome.Wager,
		Prize:   outcome.Prize,
		Net:     outcome.NetChange(),
		Rule:    outcome.RuleName(),
		Win:     outcome.IsWin(),
		Message: slots.FormatSpinMessage(outcome),
		Balance: outcome.BalanceAfter,
	})
}

// SimulateRequest represents a quick simulation of count spins
type SimulateRequest struct {
	Wager *int64 `json:"wager" validate:"required"`
	Count *int   `json:"count" validate:"required"`
}

// SimulateResponse summarizes a quick simulation
type SimulateResponse struct {
	Summary      domain.BatchSummary `json:"summary"`
	StoppedEarly bool                `json:"stopped_early"`
	Message      string              `json:"message"`
	Balance      int64               `json:"balance"`
}

// HandleSimulate runs a quick simulation against the live balance
func (h *SlotsHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Simulate"); err != nil {
		return
	}
	LogRequestFields(logger.FromContext(r.Context()), "wager", *req.Wager, "count", *req.Count)

	summary, err := h.ledger.RunBatch(r.Context(), *req.Wager, *req.Count)
	if err != nil {
		respondServiceError(w, r, ErrMsgSimulateFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SimulateResponse{
		Summary:      summary,
		StoppedEarly: summary.StoppedEarly(),
		Message:      slots.FormatBatchMessage(summary),
		Balance:      summary.FinalBalance,
	})
}

// ClampRequest asks where a wager would land inside the limits
type ClampRequest struct {
	Wager *int64 `json:"wager" validate:"required"`
}

// ClampResponse carries the usable wager and, when it moved, why
type ClampResponse struct {
	Requested int64  `json:"requested"`
	Wager     int64  `json:"wager"`
	Clamped   bool   `json:"clamped"`
	Message   string `json:"message,omitempty"`
}

// HandleClampWager moves a typed wager into [min,max] the way the bet input does
func (h *SlotsHandler) HandleClampWager(w http.ResponseWriter, r *http.Request) {
	var req ClampRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Clamp wager"); err != nil {
		return
	}

	resp := ClampResponse{Requested: *req.Wager}
	clamped, err := h.ledger.ClampWager(*req.Wager)
	resp.Wager = clamped
	if err != nil {
		limits := h.ledger.Limits()
		resp.Clamped = true
		resp.Message = slots.FormatClampMessage(*req.Wager, limits.MinWager, limits.MaxWager)
	}

	respondJSON(w, http.StatusOK, resp)
}

// QuickBet is one preset wager button
type QuickBet struct {
	Label string `json:"label"`
	Wager int64  `json:"wager"`
}

// PresetsResponse lists the quick bet buttons for the current balance
type PresetsResponse struct {
	Presets []QuickBet `json:"presets"`
}

// HandleGetPresets returns the preset wagers followed by "all in"
func (h *SlotsHandler) HandleGetPresets(w http.ResponseWriter, r *http.Request) {
	presets := make([]QuickBet, 0, len(ledger.QuickBetPresets)+1)
	for _, amount := range ledger.QuickBetPresets {
		presets = append(presets, QuickBet{
			Label: slots.FormatAmount(amount),
			Wager: h.ledger.PresetWager(amount),
		})
	}
	presets = append(presets, QuickBet{Label: MsgAllInLabel, Wager: h.ledger.AllInWager()})

	respondJSON(w, http.StatusOK, PresetsResponse{Presets: presets})
}

// RuleView is one paying combination as shown on the paytable
type RuleView struct {
	Name       string                 `json:"name"`
	Reels      domain.ReelCombination `json:"reels"`
	Display    string                 `json:"display"`
	Multiplier int64                  `json:"multiplier"`
}

// PaytableResponse is the paytable with its theoretical return
type PaytableResponse struct {
	Rules           []RuleView       `json:"rules"`
	Odds            []slots.TierOdds `json:"odds"`
	ExpectedReturn  decimal.Decimal  `json:"expected_return"`
	LossProbability decimal.Decimal  `json:"loss_probability"`
}

// HandleGetPaytable returns the rules, tier odds and expected return
func (h *SlotsHandler) HandleGetPaytable(w http.ResponseWriter, r *http.Request) {
	table := h.machine.Paytable()
	rules := make([]RuleView, 0, len(table))
	for _, rule := range table {
		rules = append(rules, RuleView{
			Name:       rule.Name,
			Reels:      rule.Combination,
			Display:    rule.Display,
			Multiplier: rule.Multiplier,
		})
	}

	respondJSON(w, http.StatusOK, PaytableResponse{
		Rules:           rules,
		Odds:            h.machine.Odds(),
		ExpectedReturn:  h.machine.ExpectedReturn(),
		LossProbability: h.machine.LossProbability(),
	})
}
