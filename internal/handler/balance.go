package handler

import (
	"net/http"

	"github.com/osse101/OwoSlots_Go/internal/domain"
	"github.com/osse101/OwoSlots_Go/internal/ledger"
	"github.com/osse101/OwoSlots_Go/internal/slots"
)

// BalanceHandler handles balance and history requests
type BalanceHandler struct {
	ledger Ledger
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(l Ledger) *BalanceHandler {
	return &BalanceHandler{ledger: l}
}

// BalanceResponse is the current balance with the limits it is played under
type BalanceResponse struct {
	Balance int64         `json:"balance"`
	Limits  ledger.Limits `json:"limits"`
}

// HandleGetBalance returns the current balance
func (h *BalanceHandler) HandleGetBalance(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, BalanceResponse{
		Balance: h.ledger.Balance(),
		Limits:  h.ledger.Limits(),
	})
}

// AdjustRequest moves the balance by a signed delta
type AdjustRequest struct {
	Delta *int64 `json:"delta" validate:"required"`
}

// SetRequest overwrites the balance
type SetRequest struct {
	Amount *int64 `json:"amount" validate:"required"`
}

// BalanceChangeResponse confirms a manual balance change
type BalanceChangeResponse struct {
	Balance int64  `json:"balance"`
	Message string `json:"message"`
}

// HandleAdjustBalance applies a relative change, flooring the balance at zero
func (h *BalanceHandler) HandleAdjustBalance(w http.ResponseWriter, r *http.Request) {
	var req AdjustRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Adjust balance"); err != nil {
		return
	}

	balance, err := h.ledger.AdjustBalance(r.Context(), *req.Delta)
	if err != nil {
		respondServiceError(w, r, ErrMsgAdjustFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceChangeResponse{
		Balance: balance,
		Message: slots.FormatAdjustMessage(*req.Delta, balance),
	})
}

// HandleSetBalance overwrites the balance with a non-negative amount
func (h *BalanceHandler) HandleSetBalance(w http.ResponseWriter, r *http.Request) {
	var req SetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set balance"); err != nil {
		return
	}

	balance, err := h.ledger.SetBalance(r.Context(), *req.Amount)
	if err != nil {
		respondServiceError(w, r, ErrMsgSetFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, BalanceChangeResponse{
		Balance: balance,
		Message: slots.FormatSetMessage(balance),
	})
}

// HistoryResponse is the balance history, oldest first
type HistoryResponse struct {
	Total   int                  `json:"total"`
	Entries []domain.LedgerEntry `json:"entries"`
}

// HandleGetHistory returns the ledger entries. ?limit=N keeps only the newest N.
func (h *BalanceHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(r, w, QueryParamHistoryLimit, 0, ErrMsgInvalidLimit)
	if !ok {
		return
	}

	history := h.ledger.History()
	total := len(history)
	if limit > 0 && limit < total {
		history = history[total-limit:]
	}

	respondJSON(w, http.StatusOK, HistoryResponse{Total: total, Entries: history})
}
