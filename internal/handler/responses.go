package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/OwoSlots_Go/internal/domain"
	"github.com/osse101/OwoSlots_Go/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// encodeJSON renders payload into a pooled buffer. The caller must release it with putBuffer.
func encodeJSON(payload interface{}) (*bytes.Buffer, error) {
	buf := bufferPool.Get().(*bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		putBuffer(buf)
		return nil, err
	}
	return buf, nil
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf, err := encodeJSON(payload)
	if err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer putBuffer(buf)

	respondRaw(w, status, buf.Bytes())
}

// renderJSON encodes payload into a standalone body suitable for caching
func renderJSON(payload interface{}) []byte {
	buf, err := encodeJSON(payload)
	if err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		return []byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n")
	}
	defer putBuffer(buf)
	return bytes.Clone(buf.Bytes())
}

// respondRaw writes an already encoded JSON body
func respondRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and answers with the mapped status and user message
func respondServiceError(w http.ResponseWriter, r *http.Request, opMsg string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(opMsg, "error", err)
	} else {
		log.Warn(opMsg, "error", err)
	}
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgRequestCancelled     = "Request was cancelled before it finished"
	ErrMsgInvalidWagerError    = "Wager must be a positive whole number"
	ErrMsgWagerOutOfRangeError = "Wager is outside the allowed range"
	ErrMsgNotEnoughCowoncy     = "Not enough cowoncy for that wager"
	ErrMsgInvalidAmountError   = "Amount must be 0 or greater and fit in the balance"
	ErrMsgInvalidCountError    = "Simulation count is outside the allowed range"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Wrapped errors are matched with errors.Is, so joined causes are found too.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidWager):
		return http.StatusBadRequest, ErrMsgInvalidWagerError
	case errors.Is(err, domain.ErrWagerOutOfRange):
		return http.StatusBadRequest, ErrMsgWagerOutOfRangeError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCowoncy
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidCount):
		return http.StatusBadRequest, ErrMsgInvalidCountError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgRequestCancelled
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
