package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/BrandishRPG_Go/internal/cooldown"
	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    any `json:"data"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to an HTTP response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"

	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgCharacterExistsError   = "Character already exists"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgItemNotOwnedError      = "You don't have that item"
	ErrMsgInvalidSlotError       = "Unknown equipment slot"
	ErrMsgInvalidRarityError     = "Unknown rarity"
	ErrMsgUnknownSetError        = "Unknown equipment set"
	ErrMsgMaxLevelError          = "Item is already at max level"
	ErrMsgSlotEmptyError         = "Nothing is equipped in that slot"
	ErrMsgNotEnoughMoneyError    = "Not enough gold"
	ErrMsgChallengeNotFoundError = "Challenge not found"
	ErrMsgChallengeExpiredError  = "Challenge has expired"
	ErrMsgChallengeExistsError   = "A challenge between you is already pending"
	ErrMsgSelfChallengeError     = "You cannot challenge yourself"
	ErrMsgNotChallengedError     = "That challenge is not addressed to you"
	ErrMsgOnCooldownError        = "That action is on cooldown"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
)

// errorMappings is checked in order; the first sentinel found in the chain wins
var errorMappings = []struct {
	target error
	status int
	msg    string
}{
	{domain.ErrCharacterNotFound, http.StatusNotFound, ErrMsgCharacterNotFoundError},
	{domain.ErrCharacterExists, http.StatusConflict, ErrMsgCharacterExistsError},
	{domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
	{domain.ErrItemNotOwned, http.StatusForbidden, ErrMsgItemNotOwnedError},
	{domain.ErrInvalidSlot, http.StatusBadRequest, ErrMsgInvalidSlotError},
	{domain.ErrInvalidRarity, http.StatusBadRequest, ErrMsgInvalidRarityError},
	{domain.ErrUnknownSet, http.StatusBadRequest, ErrMsgUnknownSetError},
	{domain.ErrMaxLevel, http.StatusConflict, ErrMsgMaxLevelError},
	{domain.ErrSlotEmpty, http.StatusConflict, ErrMsgSlotEmptyError},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired, ErrMsgNotEnoughMoneyError},
	{domain.ErrChallengeNotFound, http.StatusNotFound, ErrMsgChallengeNotFoundError},
	{domain.ErrChallengeExpired, http.StatusGone, ErrMsgChallengeExpiredError},
	{domain.ErrChallengeExists, http.StatusConflict, ErrMsgChallengeExistsError},
	{domain.ErrSelfChallenge, http.StatusBadRequest, ErrMsgSelfChallengeError},
	{domain.ErrNotChallenged, http.StatusForbidden, ErrMsgNotChallengedError},
	{domain.ErrOnCooldown, http.StatusTooManyRequests, ErrMsgOnCooldownError},
	{domain.ErrInvalidStat, http.StatusBadRequest, ErrMsgInvalidInputError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Anything unrecognized is a 500 with a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
	// Cooldown messages carry the remaining wait
	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		return http.StatusTooManyRequests, cd.Error()
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
