package handler

import (
	"net/http"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/duel"
)

// DuelHandler serves the challenge lifecycle
type DuelHandler struct {
	service duel.Service
}

// NewDuelHandler creates a new DuelHandler
func NewDuelHandler(service duel.Service) *DuelHandler {
	return &DuelHandler{service: service}
}

// ChallengeRequest represents a duel challenge request
type ChallengeRequest struct {
	ChallengerID string `json:"challenger_id" validate:"required"`
	OpponentID   string `json:"opponent_id" validate:"required,nefield=ChallengerID"`
	Wager        int64  `json:"wager" validate:"min=0"`
}

// ChallengeResponse represents a duel challenge response
type ChallengeResponse struct {
	Message   string            `json:"message"`
	Challenge *domain.Challenge `json:"challenge"`
	ExpiresAt string            `json:"expires_at"`
}

// RespondRequest names the character accepting or declining
type RespondRequest struct {
	CharacterID string `json:"character_id" validate:"required"`
}

// AcceptDuelResponse represents a duel accept response
type AcceptDuelResponse struct {
	Message string             `json:"message"`
	Result  *domain.DuelResult `json:"result"`
}

// HandleChallenge issues a new challenge
func (h *DuelHandler) HandleChallenge(w http.ResponseWriter, r *http.Request) {
	var req ChallengeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Challenge duel"); err != nil {
		return
	}

	ch, err := h.service.Challenge(r.Context(), req.ChallengerID, req.OpponentID, req.Wager)
	if err != nil {
		respondServiceError(w, r, ErrMsgChallengeFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, ChallengeResponse{
		Message:   MsgChallengeIssued,
		Challenge: ch,
		ExpiresAt: ch.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// HandleAccept fights the duel and settles the wager
func (h *DuelHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	challengeID, ok := getChallengeID(r, w)
	if !ok {
		return
	}
	var req RespondRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Accept duel"); err != nil {
		return
	}

	result, err := h.service.Accept(r.Context(), req.CharacterID, challengeID)
	if err != nil {
		respondServiceError(w, r, ErrMsgAcceptFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, AcceptDuelResponse{Message: MsgDuelCompleted, Result: result})
}

// HandleDecline removes a pending challenge
func (h *DuelHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	challengeID, ok := getChallengeID(r, w)
	if !ok {
		return
	}
	var req RespondRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Decline duel"); err != nil {
		return
	}

	if err := h.service.Decline(r.Context(), req.CharacterID, challengeID); err != nil {
		respondServiceError(w, r, ErrMsgDeclineFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": MsgChallengeDeclined})
}

// HandleGetPending lists live challenges involving a character
func (h *DuelHandler) HandleGetPending(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetQueryParam(r, w, "character_id")
	if !ok {
		return
	}

	challenges, err := h.service.Pending(r.Context(), characterID)
	if err != nil {
		respondServiceError(w, r, ErrMsgPendingFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, challenges)
}
