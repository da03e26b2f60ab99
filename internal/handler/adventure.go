package handler

import (
	"context"
	"net/http"

	"github.com/osse101/BrandishRPG_Go/internal/adventure"
)

// AdventureHandler serves PvE campaigns
type AdventureHandler struct {
	service adventure.Service
}

// NewAdventureHandler creates a new AdventureHandler
func NewAdventureHandler(service adventure.Service) *AdventureHandler {
	return &AdventureHandler{service: service}
}

// CampaignResponse wraps the outcome of an adventure or raid
type CampaignResponse struct {
	Message string             `json:"message"`
	Outcome *adventure.Outcome `json:"outcome"`
}

// HandleAdventure runs the 50 stage adventure
func (h *AdventureHandler) HandleAdventure(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, ErrMsgAdventureFailed, h.service.Adventure)
}

// HandleRaid runs the boss raid
func (h *AdventureHandler) HandleRaid(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, ErrMsgRaidFailed, h.service.Raid)
}

func (h *AdventureHandler) run(w http.ResponseWriter, r *http.Request, opName string,
	action func(context.Context, string) (*adventure.Outcome, error)) {
	characterID, ok := GetPathParam(r, w, "characterID")
	if !ok {
		return
	}

	outcome, err := action(r.Context(), characterID)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}

	msg := MsgCampaignEndedEarly
	if outcome.Campaign != nil && outcome.Campaign.Completed {
		msg = MsgCampaignCompleted
	}
	respondJSON(w, http.StatusOK, CampaignResponse{Message: msg, Outcome: outcome})
}
