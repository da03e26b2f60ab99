package handler

import (
	"net/http"

	"github.com/osse101/BrandishRPG_Go/internal/character"
	"github.com/osse101/BrandishRPG_Go/internal/logger"
)

// CharacterHandler serves character creation and profile lookups
type CharacterHandler struct {
	service character.Service
}

// NewCharacterHandler creates a new CharacterHandler
func NewCharacterHandler(service character.Service) *CharacterHandler {
	return &CharacterHandler{service: service}
}

// CreateCharacterRequest is the body of a create request
type CreateCharacterRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

// HandleCreate creates a new level 1 character
func (h *CharacterHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateCharacterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
		return
	}

	c, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, ErrMsgCreateCharacterFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info("Character created", "characterID", c.ID)
	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgCharacterCreated, Data: c})
}

// HandleGet returns the stored character
func (h *CharacterHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "characterID")
	if !ok {
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetCharacterFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// HandleProfile returns the character with its active buffs and equipped items
func (h *CharacterHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "characterID")
	if !ok {
		return
	}

	profile, err := h.service.Profile(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetProfileFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleMigrateBuffs rewrites whole-number legacy buffs into fractions
func (h *CharacterHandler) HandleMigrateBuffs(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "characterID")
	if !ok {
		return
	}

	c, err := h.service.MigrateLegacyBuffs(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgMigrateBuffsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgBuffsMigrated, Data: c})
}
