package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/equipment"
)

// EquipmentHandler serves item generation, enhancement and slot changes
type EquipmentHandler struct {
	service equipment.Service
}

// NewEquipmentHandler creates a new EquipmentHandler
func NewEquipmentHandler(service equipment.Service) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

// GenerateItemRequest describes the item to roll. SetName may be empty.
type GenerateItemRequest struct {
	Slot    string `json:"slot" validate:"required,slot"`
	Rarity  string `json:"rarity" validate:"required,rarity"`
	SetName string `json:"set_name" validate:"max=64"`
}

func (req GenerateItemRequest) normalized() (domain.Slot, domain.Rarity) {
	return domain.Slot(strings.ToLower(req.Slot)), domain.Rarity(strings.ToUpper(req.Rarity))
}

// ItemRequest names one item
type ItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// UnequipRequest names one slot
type UnequipRequest struct {
	Slot string `json:"slot" validate:"required,slot"`
}

// EnhanceResponse wraps an enhancement attempt
type EnhanceResponse struct {
	Message string                   `json:"message"`
	Result  *equipment.EnhanceResult `json:"result"`
}

// HandleGenerate rolls an unowned item
func (h *EquipmentHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate item"); err != nil {
		return
	}

	slot, rarity := req.normalized()
	item, err := h.service.Generate(r.Context(), slot, rarity, req.SetName)
	if err != nil {
		respondServiceError(w, r, ErrMsgGenerateItemFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemGenerated, Data: item})
}

// HandleGenerateFor rolls an item straight into a character's inventory
func (h *EquipmentHandler) HandleGenerateFor(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetPathParam(r, w, "characterID")
	if !ok {
		return
	}
	var req GenerateItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate item"); err != nil {
		return
	}

	slot, rarity := req.normalized()
	item, err := h.service.GenerateFor(r.Context(), characterID, slot, rarity, req.SetName)
	if err != nil {
		respondServiceError(w, r, ErrMsgGenerateItemFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgItemGenerated, Data: item})
}

// HandleGetItem returns an item by id
func (h *EquipmentHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := GetPathParam(r, w, "itemID")
	if !ok {
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetItemFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// HandleEnhance makes one enhancement attempt. A failed roll is still a 200
// because the gold was spent; refusals map to error statuses.
func (h *EquipmentHandler) HandleEnhance(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetPathParam(r, w, "characterID")
	if !ok {
		return
	}
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Enhance item"); err != nil {
		return
	}

	res, err := h.service.Enhance(r.Context(), characterID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgEnhanceItemFailed, err)
		return
	}

	msg := MsgEnhanceFailed
	if res.Success {
		msg = MsgEnhanceSucceeded
	}
	respondJSON(w, http.StatusOK, EnhanceResponse{Message: msg, Result: res})
}

// HandleEquip moves an inventory item into its slot
func (h *EquipmentHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetPathParam(r, w, "characterID")
	if !ok {
		return
	}
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
		return
	}

	c, err := h.service.Equip(r.Context(), characterID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, ErrMsgEquipItemFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemEquipped, Data: c})
}

// HandleUnequip empties a slot back into the inventory
func (h *EquipmentHandler) HandleUnequip(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetPathParam(r, w, "characterID")
	if !ok {
		return
	}
	var req UnequipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Unequip item"); err != nil {
		return
	}

	c, err := h.service.Unequip(r.Context(), characterID, domain.Slot(strings.ToLower(req.Slot)))
	if err != nil {
		respondServiceError(w, r, ErrMsgUnequipItemFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgItemUnequipped, Data: c})
}
