package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemRequest struct {
	Slot   string `json:"slot" validate:"required,slot"`
	Rarity string `json:"rarity" validate:"omitempty,rarity"`
	Name   string `json:"name" validate:"required,max=32,printascii"`
	Wager  int64  `json:"wager" validate:"min=0"`
}

func TestValidateRequest_SlotAndRarity(t *testing.T) {
	tests := []struct {
		name    string
		slot    string
		rarity  string
		wantErr bool
	}{
		{"valid weapon common", "weapon", "COMMON", false},
		{"slot is case insensitive", "Accessory", "legendary", false},
		{"rarity optional", "feet", "", false},
		{"unknown slot", "cape", "RARE", true},
		{"unknown rarity", "head", "MYTHIC", true},
		{"missing slot", "", "RARE", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(itemRequest{Slot: tt.slot, Rarity: tt.rarity, Name: "x"})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFieldErrors(t *testing.T) {
	err := validateRequest(itemRequest{Slot: "cape", Rarity: "MYTHIC", Name: "bad\nname", Wager: -1})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"slot":   "Invalid slot",
		"rarity": "Invalid rarity",
		"name":   "Invalid value",
		"wager":  "Must be at least 0",
	}, fieldErrors(err))
}

func TestFieldErrors_DuelParticipants(t *testing.T) {
	err := validateRequest(ChallengeRequest{ChallengerID: "a", OpponentID: "a"})
	require.Error(t, err)
	assert.Equal(t, "Must differ from the paired field", fieldErrors(err)["opponent_id"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, fieldErrors(nil))
	assert.Equal(t, map[string]string{"error": ErrMsgInvalidRequest}, fieldErrors(assert.AnError))
}
