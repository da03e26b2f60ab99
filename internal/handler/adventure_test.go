package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/BrandishRPG_Go/internal/adventure"
	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

func TestHandleAdventureAndRaid(t *testing.T) {
	params := map[string]string{"characterID": "c1"}
	completed := &adventure.Outcome{
		Campaign:    &domain.CampaignResult{Mode: domain.ModeAdventure, StagesCleared: 50, Completed: true},
		GoldAwarded: 1200,
	}
	wiped := &adventure.Outcome{
		Campaign: &domain.CampaignResult{Mode: domain.ModeRaid, StagesCleared: 3},
	}

	tests := []struct {
		name           string
		raid           bool
		outcome        *adventure.Outcome
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"Adventure Completed", false, completed, nil, http.StatusOK, MsgCampaignCompleted},
		{"Raid Ended Early", true, wiped, nil, http.StatusOK, MsgCampaignEndedEarly},
		{"Unknown Character", false, nil, domain.ErrCharacterNotFound, http.StatusNotFound, ErrMsgCharacterNotFoundError},
		{"Store Failure", true, nil, errors.New("timeout"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockAdventureService(t)
			h := NewAdventureHandler(svc)
			rec := httptest.NewRecorder()

			if tt.raid {
				svc.On("Raid", mock.Anything, "c1").Return(tt.outcome, tt.err)
				h.HandleRaid(rec, newRequest("POST", "/api/v1/characters/c1/raid", nil, params))
			} else {
				svc.On("Adventure", mock.Anything, "c1").Return(tt.outcome, tt.err)
				h.HandleAdventure(rec, newRequest("POST", "/api/v1/characters/c1/adventure", nil, params))
			}

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
