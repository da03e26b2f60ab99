//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type createdCharacter struct {
	Data struct {
		ID      string `json:"id"`
		Level   int    `json:"level"`
		Balance int64  `json:"balance"`
	} `json:"data"`
}

func createCharacter(t *testing.T, name string) string {
	t.Helper()
	resp, body := makeRequest(t, "POST", "/api/v1/characters", map[string]string{"name": name})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, body)
	}

	var created createdCharacter
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if created.Data.ID == "" || created.Data.Level != 1 {
		t.Fatalf("Unexpected character: %s", body)
	}
	return created.Data.ID
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano()%1_000_000)
}

func TestCharacterGearSmoke(t *testing.T) {
	id := createCharacter(t, uniqueName("smoke"))
	base := "/api/v1/characters/" + id

	resp, body := makeRequest(t, "POST", base+"/items", map[string]string{"slot": "weapon", "rarity": "RARE", "set_name": "crimson_witch"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, body)
	}
	var generated struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &generated); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	resp, body = makeRequest(t, "POST", base+"/equip", map[string]string{"item_id": generated.Data.ID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	resp, body = makeRequest(t, "GET", base+"/profile", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}
	var profile struct {
		Equipped []struct {
			ID string `json:"id"`
		} `json:"equipped"`
	}
	if err := json.Unmarshal(body, &profile); err != nil {
		t.Fatalf("Failed to unmarshal profile: %v", err)
	}
	if len(profile.Equipped) != 1 || profile.Equipped[0].ID != generated.Data.ID {
		t.Errorf("Expected equipped item %s, got %s", generated.Data.ID, body)
	}
}

func TestDuelSmoke(t *testing.T) {
	a := createCharacter(t, uniqueName("duelA"))
	b := createCharacter(t, uniqueName("duelB"))

	resp, body := makeRequest(t, "POST", "/api/v1/duels", map[string]any{
		"challenger_id": a, "opponent_id": b, "wager": 10,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", resp.StatusCode, body)
	}
	var issued struct {
		Challenge struct {
			ID string `json:"id"`
		} `json:"challenge"`
	}
	if err := json.Unmarshal(body, &issued); err != nil {
		t.Fatalf("Failed to unmarshal challenge: %v", err)
	}

	resp, body = makeRequest(t, "POST", "/api/v1/duels/"+issued.Challenge.ID+"/accept", map[string]string{"character_id": b})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}
}

func TestAdventureSmoke(t *testing.T) {
	id := createCharacter(t, uniqueName("adv"))

	resp, body := makeRequest(t, "POST", "/api/v1/characters/"+id+"/adventure", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	// Staging runs with DEV_MODE off, so the cooldown applies
	resp, body = makeRequest(t, "POST", "/api/v1/characters/"+id+"/adventure", nil)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("Expected status 429 on repeat adventure, got %d: %s", resp.StatusCode, body)
	}

	resp, body = makeRequest(t, "GET", "/api/v1/characters/"+id+"/events", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 from event history, got %d: %s", resp.StatusCode, body)
	}
}
