package testutils

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Elira Vance"
	// TestPlayerID is the default owning player for test fixtures
	TestPlayerID = "player-test-001"
)

// CharacterDocument returns a complete, valid level 1 wizard sheet shaped the
// way encoding/json decodes it: numbers are float64, lists are []any.
// Each call returns a fresh document that tests may modify.
func CharacterDocument() map[string]any {
	return map[string]any{
		"name":             TestCharacterName,
		"race":             "Elf",
		"subrace":          "High Elf",
		"background":       "Sage",
		"alignment":        "Neutral Good",
		"experiencePoints": float64(0),
		"classes": []any{
			map[string]any{
				"className":   "Wizard",
				"level":       float64(1),
				"hitDiceSize": float64(6),
				"hitDiceUsed": float64(0),
			},
		},
		"abilities": map[string]any{
			"strength":     float64(8),
			"dexterity":    float64(14),
			"constitution": float64(13),
			"intelligence": float64(16),
			"wisdom":       float64(12),
			"charisma":     float64(10),
		},
		"hitPoints": map[string]any{
			"maximum":   float64(7),
			"current":   float64(7),
			"temporary": float64(0),
		},
		"armorClass":        float64(12),
		"speed":             float64(30),
		"initiative":        float64(2),
		"passivePerception": float64(11),
		"proficiencies": map[string]any{
			"savingThrows": []any{"intelligence", "wisdom"},
			"skills":       []any{"arcana", "history"},
			"armor":        []any{},
			"weapons":      []any{"Dagger", "Quarterstaff"},
			"tools":        []any{},
			"languages":    []any{"Common", "Elvish"},
		},
		"equipment": []any{
			map[string]any{"name": "Spellbook", "quantity": float64(1), "weight": float64(3), "equipped": false},
			map[string]any{"name": "Quarterstaff", "quantity": float64(1), "weight": float64(4), "equipped": true},
		},
		"features": []any{
			map[string]any{"name": "Arcane Recovery", "source": "Wizard"},
		},
		"spellcasting": map[string]any{
			"ability": "intelligence",
			"spellSlots": map[string]any{
				"1st": map[string]any{"total": float64(2), "used": float64(1)},
			},
			"spellsKnown":    []any{"Magic Missile", "Shield", "Mage Armor"},
			"spellsPrepared": []any{"Magic Missile", "Shield"},
		},
		"notes": "Apprentice of the Arcane Tower",
	}
}

// MinimalCharacterDocument returns a valid sheet holding only required fields
func MinimalCharacterDocument(className string, level int, scores map[string]int) map[string]any {
	abilities := make(map[string]any, len(scores))
	for k, v := range scores {
		abilities[k] = float64(v)
	}
	return map[string]any{
		"name":       TestCharacterName,
		"race":       "Human",
		"background": "Soldier",
		"alignment":  "Lawful Neutral",
		"classes": []any{
			map[string]any{"className": className, "level": float64(level)},
		},
		"abilities": abilities,
	}
}

// UniformScores returns an ability score map with every ability set to v
func UniformScores(v int) map[string]int {
	return map[string]int{
		"strength":     v,
		"dexterity":    v,
		"constitution": v,
		"intelligence": v,
		"wisdom":       v,
		"charisma":     v,
	}
}
