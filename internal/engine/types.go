package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// ValidateCharacterInput contains an untyped character document
type ValidateCharacterInput struct {
	Document map[string]any
}

// ValidateCharacterOutput contains validation results.
// SanitizedData is set only when IsValid is true.
type ValidateCharacterOutput struct {
	IsValid bool
	// Errors holds each distinct message once, in field declaration order
	Errors []string
	// FieldErrors holds every message with the path of the field it came from
	FieldErrors   []errors.FieldError
	SanitizedData *dnd5e.Character
}

// ValidateUserInput contains an untyped user document
type ValidateUserInput struct {
	Document map[string]any
}

// ValidateUserOutput contains user validation results
type ValidateUserOutput struct {
	IsValid       bool
	Errors        []string
	SanitizedData *dnd5e.User
}

// ValidateMulticlassInput contains the fields multiclassing depends on
type ValidateMulticlassInput struct {
	Abilities dnd5e.AbilityScores
	Classes   []dnd5e.ClassEntry
}

// ValidateMulticlassOutput contains multiclass validation results
type ValidateMulticlassOutput struct {
	IsValid bool
	Errors  []string
}

// DeriveSpellcastingInput contains a validated character
type DeriveSpellcastingInput struct {
	Character *dnd5e.Character
}

// DeriveSpellcastingOutput contains the recomputed spellcasting state
type DeriveSpellcastingOutput struct {
	Derivation *SpellcastingDerivation
}

// ProposePointBuyChangeInput contains a proposed point-buy score change
type ProposePointBuyChangeInput struct {
	Current dnd5e.AbilityScores
	Ability dnd5e.Ability
	Value   int
}

// ProposePointBuyChangeOutput contains the resulting scores.
// Scores equals the input scores when Accepted is false.
type ProposePointBuyChangeOutput struct {
	Scores   dnd5e.AbilityScores
	Accepted bool
	Summary  PointBuySummary
}

// SummarizePointBuyInput contains scores to price
type SummarizePointBuyInput struct {
	Scores dnd5e.AbilityScores
}

// SummarizePointBuyOutput contains the derived point totals
type SummarizePointBuyOutput struct {
	Summary PointBuySummary
}

// TransitionAbilityScoresInput contains the current state and an event
type TransitionAbilityScoresInput struct {
	State BuilderState
	Event BuilderEvent
}

// TransitionAbilityScoresOutput contains the resulting state.
// State equals the input state when Accepted is false.
type TransitionAbilityScoresOutput struct {
	State    BuilderState
	Accepted bool
}

// RollAbilityScoresInput is empty; the engine's roller is used
type RollAbilityScoresInput struct{}

// RollAbilityScoresOutput contains six 4d6-drop-lowest results in canonical ability order
type RollAbilityScoresOutput struct {
	Rolls []int
}

// GetClassRulesInput names a class
type GetClassRulesInput struct {
	ClassName string
}

// GetClassRulesOutput contains the class's rule data
type GetClassRulesOutput struct {
	Class *rules.Class
}
