// Package engine validates character sheets and computes their derived values
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sheet/internal/engine Engine

import (
	"context"
)

// Engine applies the character rules. It holds no per-call state and is safe
// for concurrent use. Malformed documents are reported in the output, never as
// an error; errors are reserved for bad inputs to the call itself.
type Engine interface {
	// Sheet validation
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)
	ValidateUser(ctx context.Context, input *ValidateUserInput) (*ValidateUserOutput, error)
	ValidateMulticlass(ctx context.Context, input *ValidateMulticlassInput) (*ValidateMulticlassOutput, error)

	// Derived values
	DeriveSpellcasting(ctx context.Context, input *DeriveSpellcastingInput) (*DeriveSpellcastingOutput, error)

	// Ability score step
	ProposePointBuyChange(
		ctx context.Context,
		input *ProposePointBuyChangeInput,
	) (*ProposePointBuyChangeOutput, error)
	SummarizePointBuy(ctx context.Context, input *SummarizePointBuyInput) (*SummarizePointBuyOutput, error)
	TransitionAbilityScores(
		ctx context.Context,
		input *TransitionAbilityScoresInput,
	) (*TransitionAbilityScoresOutput, error)
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)

	// Rule lookups
	GetClassRules(ctx context.Context, input *GetClassRulesInput) (*GetClassRulesOutput, error)

	// Utility methods
	CalculateProficiencyBonus(level int) int
	CalculateAbilityModifier(score int) int
}
