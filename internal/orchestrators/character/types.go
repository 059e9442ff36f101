package character

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character Service

// Service defines the character orchestrator interface
type Service interface {
	// Sheet validation and lifecycle
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)
	SubmitCharacter(ctx context.Context, input *SubmitCharacterInput) (*SubmitCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	RefreshSpellcasting(ctx context.Context, input *RefreshSpellcastingInput) (*RefreshSpellcastingOutput, error)

	// Ability score step
	CreateAbilityDraft(ctx context.Context, input *CreateAbilityDraftInput) (*CreateAbilityDraftOutput, error)
	GetAbilityDraft(ctx context.Context, input *GetAbilityDraftInput) (*GetAbilityDraftOutput, error)
	UpdateAbilityDraft(ctx context.Context, input *UpdateAbilityDraftInput) (*UpdateAbilityDraftOutput, error)
	RollAbilityDraft(ctx context.Context, input *RollAbilityDraftInput) (*RollAbilityDraftOutput, error)

	// Rule lookups
	GetClassRules(ctx context.Context, input *GetClassRulesInput) (*GetClassRulesOutput, error)
}

// ValidationResult is the engine's verdict on a submitted document
type ValidationResult struct {
	IsValid     bool
	Errors      []string
	FieldErrors []errors.FieldError
}

// ValidateCharacterInput contains an untyped character document
type ValidateCharacterInput struct {
	Document map[string]any
}

// ValidateCharacterOutput contains the verdict and, when valid, the sanitized sheet
type ValidateCharacterOutput struct {
	Result    ValidationResult
	Character *dnd5e.Character
}

// SubmitCharacterInput contains a document to validate and store for a player
type SubmitCharacterInput struct {
	PlayerID string
	Document map[string]any
}

// SubmitCharacterOutput contains the verdict and, when valid, the stored sheet
type SubmitCharacterOutput struct {
	Result    ValidationResult
	Character *dnd5e.Character
}

// GetCharacterInput identifies a sheet
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput contains the sheet
type GetCharacterOutput struct {
	Character *dnd5e.Character
}

// ListCharactersInput names the owning player
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput contains the player's sheets
type ListCharactersOutput struct {
	Characters []*dnd5e.Character
}

// DeleteCharacterInput identifies a sheet
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput contains a confirmation message
type DeleteCharacterOutput struct {
	Message string
}

// RefreshSpellcastingInput identifies a stored sheet
type RefreshSpellcastingInput struct {
	CharacterID string
}

// RefreshSpellcastingOutput contains the updated sheet and the derivation applied
type RefreshSpellcastingOutput struct {
	Character  *dnd5e.Character
	Derivation *engine.SpellcastingDerivation
}

// CreateAbilityDraftInput names the player starting the ability step
type CreateAbilityDraftInput struct {
	PlayerID string
}

// CreateAbilityDraftOutput contains the new draft
type CreateAbilityDraftOutput struct {
	Draft *dnd5e.AbilityDraft
}

// GetAbilityDraftInput identifies a draft
type GetAbilityDraftInput struct {
	DraftID string
}

// GetAbilityDraftOutput contains the draft. PointBuy is set only for point-buy drafts.
type GetAbilityDraftOutput struct {
	Draft    *dnd5e.AbilityDraft
	PointBuy *engine.PointBuySummary
}

// UpdateAbilityDraftInput contains a builder event to apply
type UpdateAbilityDraftInput struct {
	DraftID string
	Event   engine.BuilderEvent
}

// UpdateAbilityDraftOutput contains the resulting draft.
// Draft is unchanged when Accepted is false.
type UpdateAbilityDraftOutput struct {
	Draft    *dnd5e.AbilityDraft
	Accepted bool
	PointBuy *engine.PointBuySummary
}

// RollAbilityDraftInput identifies a draft
type RollAbilityDraftInput struct {
	DraftID string
}

// RollAbilityDraftOutput contains the rolls and the draft they were applied to
type RollAbilityDraftOutput struct {
	Draft *dnd5e.AbilityDraft
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
