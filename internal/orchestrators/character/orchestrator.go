// Package character implements the character orchestrator: it runs documents
// through the rules engine and persists what the engine accepts
package character

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	abilitydraftrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/ability_draft"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
)

// initialDraftScore is the manual-method starting value for every ability
const initialDraftScore = 10

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo        characterrepo.Repository
	AbilityDraftRepo     abilitydraftrepo.Repository
	Engine               engine.Engine
	CharacterIDGenerator idgen.Generator
	DraftIDGenerator     idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.AbilityDraftRepo == nil {
		vb.RequiredField("AbilityDraftRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.CharacterIDGenerator == nil {
		vb.RequiredField("CharacterIDGenerator")
	}
	if c.DraftIDGenerator == nil {
		vb.RequiredField("DraftIDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the Service interface
type Orchestrator struct {
	characterRepo    characterrepo.Repository
	abilityDraftRepo abilitydraftrepo.Repository
	engine           engine.Engine
	characterIDGen   idgen.Generator
	draftIDGen       idgen.Generator
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo:    cfg.CharacterRepo,
		abilityDraftRepo: cfg.AbilityDraftRepo,
		engine:           cfg.Engine,
		characterIDGen:   cfg.CharacterIDGenerator,
		draftIDGen:       cfg.DraftIDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// Sheet methods

// ValidateCharacter checks a document without storing anything
func (o *Orchestrator) ValidateCharacter(
	ctx context.Context,
	input *ValidateCharacterInput,
) (*ValidateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{Document: input.Document})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate character")
	}

	return &ValidateCharacterOutput{
		Result:    toResult(result),
		Character: result.SanitizedData,
	}, nil
}

// SubmitCharacter validates a document and stores the sanitized sheet for
// the player. An invalid document is reported in the result and nothing is
// stored.
func (o *Orchestrator) SubmitCharacter(
	ctx context.Context,
	input *SubmitCharacterInput,
) (*SubmitCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{Document: input.Document})
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate character")
	}
	if !result.IsValid {
		slog.InfoContext(ctx, "rejected character submission",
			"player_id", input.PlayerID,
			"error_count", len(result.Errors))
		return &SubmitCharacterOutput{Result: toResult(result)}, nil
	}

	sheet := result.SanitizedData
	sheet.ID = o.characterIDGen.Generate()
	sheet.UserID = input.PlayerID

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: sheet})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}

	slog.InfoContext(ctx, "stored character",
		"character_id", created.Character.ID,
		"player_id", input.PlayerID)

	return &SubmitCharacterOutput{
		Result:    toResult(result),
		Character: created.Character,
	}, nil
}

// GetCharacter retrieves a stored sheet
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &GetCharacterOutput{Character: out.Character}, nil
}

// ListCharacters lists a player's sheets
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter deletes a stored sheet
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *DeleteCharacterInput,
) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	return &DeleteCharacterOutput{
		Message: fmt.Sprintf("Character %s deleted successfully", input.CharacterID),
	}, nil
}

// RefreshSpellcasting recomputes the spellcasting block of a stored sheet
// from its current classes and abilities and saves the result
func (o *Orchestrator) RefreshSpellcasting(
	ctx context.Context,
	input *RefreshSpellcastingInput,
) (*RefreshSpellcastingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	got, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	derived, err := o.engine.DeriveSpellcasting(ctx, &engine.DeriveSpellcastingInput{Character: got.Character})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive spellcasting")
	}

	block := derived.Derivation.Spellcasting
	if block != nil && block.SpellSaveDC < dnd5e.MinSpellSaveDC {
		slog.InfoContext(ctx, "refused spellcasting refresh",
			"character_id", input.CharacterID,
			"spell_save_dc", block.SpellSaveDC)
		return nil, errors.FailedPreconditionf(
			"character %s would have spell save DC %d; it must be at least %d",
			input.CharacterID, block.SpellSaveDC, dnd5e.MinSpellSaveDC)
	}

	sheet := got.Character
	sheet.Spellcasting = block

	updated, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: sheet})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}

	slog.DebugContext(ctx, "refreshed spellcasting",
		"character_id", sheet.ID,
		"caster_level", derived.Derivation.CasterLevel)

	return &RefreshSpellcastingOutput{
		Character:  updated.Character,
		Derivation: derived.Derivation,
	}, nil
}

// Ability score step

// CreateAbilityDraft starts an ability score step with every score at 10
// under the manual method
func (o *Orchestrator) CreateAbilityDraft(
	ctx context.Context,
	input *CreateAbilityDraftInput,
) (*CreateAbilityDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	draft := &dnd5e.AbilityDraft{
		ID:       o.draftIDGen.Generate(),
		PlayerID: input.PlayerID,
		Method:   dnd5e.AbilityScoreMethodManual,
		Scores:   dnd5e.UniformScores(initialDraftScore),
	}

	out, err := o.abilityDraftRepo.Create(ctx, abilitydraftrepo.CreateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}

	return &CreateAbilityDraftOutput{Draft: out.Draft}, nil
}

// GetAbilityDraft retrieves a draft along with its point-buy standing
func (o *Orchestrator) GetAbilityDraft(
	ctx context.Context,
	input *GetAbilityDraftInput,
) (*GetAbilityDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	summary, err := o.pointBuySummary(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &GetAbilityDraftOutput{Draft: draft, PointBuy: summary}, nil
}

// UpdateAbilityDraft applies a builder event. The draft is saved only when
// the engine accepts the event; a rejected event returns the stored draft.
func (o *Orchestrator) UpdateAbilityDraft(
	ctx context.Context,
	input *UpdateAbilityDraftInput,
) (*UpdateAbilityDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft, accepted, err := o.applyEvent(ctx, draft, input.Event)
	if err != nil {
		return nil, err
	}

	summary, err := o.pointBuySummary(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &UpdateAbilityDraftOutput{
		Draft:    draft,
		Accepted: accepted,
		PointBuy: summary,
	}, nil
}

// RollAbilityDraft rolls six scores and assigns them to the draft, switching
// it to the manual method
func (o *Orchestrator) RollAbilityDraft(
	ctx context.Context,
	input *RollAbilityDraftInput,
) (*RollAbilityDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	rolled, err := o.engine.RollAbilityScores(ctx, &engine.RollAbilityScoresInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}

	draft, accepted, err := o.applyEvent(ctx, draft, engine.BuilderEvent{
		Kind:  engine.EventApplyRolls,
		Rolls: rolled.Rolls,
	})
	if err != nil {
		return nil, err
	}
	if !accepted {
		return nil, errors.Internalf("rolled scores %v were rejected", rolled.Rolls)
	}

	return &RollAbilityDraftOutput{Draft: draft, Rolls: rolled.Rolls}, nil
}

// GetClassRules returns the rule data for a class
func (o *Orchestrator) GetClassRules(ctx context.Context, input *GetClassRulesInput) (*GetClassRulesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.engine.GetClassRules(ctx, &engine.GetClassRulesInput{ClassName: input.ClassName})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get class rules")
	}

	return &GetClassRulesOutput{Class: out.Class}, nil
}

// Helper methods

func (o *Orchestrator) getDraft(ctx context.Context, draftID string) (*dnd5e.AbilityDraft, error) {
	if draftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	out, err := o.abilityDraftRepo.Get(ctx, abilitydraftrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draft")
	}
	return out.Draft, nil
}

// applyEvent runs the transition and persists an accepted result
func (o *Orchestrator) applyEvent(
	ctx context.Context,
	draft *dnd5e.AbilityDraft,
	event engine.BuilderEvent,
) (*dnd5e.AbilityDraft, bool, error) {
	transition, err := o.engine.TransitionAbilityScores(ctx, &engine.TransitionAbilityScoresInput{
		State: engine.BuilderState{Method: draft.Method, Scores: draft.Scores},
		Event: event,
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to apply ability score event")
	}
	if !transition.Accepted {
		slog.DebugContext(ctx, "ability score event rejected",
			"draft_id", draft.ID,
			"event", event.Kind)
		return draft, false, nil
	}

	next := *draft
	next.Method = transition.State.Method
	next.Scores = transition.State.Scores

	updated, err := o.abilityDraftRepo.Update(ctx, abilitydraftrepo.UpdateInput{Draft: &next})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to save draft")
	}
	return updated.Draft, true, nil
}

func (o *Orchestrator) pointBuySummary(
	ctx context.Context,
	draft *dnd5e.AbilityDraft,
) (*engine.PointBuySummary, error) {
	if draft.Method != dnd5e.AbilityScoreMethodPointBuy {
		return nil, nil
	}

	out, err := o.engine.SummarizePointBuy(ctx, &engine.SummarizePointBuyInput{Scores: draft.Scores})
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize point buy")
	}
	return &out.Summary, nil
}

func toResult(out *engine.ValidateCharacterOutput) ValidationResult {
	return ValidationResult{
		IsValid:     out.IsValid,
		Errors:      out.Errors,
		FieldErrors: out.FieldErrors,
	}
}
