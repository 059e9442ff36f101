package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type engine struct {
	rules    *rules.Ruleset
	pointBuy pointBuy
	roller   dice.Roller
}

// Config contains the engine's collaborators
type Config struct {
	// Rules defaults to the embedded SRD tables
	Rules *rules.Ruleset
	// DiceRoller defaults to dice.DefaultRoller
	DiceRoller dice.Roller
}

// Validate validates the config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	return nil
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rs := cfg.Rules
	if rs == nil {
		rs = rules.Default()
	}
	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &engine{
		rules:    rs,
		pointBuy: pointBuy{table: rs.PointBuy},
		roller:   roller,
	}, nil
}

func (e *engine) CalculateAbilityModifier(score int) int {
	return AbilityModifier(score)
}

func (e *engine) CalculateProficiencyBonus(level int) int {
	return ProficiencyBonus(level)
}

func (e *engine) ValidateCharacter(
	ctx context.Context,
	input *ValidateCharacterInput,
) (*ValidateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := e.validateCharacter(input.Document)

	slog.DebugContext(ctx, "validated character document",
		"is_valid", out.IsValid,
		"error_count", len(out.Errors))

	return out, nil
}

func (e *engine) ValidateUser(ctx context.Context, input *ValidateUserInput) (*ValidateUserOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := e.validateUser(input.Document)

	slog.DebugContext(ctx, "validated user document",
		"is_valid", out.IsValid,
		"error_count", len(out.Errors))

	return out, nil
}

func (e *engine) ValidateMulticlass(
	_ context.Context,
	input *ValidateMulticlassInput,
) (*ValidateMulticlassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	errs := e.multiclassErrors(input.Abilities, input.Classes)
	return &ValidateMulticlassOutput{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}, nil
}

func (e *engine) DeriveSpellcasting(
	_ context.Context,
	input *DeriveSpellcastingInput,
) (*DeriveSpellcastingOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	return &DeriveSpellcastingOutput{Derivation: e.deriveSpellcasting(input.Character)}, nil
}

func (e *engine) ProposePointBuyChange(
	_ context.Context,
	input *ProposePointBuyChangeInput,
) (*ProposePointBuyChangeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, valid := dnd5e.ParseAbility(string(input.Ability)); !valid {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}

	scores, accepted := e.pointBuy.propose(input.Current, input.Ability, input.Value)
	return &ProposePointBuyChangeOutput{
		Scores:   scores,
		Accepted: accepted,
		Summary:  e.pointBuy.summarize(scores),
	}, nil
}

func (e *engine) SummarizePointBuy(
	_ context.Context,
	input *SummarizePointBuyInput,
) (*SummarizePointBuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &SummarizePointBuyOutput{Summary: e.pointBuy.summarize(input.Scores)}, nil
}

func (e *engine) TransitionAbilityScores(
	ctx context.Context,
	input *TransitionAbilityScoresInput,
) (*TransitionAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, accepted := e.transition(input.State, input.Event)

	slog.DebugContext(ctx, "ability score transition",
		"event", input.Event.Kind,
		"from_method", input.State.Method,
		"to_method", state.Method,
		"accepted", accepted)

	return &TransitionAbilityScoresOutput{State: state, Accepted: accepted}, nil
}

func (e *engine) RollAbilityScores(
	ctx context.Context,
	_ *RollAbilityScoresInput,
) (*RollAbilityScoresOutput, error) {
	rolls, err := rollAbilityScores(e.roller)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "rolled ability scores", "rolls", rolls)

	return &RollAbilityScoresOutput{Rolls: rolls}, nil
}

func (e *engine) GetClassRules(_ context.Context, input *GetClassRulesInput) (*GetClassRulesOutput, error) {
	if input == nil || strings.TrimSpace(input.ClassName) == "" {
		return nil, errors.InvalidArgument("class name is required")
	}

	class, found := e.rules.Class(input.ClassName)
	if !found {
		return nil, errors.NotFoundf("class %s not found", input.ClassName)
	}

	return &GetClassRulesOutput{Class: class}, nil
}
