package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements SheetServiceServer on top of the character orchestrator
type Handler struct {
	characterService character.Service
}

var _ SheetServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

// respond converts a view into a Struct, or err into a gRPC status
func respond(view any, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	out, err := toStruct(view)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// ValidateCharacter validates a document without storing it
func (h *Handler) ValidateCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	doc, err := requireDocument(req)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.ValidateCharacter(ctx, &character.ValidateCharacterInput{
		Document: doc,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(newValidationView(output.Result, output.Character), nil)
}

// SubmitCharacter validates a document and stores it for a player when valid
func (h *Handler) SubmitCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requireString(req, keyPlayerID)
	if err != nil {
		return respond(nil, err)
	}
	doc, err := requireDocument(req)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.SubmitCharacter(ctx, &character.SubmitCharacterInput{
		PlayerID: playerID,
		Document: doc,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(newValidationView(output.Result, output.Character), nil)
}

// GetCharacter returns a stored sheet
func (h *Handler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireString(req, keyCharacterID)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: id})
	if err != nil {
		return respond(nil, err)
	}

	return respond(struct {
		Character *dnd5e.Character `json:"character"`
	}{output.Character}, nil)
}

// ListCharacters returns a player's sheets
func (h *Handler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requireString(req, keyPlayerID)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{PlayerID: playerID})
	if err != nil {
		return respond(nil, err)
	}

	characters := output.Characters
	if characters == nil {
		characters = []*dnd5e.Character{}
	}
	return respond(struct {
		Characters []*dnd5e.Character `json:"characters"`
	}{characters}, nil)
}

// DeleteCharacter removes a stored sheet
func (h *Handler) DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireString(req, keyCharacterID)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{CharacterID: id})
	if err != nil {
		return respond(nil, err)
	}

	return respond(struct {
		Message string `json:"message"`
	}{output.Message}, nil)
}

// RefreshSpellcasting re-derives the spellcasting block of a stored sheet
func (h *Handler) RefreshSpellcasting(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireString(req, keyCharacterID)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.RefreshSpellcasting(ctx, &character.RefreshSpellcastingInput{
		CharacterID: id,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(struct {
		Character  *dnd5e.Character `json:"character"`
		Derivation *derivationView  `json:"derivation,omitempty"`
	}{output.Character, newDerivationView(output.Derivation)}, nil)
}

type draftView struct {
	Draft    *dnd5e.AbilityDraft `json:"draft"`
	Accepted *bool               `json:"accepted,omitempty"`
	PointBuy *pointBuyView       `json:"pointBuy,omitempty"`
	Rolls    []int               `json:"rolls,omitempty"`
}

// CreateAbilityDraft starts the ability score step for a player
func (h *Handler) CreateAbilityDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requireString(req, keyPlayerID)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.CreateAbilityDraft(ctx, &character.CreateAbilityDraftInput{
		PlayerID: playerID,
	})
	if err != nil {
		return respond(nil, err)
	}

	return respond(draftView{Draft: output.Draft}, nil)
}

// GetAbilityDraft returns a draft and, for point buy, its budget summary
func (h *Handler) GetAbilityDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	draftID, err := requireString(req, keyDraftID)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.GetAbilityDraft(ctx, &character.GetAbilityDraftInput{DraftID: draftID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(draftView{Draft: output.Draft, PointBuy: newPointBuyView(output.PointBuy)}, nil)
}

// UpdateAbilityDraft applies a builder event to a draft
func (h *Handler) UpdateAbilityDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	draftID, err := requireString(req, keyDraftID)
	if err != nil {
		return respond(nil, err)
	}
	event, err := parseEvent(req)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.UpdateAbilityDraft(ctx, &character.UpdateAbilityDraftInput{
		DraftID: draftID,
		Event:   event,
	})
	if err != nil {
		return respond(nil, err)
	}

	accepted := output.Accepted
	return respond(draftView{
		Draft:    output.Draft,
		Accepted: &accepted,
		PointBuy: newPointBuyView(output.PointBuy),
	}, nil)
}

// RollAbilityDraft rolls six scores and assigns them to a draft
func (h *Handler) RollAbilityDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	draftID, err := requireString(req, keyDraftID)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.RollAbilityDraft(ctx, &character.RollAbilityDraftInput{DraftID: draftID})
	if err != nil {
		return respond(nil, err)
	}

	return respond(draftView{Draft: output.Draft, Rolls: output.Rolls}, nil)
}

// GetClassRules returns the rule data for a class
func (h *Handler) GetClassRules(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	className, err := requireString(req, keyClassName)
	if err != nil {
		return respond(nil, err)
	}

	output, err := h.characterService.GetClassRules(ctx, &character.GetClassRulesInput{ClassName: className})
	if err != nil {
		return respond(nil, err)
	}

	return respond(struct {
		Class *classView `json:"class"`
	}{newClassView(output.Class)}, nil)
}
