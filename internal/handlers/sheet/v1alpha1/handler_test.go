package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	charactermock "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCharService *charactermock.MockService
	handler         *v1alpha1.Handler
	ctx             context.Context

	testPlayerID    string
	testCharacterID string
	testDraftID     string
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharService = charactermock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: s.mockCharService,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.ctx = context.Background()
	s.testPlayerID = "player_1"
	s.testCharacterID = "char_1"
	s.testDraftID = "draft_1"
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok, "expected a gRPC status, got %v", err)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Nil(handler)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestValidateCharacter() {
	s.Run("passes the document through and reports the verdict", func() {
		s.mockCharService.EXPECT().
			ValidateCharacter(s.ctx, &character.ValidateCharacterInput{
				Document: map[string]any{"name": "Elara", "totalLevel": float64(1)},
			}).
			Return(&character.ValidateCharacterOutput{
				Result: character.ValidationResult{
					IsValid: false,
					Errors:  []string{"Race is required"},
					FieldErrors: []errors.FieldError{
						{Field: "race", Message: "Race is required"},
					},
				},
			}, nil)

		resp, err := s.handler.ValidateCharacter(s.ctx, s.request(map[string]any{
			"character": map[string]any{"name": "Elara", "totalLevel": 1},
		}))
		s.Require().NoError(err)

		out := resp.AsMap()
		s.Equal(false, out["isValid"])
		s.Equal([]any{"Race is required"}, out["errors"])
		s.Equal([]any{map[string]any{"field": "race", "message": "Race is required"}}, out["fieldErrors"])
		s.NotContains(out, "sanitizedData")
	})

	s.Run("returns the sanitized sheet when valid", func() {
		s.mockCharService.EXPECT().
			ValidateCharacter(s.ctx, gomock.Any()).
			Return(&character.ValidateCharacterOutput{
				Result:    character.ValidationResult{IsValid: true},
				Character: &dnd5e.Character{Name: "Elara", TotalLevel: 1, ProficiencyBonus: 2},
			}, nil)

		resp, err := s.handler.ValidateCharacter(s.ctx, s.request(map[string]any{
			"character": map[string]any{"name": "Elara"},
		}))
		s.Require().NoError(err)

		out := resp.AsMap()
		s.Equal(true, out["isValid"])
		s.Equal([]any{}, out["errors"])
		s.Equal([]any{}, out["fieldErrors"])
		sheet, ok := out["sanitizedData"].(map[string]any)
		s.Require().True(ok)
		s.Equal("Elara", sheet["name"])
		s.Equal(float64(2), sheet["proficiencyBonus"])
	})

	s.Run("requires a character object", func() {
		_, err := s.handler.ValidateCharacter(s.ctx, s.request(map[string]any{"character": "nope"}))
		s.requireCode(err, codes.InvalidArgument)
	})
}

func (s *HandlerTestSuite) TestSubmitCharacter() {
	s.Run("requires a player", func() {
		_, err := s.handler.SubmitCharacter(s.ctx, s.request(map[string]any{
			"character": map[string]any{"name": "Elara"},
		}))
		s.requireCode(err, codes.InvalidArgument)
		s.Contains(err.Error(), "playerId is required")
	})

	s.Run("returns the stored sheet", func() {
		s.mockCharService.EXPECT().
			SubmitCharacter(s.ctx, &character.SubmitCharacterInput{
				PlayerID: s.testPlayerID,
				Document: map[string]any{"name": "Elara"},
			}).
			Return(&character.SubmitCharacterOutput{
				Result:    character.ValidationResult{IsValid: true},
				Character: &dnd5e.Character{ID: s.testCharacterID, UserID: s.testPlayerID, Name: "Elara"},
			}, nil)

		resp, err := s.handler.SubmitCharacter(s.ctx, s.request(map[string]any{
			"playerId":  s.testPlayerID,
			"character": map[string]any{"name": "Elara"},
		}))
		s.Require().NoError(err)

		sheet := resp.AsMap()["sanitizedData"].(map[string]any)
		s.Equal(s.testCharacterID, sheet["id"])
		s.Equal(s.testPlayerID, sheet["userId"])
	})
}

func (s *HandlerTestSuite) TestGetCharacter() {
	s.Run("maps not found", func() {
		s.mockCharService.EXPECT().
			GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: s.testCharacterID}).
			Return(nil, errors.NotFoundf("character %s not found", s.testCharacterID))

		_, err := s.handler.GetCharacter(s.ctx, s.request(map[string]any{"characterId": s.testCharacterID}))
		s.requireCode(err, codes.NotFound)
	})

	s.Run("requires an id", func() {
		_, err := s.handler.GetCharacter(s.ctx, s.request(map[string]any{}))
		s.requireCode(err, codes.InvalidArgument)
	})

	s.Run("returns the sheet", func() {
		s.mockCharService.EXPECT().
			GetCharacter(s.ctx, &character.GetCharacterInput{CharacterID: s.testCharacterID}).
			Return(&character.GetCharacterOutput{
				Character: &dnd5e.Character{ID: s.testCharacterID, Name: "Elara"},
			}, nil)

		resp, err := s.handler.GetCharacter(s.ctx, s.request(map[string]any{"characterId": s.testCharacterID}))
		s.Require().NoError(err)
		s.Equal("Elara", resp.AsMap()["character"].(map[string]any)["name"])
	})
}

func (s *HandlerTestSuite) TestListCharacters_EmptyIsList() {
	s.mockCharService.EXPECT().
		ListCharacters(s.ctx, &character.ListCharactersInput{PlayerID: s.testPlayerID}).
		Return(&character.ListCharactersOutput{}, nil)

	resp, err := s.handler.ListCharacters(s.ctx, s.request(map[string]any{"playerId": s.testPlayerID}))
	s.Require().NoError(err)
	s.Equal([]any{}, resp.AsMap()["characters"])
}

func (s *HandlerTestSuite) TestDeleteCharacter() {
	s.mockCharService.EXPECT().
		DeleteCharacter(s.ctx, &character.DeleteCharacterInput{CharacterID: s.testCharacterID}).
		Return(&character.DeleteCharacterOutput{Message: "deleted character char_1"}, nil)

	resp, err := s.handler.DeleteCharacter(s.ctx, s.request(map[string]any{"characterId": s.testCharacterID}))
	s.Require().NoError(err)
	s.Equal("deleted character char_1", resp.AsMap()["message"])
}

func (s *HandlerTestSuite) TestRefreshSpellcasting() {
	block := &dnd5e.Spellcasting{
		Ability:          dnd5e.AbilityIntelligence,
		SpellAttackBonus: 5,
		SpellSaveDC:      13,
		SpellSlots:       map[string]dnd5e.SpellSlot{"1st": {Total: 2}},
	}
	s.mockCharService.EXPECT().
		RefreshSpellcasting(s.ctx, &character.RefreshSpellcastingInput{CharacterID: s.testCharacterID}).
		Return(&character.RefreshSpellcastingOutput{
			Character: &dnd5e.Character{ID: s.testCharacterID, Spellcasting: block},
			Derivation: &engine.SpellcastingDerivation{
				HasSpellcasting:  true,
				Ability:          dnd5e.AbilityIntelligence,
				Repertoire:       rules.RepertoirePrepared,
				CasterLevel:      1,
				SpellAttackBonus: 5,
				SpellSaveDC:      13,
				Spellcasting:     block,
			},
		}, nil)

	resp, err := s.handler.RefreshSpellcasting(s.ctx, s.request(map[string]any{"characterId": s.testCharacterID}))
	s.Require().NoError(err)

	derivation := resp.AsMap()["derivation"].(map[string]any)
	s.Equal(true, derivation["hasSpellcasting"])
	s.Equal("prepared", derivation["repertoire"])
	s.Equal(float64(13), derivation["spellSaveDC"])
}

func (s *HandlerTestSuite) TestUpdateAbilityDraft() {
	s.Run("parses the event", func() {
		s.mockCharService.EXPECT().
			UpdateAbilityDraft(s.ctx, &character.UpdateAbilityDraftInput{
				DraftID: s.testDraftID,
				Event: engine.BuilderEvent{
					Kind:    engine.EventSetScore,
					Ability: dnd5e.AbilityStrength,
					Value:   15,
				},
			}).
			Return(&character.UpdateAbilityDraftOutput{
				Draft: &dnd5e.AbilityDraft{
					ID:     s.testDraftID,
					Method: dnd5e.AbilityScoreMethodPointBuy,
					Scores: dnd5e.UniformScores(8).With(dnd5e.AbilityStrength, 15),
				},
				Accepted: true,
				PointBuy: &engine.PointBuySummary{Used: 9, Remaining: 18, Budget: 27, Valid: true},
			}, nil)

		resp, err := s.handler.UpdateAbilityDraft(s.ctx, s.request(map[string]any{
			"draftId": s.testDraftID,
			"event":   map[string]any{"kind": "set_score", "ability": "strength", "value": 15},
		}))
		s.Require().NoError(err)

		out := resp.AsMap()
		s.Equal(true, out["accepted"])
		s.Equal(map[string]any{
			"used":      float64(9),
			"remaining": float64(18),
			"budget":    float64(27),
			"valid":     true,
		}, out["pointBuy"])
		scores := out["draft"].(map[string]any)["scores"].(map[string]any)
		s.Equal(float64(15), scores["strength"])
	})

	s.Run("reports a rejected event as not accepted", func() {
		s.mockCharService.EXPECT().
			UpdateAbilityDraft(s.ctx, &character.UpdateAbilityDraftInput{
				DraftID: s.testDraftID,
				Event:   engine.BuilderEvent{Kind: engine.EventApplyRolls, Rolls: []int{18, 15}},
			}).
			Return(&character.UpdateAbilityDraftOutput{
				Draft: &dnd5e.AbilityDraft{ID: s.testDraftID, Method: dnd5e.AbilityScoreMethodManual},
			}, nil)

		resp, err := s.handler.UpdateAbilityDraft(s.ctx, s.request(map[string]any{
			"draftId": s.testDraftID,
			"event":   map[string]any{"kind": "apply_rolls", "rolls": []any{18, 15}},
		}))
		s.Require().NoError(err)
		s.Equal(false, resp.AsMap()["accepted"])
		s.NotContains(resp.AsMap(), "pointBuy")
	})

	s.Run("rejects malformed events before calling the service", func() {
		testCases := []struct {
			name  string
			event any
		}{
			{name: "missing event", event: nil},
			{name: "missing kind", event: map[string]any{"ability": "strength"}},
			{name: "fractional value", event: map[string]any{"kind": "set_score", "value": 12.5}},
			{name: "non-numeric roll", event: map[string]any{"kind": "apply_rolls", "rolls": []any{"six"}}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				fields := map[string]any{"draftId": s.testDraftID}
				if tc.event != nil {
					fields["event"] = tc.event
				}
				_, err := s.handler.UpdateAbilityDraft(s.ctx, s.request(fields))
				s.requireCode(err, codes.InvalidArgument)
			})
		}
	})
}

func (s *HandlerTestSuite) TestRollAbilityDraft() {
	s.mockCharService.EXPECT().
		RollAbilityDraft(s.ctx, &character.RollAbilityDraftInput{DraftID: s.testDraftID}).
		Return(&character.RollAbilityDraftOutput{
			Draft: &dnd5e.AbilityDraft{ID: s.testDraftID, Method: dnd5e.AbilityScoreMethodManual},
			Rolls: []int{18, 15, 12, 9, 6, 15},
		}, nil)

	resp, err := s.handler.RollAbilityDraft(s.ctx, s.request(map[string]any{"draftId": s.testDraftID}))
	s.Require().NoError(err)
	s.Equal([]any{float64(18), float64(15), float64(12), float64(9), float64(6), float64(15)}, resp.AsMap()["rolls"])
}

func (s *HandlerTestSuite) TestCreateAndGetAbilityDraft() {
	draft := &dnd5e.AbilityDraft{
		ID:       s.testDraftID,
		PlayerID: s.testPlayerID,
		Method:   dnd5e.AbilityScoreMethodManual,
		Scores:   dnd5e.UniformScores(10),
	}
	s.mockCharService.EXPECT().
		CreateAbilityDraft(s.ctx, &character.CreateAbilityDraftInput{PlayerID: s.testPlayerID}).
		Return(&character.CreateAbilityDraftOutput{Draft: draft}, nil)
	s.mockCharService.EXPECT().
		GetAbilityDraft(s.ctx, &character.GetAbilityDraftInput{DraftID: s.testDraftID}).
		Return(&character.GetAbilityDraftOutput{Draft: draft}, nil)

	created, err := s.handler.CreateAbilityDraft(s.ctx, s.request(map[string]any{"playerId": s.testPlayerID}))
	s.Require().NoError(err)
	s.Equal("manual", created.AsMap()["draft"].(map[string]any)["method"])

	got, err := s.handler.GetAbilityDraft(s.ctx, s.request(map[string]any{"draftId": s.testDraftID}))
	s.Require().NoError(err)
	s.Equal(s.testPlayerID, got.AsMap()["draft"].(map[string]any)["playerId"])
	s.NotContains(got.AsMap(), "accepted")
}

func (s *HandlerTestSuite) TestGetClassRules() {
	s.mockCharService.EXPECT().
		GetClassRules(s.ctx, &character.GetClassRulesInput{ClassName: "wizard"}).
		Return(&character.GetClassRulesOutput{
			Class: &rules.Class{
				ID:            "wizard",
				Name:          "Wizard",
				HitDie:        6,
				Prerequisites: []rules.Requirement{{Ability: dnd5e.AbilityIntelligence, Minimum: 13}},
				SavingThrows:  []dnd5e.Ability{dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom},
				SkillChoices:  rules.SkillChoices{Count: 2, Options: []string{"arcana", "history"}},
				Spellcasting: &rules.CasterProfile{
					Ability:     dnd5e.AbilityIntelligence,
					Repertoire:  rules.RepertoirePrepared,
					Progression: rules.ProgressionFull,
				},
			},
		}, nil)

	resp, err := s.handler.GetClassRules(s.ctx, s.request(map[string]any{"className": "wizard"}))
	s.Require().NoError(err)

	class := resp.AsMap()["class"].(map[string]any)
	s.Equal("Wizard", class["name"])
	s.Equal(float64(6), class["hitDie"])
	s.Equal([]any{map[string]any{"ability": "intelligence", "minimum": float64(13)}}, class["prerequisites"])
	s.Equal("full", class["spellcasting"].(map[string]any)["progression"])
}

func (s *HandlerTestSuite) TestServiceErrorsKeepTheirCode() {
	s.mockCharService.EXPECT().
		GetClassRules(s.ctx, gomock.Any()).
		Return(nil, errors.Wrap(errors.NotFoundf("class %q not found", "bard"), "failed to get class rules"))

	_, err := s.handler.GetClassRules(s.ctx, s.request(map[string]any{"className": "bard"}))
	s.requireCode(err, codes.NotFound)
}
