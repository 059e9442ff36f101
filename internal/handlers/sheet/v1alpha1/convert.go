package v1alpha1

import (
	"encoding/json"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Request keys
const (
	keyCharacter   = "character"
	keyPlayerID    = "playerId"
	keyCharacterID = "characterId"
	keyDraftID     = "draftId"
	keyClassName   = "className"
	keyEvent       = "event"
)

type validationView struct {
	IsValid       bool                `json:"isValid"`
	Errors        []string            `json:"errors"`
	FieldErrors   []errors.FieldError `json:"fieldErrors"`
	SanitizedData *dnd5e.Character    `json:"sanitizedData,omitempty"`
}

func newValidationView(result character.ValidationResult, sheet *dnd5e.Character) validationView {
	v := validationView{
		IsValid:       result.IsValid,
		Errors:        result.Errors,
		FieldErrors:   result.FieldErrors,
		SanitizedData: sheet,
	}
	if v.Errors == nil {
		v.Errors = []string{}
	}
	if v.FieldErrors == nil {
		v.FieldErrors = []errors.FieldError{}
	}
	return v
}

type pointBuyView struct {
	Used      int  `json:"used"`
	Remaining int  `json:"remaining"`
	Budget    int  `json:"budget"`
	Valid     bool `json:"valid"`
}

func newPointBuyView(s *engine.PointBuySummary) *pointBuyView {
	if s == nil {
		return nil
	}
	return &pointBuyView{Used: s.Used, Remaining: s.Remaining, Budget: s.Budget, Valid: s.Valid}
}

type derivationView struct {
	HasSpellcasting  bool                `json:"hasSpellcasting"`
	Ability          dnd5e.Ability       `json:"ability,omitempty"`
	Repertoire       rules.Repertoire    `json:"repertoire,omitempty"`
	CasterLevel      int                 `json:"casterLevel"`
	SpellAttackBonus int                 `json:"spellAttackBonus"`
	SpellSaveDC      int                 `json:"spellSaveDC"`
	Spellcasting     *dnd5e.Spellcasting `json:"spellcasting,omitempty"`
}

func newDerivationView(d *engine.SpellcastingDerivation) *derivationView {
	if d == nil {
		return nil
	}
	return &derivationView{
		HasSpellcasting:  d.HasSpellcasting,
		Ability:          d.Ability,
		Repertoire:       d.Repertoire,
		CasterLevel:      d.CasterLevel,
		SpellAttackBonus: d.SpellAttackBonus,
		SpellSaveDC:      d.SpellSaveDC,
		Spellcasting:     d.Spellcasting,
	}
}

type requirementView struct {
	Ability dnd5e.Ability `json:"ability"`
	Minimum int           `json:"minimum"`
}

type casterView struct {
	Ability     dnd5e.Ability     `json:"ability"`
	Repertoire  rules.Repertoire  `json:"repertoire"`
	Progression rules.Progression `json:"progression"`
}

type classView struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	HitDie        int               `json:"hitDie"`
	Prerequisites []requirementView `json:"prerequisites"`
	SavingThrows  []dnd5e.Ability   `json:"savingThrows"`
	SkillCount    int               `json:"skillCount"`
	SkillOptions  []string          `json:"skillOptions"`
	Spellcasting  *casterView       `json:"spellcasting,omitempty"`
}

func newClassView(c *rules.Class) *classView {
	if c == nil {
		return nil
	}
	v := &classView{
		ID:            c.ID,
		Name:          c.Name,
		HitDie:        c.HitDie,
		Prerequisites: make([]requirementView, 0, len(c.Prerequisites)),
		SavingThrows:  c.SavingThrows,
		SkillCount:    c.SkillChoices.Count,
		SkillOptions:  c.SkillChoices.Options,
	}
	for _, req := range c.Prerequisites {
		v.Prerequisites = append(v.Prerequisites, requirementView(req))
	}
	if c.Spellcasting != nil {
		v.Spellcasting = &casterView{
			Ability:     c.Spellcasting.Ability,
			Repertoire:  c.Spellcasting.Repertoire,
			Progression: c.Spellcasting.Progression,
		}
	}
	return v
}

// toStruct converts a json-tagged value into a protobuf Struct
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal response")
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal response")
	}

	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build response struct")
	}
	return out, nil
}

func stringField(req *structpb.Struct, key string) string {
	return req.GetFields()[key].GetStringValue()
}

// requireString reads a required string field
func requireString(req *structpb.Struct, key string) (string, error) {
	v := stringField(req, key)
	if v == "" {
		return "", errors.InvalidArgumentf("%s is required", key)
	}
	return v, nil
}

func requireDocument(req *structpb.Struct) (map[string]any, error) {
	doc := req.GetFields()[keyCharacter].GetStructValue()
	if doc == nil {
		return nil, errors.InvalidArgumentf("%s is required", keyCharacter)
	}
	return doc.AsMap(), nil
}

// wholeNumber reports v as an int when it has no fractional part
func wholeNumber(v *structpb.Value) (int, bool) {
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) {
		return 0, false
	}
	return int(n.NumberValue), true
}

// parseEvent reads a builder event from the request's event object
func parseEvent(req *structpb.Struct) (engine.BuilderEvent, error) {
	obj := req.GetFields()[keyEvent].GetStructValue()
	if obj == nil {
		return engine.BuilderEvent{}, errors.InvalidArgumentf("%s is required", keyEvent)
	}
	fields := obj.GetFields()

	vb := errors.NewValidationBuilder()
	event := engine.BuilderEvent{
		Kind:    engine.BuilderEventKind(fields["kind"].GetStringValue()),
		Method:  dnd5e.AbilityScoreMethod(fields["method"].GetStringValue()),
		Ability: dnd5e.Ability(fields["ability"].GetStringValue()),
	}
	if event.Kind == "" {
		vb.RequiredField("event.kind")
	}

	if raw, ok := fields["value"]; ok {
		value, whole := wholeNumber(raw)
		if !whole {
			vb.Field("event.value", "must be a whole number")
		}
		event.Value = value
	}

	if list := fields["rolls"].GetListValue(); list != nil {
		event.Rolls = make([]int, 0, len(list.GetValues()))
		for i, raw := range list.GetValues() {
			roll, whole := wholeNumber(raw)
			if !whole {
				vb.Fieldf("event.rolls", "entry %d must be a whole number", i)
				continue
			}
			event.Rolls = append(event.Rolls, roll)
		}
	}

	if err := vb.Build(); err != nil {
		return engine.BuilderEvent{}, err
	}
	return event, nil
}
