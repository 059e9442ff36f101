package engine

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// BuilderState is the ability score step of a character build
type BuilderState struct {
	Method dnd5e.AbilityScoreMethod
	Scores dnd5e.AbilityScores
}

// BuilderEventKind tags a BuilderEvent
type BuilderEventKind string

// Builder events
const (
	// EventSelectMethod switches the generation method
	EventSelectMethod BuilderEventKind = "select_method"
	// EventSetScore sets one ability under the active method's rules
	EventSetScore BuilderEventKind = "set_score"
	// EventApplyRolls switches to manual and assigns six rolled scores
	EventApplyRolls BuilderEventKind = "apply_rolls"
)

// BuilderEvent is a user action on the ability score step.
// Only the fields relevant to Kind are read.
type BuilderEvent struct {
	Kind    BuilderEventKind
	Method  dnd5e.AbilityScoreMethod
	Ability dnd5e.Ability
	Value   int
	Rolls   []int
}

// transition applies event to state. A rejected event returns state unchanged.
func (e *engine) transition(state BuilderState, event BuilderEvent) (BuilderState, bool) {
	switch event.Kind {
	case EventSelectMethod:
		return e.selectMethod(state, event.Method)
	case EventSetScore:
		return e.setScore(state, event.Ability, event.Value)
	case EventApplyRolls:
		return e.applyRolls(state, event.Rolls)
	default:
		return state, false
	}
}

func (e *engine) selectMethod(state BuilderState, method dnd5e.AbilityScoreMethod) (BuilderState, bool) {
	if _, valid := dnd5e.ParseAbilityScoreMethod(string(method)); !valid {
		return state, false
	}
	if method == state.Method {
		return state, true
	}

	switch method {
	case dnd5e.AbilityScoreMethodPointBuy:
		return BuilderState{Method: method, Scores: e.pointBuy.baseline()}, true
	case dnd5e.AbilityScoreMethodStandardArray:
		return BuilderState{Method: method, Scores: e.standardArray()}, true
	default:
		return BuilderState{Method: method, Scores: state.Scores}, true
	}
}

func (e *engine) setScore(state BuilderState, ability dnd5e.Ability, value int) (BuilderState, bool) {
	if _, valid := dnd5e.ParseAbility(string(ability)); !valid {
		return state, false
	}

	switch state.Method {
	case dnd5e.AbilityScoreMethodPointBuy:
		scores, accepted := e.pointBuy.propose(state.Scores, ability, value)
		return BuilderState{Method: state.Method, Scores: scores}, accepted
	case dnd5e.AbilityScoreMethodStandardArray:
		return e.swapStandardArray(state, ability, value)
	case dnd5e.AbilityScoreMethodManual:
		if !GeneralRange.Allows(value) {
			return state, false
		}
		return BuilderState{Method: state.Method, Scores: state.Scores.With(ability, value)}, true
	default:
		return state, false
	}
}

// swapStandardArray gives ability the array value and hands its old value to
// whichever ability held the requested one.
func (e *engine) swapStandardArray(state BuilderState, ability dnd5e.Ability, value int) (BuilderState, bool) {
	if !e.inStandardArray(value) {
		return state, false
	}
	current := state.Scores.Get(ability)
	if current == value {
		return state, true
	}
	for _, other := range dnd5e.AllAbilities() {
		if other != ability && state.Scores.Get(other) == value {
			scores := state.Scores.With(ability, value).With(other, current)
			return BuilderState{Method: state.Method, Scores: scores}, true
		}
	}
	return state, false
}

func (e *engine) applyRolls(state BuilderState, rolls []int) (BuilderState, bool) {
	abilities := dnd5e.AllAbilities()
	if len(rolls) != len(abilities) {
		return state, false
	}
	scores := dnd5e.AbilityScores{}
	for i, a := range abilities {
		if !GeneralRange.Allows(rolls[i]) {
			return state, false
		}
		scores = scores.With(a, rolls[i])
	}
	return BuilderState{Method: dnd5e.AbilityScoreMethodManual, Scores: scores}, true
}

func (e *engine) standardArray() dnd5e.AbilityScores {
	scores := dnd5e.AbilityScores{}
	for i, a := range dnd5e.AllAbilities() {
		scores = scores.With(a, e.rules.StandardArray[i])
	}
	return scores
}

func (e *engine) inStandardArray(value int) bool {
	for _, v := range e.rules.StandardArray {
		if v == value {
			return true
		}
	}
	return false
}

// rollAbilityScores rolls 4d6 and drops the lowest die, once per ability
func rollAbilityScores(roller dice.Roller) ([]int, error) {
	abilities := dnd5e.AllAbilities()
	scores := make([]int, 0, len(abilities))
	for range abilities {
		rolls, err := roller.RollN(4, 6)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll ability score")
		}
		if len(rolls) != 4 {
			return nil, errors.Internalf("expected 4 dice, got %d", len(rolls))
		}
		sorted := append([]int(nil), rolls...)
		sort.Ints(sorted)
		scores = append(scores, sorted[1]+sorted[2]+sorted[3])
	}
	return scores, nil
}
