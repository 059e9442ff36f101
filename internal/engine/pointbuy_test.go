package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type PointBuyTestSuite struct {
	suite.Suite
	ctx    context.Context
	engine engine.Engine
}

func (s *PointBuyTestSuite) SetupTest() {
	s.ctx = context.Background()
	e, err := engine.New(&engine.Config{})
	s.Require().NoError(err)
	s.engine = e
}

func (s *PointBuyTestSuite) propose(current dnd5e.AbilityScores, a dnd5e.Ability, v int) *engine.ProposePointBuyChangeOutput {
	out, err := s.engine.ProposePointBuyChange(s.ctx, &engine.ProposePointBuyChangeInput{
		Current: current,
		Ability: a,
		Value:   v,
	})
	s.Require().NoError(err)
	return out
}

func (s *PointBuyTestSuite) TestThreeFifteensExhaustBudget() {
	scores := dnd5e.UniformScores(8)
	for _, a := range []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityDexterity, dnd5e.AbilityConstitution} {
		out := s.propose(scores, a, 15)
		s.Require().True(out.Accepted, a)
		scores = out.Scores
	}

	summary, err := s.engine.SummarizePointBuy(s.ctx, &engine.SummarizePointBuyInput{Scores: scores})
	s.Require().NoError(err)
	s.Equal(27, summary.Summary.Used)
	s.Equal(0, summary.Summary.Remaining)
	s.True(summary.Summary.Valid)

	out := s.propose(scores, dnd5e.AbilityIntelligence, 9)
	s.False(out.Accepted)
	s.Equal(8, out.Scores.Intelligence)
	s.Equal(scores, out.Scores)
}

func (s *PointBuyTestSuite) TestRejectsScoresOutsidePointBuyRange() {
	base := dnd5e.UniformScores(8)

	out := s.propose(base, dnd5e.AbilityWisdom, 16)
	s.False(out.Accepted)
	s.Equal(base, out.Scores)

	out = s.propose(base, dnd5e.AbilityWisdom, 7)
	s.False(out.Accepted)
	s.Equal(base, out.Scores)
}

func (s *PointBuyTestSuite) TestLoweringAlwaysFits() {
	scores := dnd5e.AbilityScores{Strength: 15, Dexterity: 15, Constitution: 15, Intelligence: 8, Wisdom: 8, Charisma: 8}
	out := s.propose(scores, dnd5e.AbilityStrength, 12)
	s.True(out.Accepted)
	s.Equal(12, out.Scores.Strength)
	s.Equal(22, out.Summary.Used)
	s.Equal(5, out.Summary.Remaining)
}

func (s *PointBuyTestSuite) TestUnknownAbility() {
	_, err := s.engine.ProposePointBuyChange(s.ctx, &engine.ProposePointBuyChangeInput{
		Current: dnd5e.UniformScores(8),
		Ability: "luck",
		Value:   10,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *PointBuyTestSuite) TestSummaryOfScoresWithoutCost() {
	out, err := s.engine.SummarizePointBuy(s.ctx, &engine.SummarizePointBuyInput{Scores: dnd5e.UniformScores(10).With(dnd5e.AbilityCharisma, 18)})
	s.Require().NoError(err)
	s.False(out.Summary.Valid)
	s.Equal(27, out.Summary.Budget)
}

func TestPointBuyTestSuite(t *testing.T) {
	suite.Run(t, new(PointBuyTestSuite))
}

// Any sequence of proposals starting from the baseline stays within budget,
// and a rejected proposal never changes the scores.
func TestPointBuyNeverExceedsBudget(t *testing.T) {
	e, err := engine.New(&engine.Config{})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	abilities := dnd5e.AllAbilities()

	rapid.Check(t, func(t *rapid.T) {
		scores := dnd5e.UniformScores(8)
		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			a := abilities[rapid.IntRange(0, len(abilities)-1).Draw(t, "ability")]
			v := rapid.IntRange(6, 17).Draw(t, "value")

			out, err := e.ProposePointBuyChange(ctx, &engine.ProposePointBuyChangeInput{Current: scores, Ability: a, Value: v})
			if err != nil {
				t.Fatal(err)
			}
			if !out.Accepted && out.Scores != scores {
				t.Fatalf("rejected change modified scores")
			}
			if !out.Summary.Valid || out.Summary.Used > 27 || out.Summary.Remaining < 0 {
				t.Fatalf("scores %+v left budget: %+v", out.Scores, out.Summary)
			}
			scores = out.Scores
		}
	})
}
