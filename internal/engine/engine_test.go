package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// fixedRoller returns preset dice in order
type fixedRoller struct {
	dice []int
	err  error
}

func (r *fixedRoller) Roll(size int) (int, error) {
	rolls, err := r.RollN(1, size)
	if err != nil {
		return 0, err
	}
	return rolls[0], nil
}

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := r.dice[:count]
	r.dice = r.dice[count:]
	return out, nil
}

type EngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	roller *fixedRoller
	engine engine.Engine
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &fixedRoller{}

	e, err := engine.New(&engine.Config{DiceRoller: s.roller})
	s.Require().NoError(err)
	s.engine = e
}

func (s *EngineTestSuite) TestNewRequiresConfig() {
	e, err := engine.New(nil)
	s.Nil(e)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestUtilityMethods() {
	s.Equal(3, s.engine.CalculateAbilityModifier(16))
	s.Equal(-1, s.engine.CalculateAbilityModifier(8))
	s.Equal(2, s.engine.CalculateProficiencyBonus(1))
	s.Equal(4, s.engine.CalculateProficiencyBonus(9))
}

func (s *EngineTestSuite) TestNilInputs() {
	_, err := s.engine.ValidateCharacter(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.engine.ValidateUser(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
	_, err = s.engine.DeriveSpellcasting(s.ctx, &engine.DeriveSpellcastingInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.engine.TransitionAbilityScores(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestRollAbilityScores() {
	s.Run("drops the lowest die of each roll", func() {
		s.roller.dice = []int{
			6, 5, 5, 2, // 16
			1, 1, 1, 1, // 3
			6, 6, 6, 6, // 18
			3, 4, 2, 5, // 12
			4, 4, 4, 1, // 12
			2, 6, 3, 3, // 12
		}
		out, err := s.engine.RollAbilityScores(s.ctx, &engine.RollAbilityScoresInput{})
		s.Require().NoError(err)
		s.Equal([]int{16, 3, 18, 12, 12, 12}, out.Rolls)
	})

	s.Run("propagates roller failure", func() {
		s.roller.err = errors.Internal("dice jammed")
		defer func() { s.roller.err = nil }()

		_, err := s.engine.RollAbilityScores(s.ctx, &engine.RollAbilityScoresInput{})
		s.Require().Error(err)
		s.Contains(err.Error(), "failed to roll ability score")
	})
}

func (s *EngineTestSuite) TestGetClassRules() {
	s.Run("known class", func() {
		out, err := s.engine.GetClassRules(s.ctx, &engine.GetClassRulesInput{ClassName: "paladin"})
		s.Require().NoError(err)
		s.Equal(dnd5e.ClassPaladin, out.Class.Name)
		s.Equal(10, out.Class.HitDie)
		s.True(out.Class.IsCaster())
	})

	s.Run("unknown class", func() {
		_, err := s.engine.GetClassRules(s.ctx, &engine.GetClassRulesInput{ClassName: "Artificer"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty name", func() {
		_, err := s.engine.GetClassRules(s.ctx, &engine.GetClassRulesInput{ClassName: " "})
		s.True(errors.IsInvalidArgument(err))
	})
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
