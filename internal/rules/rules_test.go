package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type RulesTestSuite struct {
	suite.Suite
	rs *rules.Ruleset
}

func (s *RulesTestSuite) SetupTest() {
	s.rs = rules.Default()
}

func (s *RulesTestSuite) TestDefaultIsShared() {
	s.Same(s.rs, rules.Default())
}

func (s *RulesTestSuite) TestPointBuyTable() {
	s.Equal(27, s.rs.PointBuy.Budget)
	s.Equal(8, s.rs.PointBuy.Baseline)

	expected := map[int]int{8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9}
	for score, cost := range expected {
		got, ok := s.rs.PointCost(score)
		s.True(ok, "score %d", score)
		s.Equal(cost, got, "score %d", score)
	}

	_, ok := s.rs.PointCost(7)
	s.False(ok)
	_, ok = s.rs.PointCost(16)
	s.False(ok)
}

func (s *RulesTestSuite) TestStandardArray() {
	s.Equal([]int{15, 14, 13, 12, 10, 8}, s.rs.StandardArray)
}

func (s *RulesTestSuite) TestClassTable() {
	s.Len(s.rs.Classes, 12)

	testCases := []struct {
		name    string
		hitDie  int
		prereqs []rules.Requirement
		saves   []dnd5e.Ability
	}{
		{
			name:    dnd5e.ClassBarbarian,
			hitDie:  12,
			prereqs: []rules.Requirement{{Ability: dnd5e.AbilityStrength, Minimum: 13}},
			saves:   []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution},
		},
		{
			name:    dnd5e.ClassFighter,
			hitDie:  10,
			prereqs: []rules.Requirement{{Ability: dnd5e.AbilityStrength, Minimum: 13}},
			saves:   []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution},
		},
		{
			name:   dnd5e.ClassMonk,
			hitDie: 8,
			prereqs: []rules.Requirement{
				{Ability: dnd5e.AbilityDexterity, Minimum: 13},
				{Ability: dnd5e.AbilityWisdom, Minimum: 13},
			},
			saves: []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityDexterity},
		},
		{
			name:   dnd5e.ClassPaladin,
			hitDie: 10,
			prereqs: []rules.Requirement{
				{Ability: dnd5e.AbilityStrength, Minimum: 13},
				{Ability: dnd5e.AbilityCharisma, Minimum: 13},
			},
			saves: []dnd5e.Ability{dnd5e.AbilityWisdom, dnd5e.AbilityCharisma},
		},
		{
			name:    dnd5e.ClassSorcerer,
			hitDie:  6,
			prereqs: []rules.Requirement{{Ability: dnd5e.AbilityCharisma, Minimum: 13}},
			saves:   []dnd5e.Ability{dnd5e.AbilityConstitution, dnd5e.AbilityCharisma},
		},
		{
			name:    dnd5e.ClassWizard,
			hitDie:  6,
			prereqs: []rules.Requirement{{Ability: dnd5e.AbilityIntelligence, Minimum: 13}},
			saves:   []dnd5e.Ability{dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			class, ok := s.rs.Class(tc.name)
			s.Require().True(ok)
			s.Equal(tc.hitDie, class.HitDie)
			s.Equal(tc.prereqs, class.Prerequisites)
			s.Equal(tc.saves, class.SavingThrows)
		})
	}
}

func (s *RulesTestSuite) TestClassLookupIgnoresCase() {
	class, ok := s.rs.Class("  wIzArD ")
	s.Require().True(ok)
	s.Equal(dnd5e.ClassWizard, class.Name)

	_, ok = s.rs.Class("Artificer")
	s.False(ok)
}

func (s *RulesTestSuite) TestCasterProfiles() {
	casters := map[string]rules.CasterProfile{
		dnd5e.ClassBard:     {Ability: dnd5e.AbilityCharisma, Repertoire: rules.RepertoireKnown, Progression: rules.ProgressionFull},
		dnd5e.ClassCleric:   {Ability: dnd5e.AbilityWisdom, Repertoire: rules.RepertoirePrepared, Progression: rules.ProgressionFull},
		dnd5e.ClassDruid:    {Ability: dnd5e.AbilityWisdom, Repertoire: rules.RepertoirePrepared, Progression: rules.ProgressionFull},
		dnd5e.ClassPaladin:  {Ability: dnd5e.AbilityCharisma, Repertoire: rules.RepertoirePrepared, Progression: rules.ProgressionHalf},
		dnd5e.ClassRanger:   {Ability: dnd5e.AbilityWisdom, Repertoire: rules.RepertoireKnown, Progression: rules.ProgressionHalf},
		dnd5e.ClassSorcerer: {Ability: dnd5e.AbilityCharisma, Repertoire: rules.RepertoireKnown, Progression: rules.ProgressionFull},
		dnd5e.ClassWarlock:  {Ability: dnd5e.AbilityCharisma, Repertoire: rules.RepertoireKnown, Progression: rules.ProgressionFull},
		dnd5e.ClassWizard:   {Ability: dnd5e.AbilityIntelligence, Repertoire: rules.RepertoirePrepared, Progression: rules.ProgressionFull},
	}

	for _, class := range s.rs.Classes {
		expected, isCaster := casters[class.Name]
		s.Equal(isCaster, class.IsCaster(), class.Name)
		if isCaster {
			s.Equal(expected, *class.Spellcasting, class.Name)
		}
	}
}

func (s *RulesTestSuite) TestSkillChoicesReferenceKnownSkills() {
	for _, class := range s.rs.Classes {
		s.GreaterOrEqual(len(class.SkillChoices.Options), class.SkillChoices.Count, class.Name)
		for _, opt := range class.SkillChoices.Options {
			_, ok := s.rs.Skill(opt)
			s.True(ok, "%s lists unknown skill %s", class.Name, opt)
		}
	}

	skill, ok := s.rs.Skill("Sleight-Of-Hand")
	s.Require().True(ok)
	s.Equal(dnd5e.AbilityDexterity, skill.Ability)
	s.Len(s.rs.Skills, 18)
}

func (s *RulesTestSuite) TestSlotsForLevel() {
	s.Nil(s.rs.SlotsForLevel(0))
	s.Equal([]int{2}, s.rs.SlotsForLevel(1))
	s.Equal([]int{4, 2}, s.rs.SlotsForLevel(3))
	s.Equal([]int{4, 3, 3, 3, 2, 1, 1, 1, 1}, s.rs.SlotsForLevel(17))
	s.Equal([]int{4, 3, 3, 3, 3, 2, 2, 1, 1}, s.rs.SlotsForLevel(20))
	s.Equal(s.rs.SlotsForLevel(20), s.rs.SlotsForLevel(25))

	// returned rows are copies
	row := s.rs.SlotsForLevel(1)
	row[0] = 99
	s.Equal([]int{2}, s.rs.SlotsForLevel(1))
}

func (s *RulesTestSuite) TestClassNamesSorted() {
	names := s.rs.ClassNames()
	s.Len(names, 12)
	s.Equal(dnd5e.ClassBarbarian, names[0])
	s.Equal(dnd5e.ClassWizard, names[11])
}

func (s *RulesTestSuite) TestLoadRejectsIncompleteTables() {
	data := []byte(`
point_buy:
  budget: 0
  baseline: 8
  minimum: 8
  maximum: 9
  costs: {8: 0}
standard_array: [15, 14]
classes:
  - id: knight
    name: Knight
    hit_die: 7
    saving_throws: [luck]
`)
	rs, err := rules.Load(data)
	s.Nil(rs)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "point_buy.budget: must be positive")
	s.Contains(err.Error(), "missing cost for score 9")
	s.Contains(err.Error(), "standard_array: must have 6 scores")
	s.Contains(err.Error(), "invalid hit die 7")
	s.Contains(err.Error(), `unknown ability "luck"`)
	s.Contains(err.Error(), "missing level 1")
}

func (s *RulesTestSuite) TestLoadRejectsMalformedYAML() {
	_, err := rules.Load([]byte("classes: [unterminated"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RulesTestSuite) TestLoadFile() {
	src, err := os.ReadFile(filepath.Join("data", "srd5e.yaml"))
	s.Require().NoError(err)

	path := filepath.Join(s.T().TempDir(), "rules.yaml")
	s.Require().NoError(os.WriteFile(path, src, 0o600))

	rs, err := rules.LoadFile(path)
	s.Require().NoError(err)
	s.Len(rs.Classes, 12)

	_, err = rules.LoadFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Error(err)
}

func TestRulesTestSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}
