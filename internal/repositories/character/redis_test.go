package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-sheet/internal/pkg/clock/mock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const (
	testCharID    = "char_123"
	testPlayerID  = "player_456"
	testCharKey   = "character:char_123"
	testPlayerKey = "character:player:player_456"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	client    redisclient.Client
	cleanup   func()
	repo      character.Repository
	ctx       context.Context
	now       time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	s.client, s.mr, s.cleanup = testutils.CreateTestRedisServer(s.T())

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: s.client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) sheet(id, playerID string) *dnd5e.Character {
	ac := 12
	return &dnd5e.Character{
		ID:         id,
		UserID:     playerID,
		Name:       testutils.TestCharacterName,
		Race:       "Elf",
		Background: "Sage",
		Alignment:  "Neutral Good",
		Classes: []dnd5e.ClassEntry{
			{ClassName: dnd5e.ClassWizard, Level: 1, HitDiceSize: 6},
		},
		TotalLevel:       1,
		Abilities:        dnd5e.UniformScores(10),
		ProficiencyBonus: 2,
		ArmorClass:       &ac,
		Proficiencies: dnd5e.Proficiencies{
			SavingThrows: []dnd5e.Ability{dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom},
			Skills:       []string{dnd5e.SkillArcana},
			Armor:        []string{},
			Weapons:      []string{},
			Tools:        []string{},
			Languages:    []string{"Common"},
		},
		Equipment: []dnd5e.EquipmentItem{},
		Features:  []dnd5e.Feature{},
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis() {
	_, err := character.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = character.NewRedis(&character.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	repo, err := character.NewRedis(&character.RedisConfig{Client: s.client})
	s.NoError(err)
	s.NotNil(repo)
}

func (s *RedisRepositoryTestSuite) TestCreate() {
	s.Run("stores the sheet and player index", func() {
		input := s.sheet(testCharID, testPlayerID)

		out, err := s.repo.Create(s.ctx, character.CreateInput{Character: input})
		s.Require().NoError(err)
		s.Equal(s.now.Unix(), out.Character.CreatedAt)
		s.Equal(s.now.Unix(), out.Character.UpdatedAt)
		s.Zero(input.CreatedAt, "input is not modified")

		s.True(s.mr.Exists(testCharKey))
		members, err := s.mr.SMembers(testPlayerKey)
		s.Require().NoError(err)
		s.Equal([]string{testCharID}, members)
	})

	s.Run("rejects duplicates", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.sheet(testCharID, testPlayerID)})
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("sheet without owner is not indexed", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.sheet("char_orphan", "")})
		s.Require().NoError(err)
		s.True(s.mr.Exists("character:char_orphan"))
	})

	s.Run("invalid input", func() {
		_, err := s.repo.Create(s.ctx, character.CreateInput{})
		s.True(errors.IsInvalidArgument(err))

		_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.sheet("", testPlayerID)})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGet() {
	input := s.sheet(testCharID, testPlayerID)
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: input})
	s.Require().NoError(err)

	s.Run("round trips the stored sheet", func() {
		out, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
		s.Require().NoError(err)
		s.Equal(created.Character, out.Character)
		s.Require().NotNil(out.Character.ArmorClass)
		s.Equal(12, *out.Character.ArmorClass)
	})

	s.Run("missing sheet", func() {
		_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_missing"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty id", func() {
		_, err := s.repo.Get(s.ctx, character.GetInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("corrupt record", func() {
		s.Require().NoError(s.mr.Set("character:char_bad", "{not json"))
		_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_bad"})
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
	})
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.sheet(testCharID, testPlayerID)})
	s.Require().NoError(err)
	createdAt := s.now.Unix()

	s.now = s.now.Add(time.Hour)

	s.Run("keeps creation time", func() {
		sheet := s.sheet(testCharID, testPlayerID)
		sheet.Name = "Elira the Wise"

		out, err := s.repo.Update(s.ctx, character.UpdateInput{Character: sheet})
		s.Require().NoError(err)
		s.Equal(createdAt, out.Character.CreatedAt)
		s.Equal(s.now.Unix(), out.Character.UpdatedAt)

		got, err := s.repo.Get(s.ctx, character.GetInput{ID: testCharID})
		s.Require().NoError(err)
		s.Equal("Elira the Wise", got.Character.Name)
	})

	s.Run("moves the player index", func() {
		_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: s.sheet(testCharID, "player_new")})
		s.Require().NoError(err)

		isOld, _ := s.mr.SIsMember(testPlayerKey, testCharID)
		isNew, _ := s.mr.SIsMember("character:player:player_new", testCharID)
		s.False(isOld)
		s.True(isNew)
	})

	s.Run("missing sheet", func() {
		_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: s.sheet("char_missing", testPlayerID)})
		s.True(errors.IsNotFound(err))
	})

	s.Run("nil sheet", func() {
		_, err := s.repo.Update(s.ctx, character.UpdateInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.sheet(testCharID, testPlayerID)})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.Require().NoError(err)
	s.False(s.mr.Exists(testCharKey))
	isMember, _ := s.mr.SIsMember(testPlayerKey, testCharID)
	s.False(isMember)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: testCharID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	for _, id := range []string{"char_b", "char_a", "char_c"} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.sheet(id, testPlayerID)})
		s.Require().NoError(err)
	}
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.sheet("char_other", "player_other")})
	s.Require().NoError(err)

	s.Run("ordered by id", func() {
		out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
		s.Require().NoError(err)
		s.Require().Len(out.Characters, 3)
		s.Equal("char_a", out.Characters[0].ID)
		s.Equal("char_b", out.Characters[1].ID)
		s.Equal("char_c", out.Characters[2].ID)
	})

	s.Run("cleans up stale index entries", func() {
		s.mr.Del("character:char_b")

		out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: testPlayerID})
		s.Require().NoError(err)
		s.Len(out.Characters, 2)

		isMember, _ := s.mr.SIsMember(testPlayerKey, "char_b")
		s.False(isMember)
	})

	s.Run("unknown player", func() {
		out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "nobody"})
		s.Require().NoError(err)
		s.Empty(out.Characters)
	})

	s.Run("empty player id", func() {
		_, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
