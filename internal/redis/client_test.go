package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func (s *ClientTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
}

func (s *ClientTestSuite) TearDownTest() {
	s.mr.Close()
}

func (s *ClientTestSuite) TestNewClient() {
	s.Run("requires endpoint", func() {
		client, err := redis.NewClient("", nil)
		s.Nil(client)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("rejects negative database", func() {
		_, err := redis.NewClient(s.mr.Addr(), &redis.Options{DB: -1})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("connects with defaults", func() {
		client, err := redis.NewClient(s.mr.Addr(), nil)
		s.Require().NoError(err)
		defer func() { _ = client.Close() }()

		ctx := context.Background()
		s.Require().NoError(client.Set(ctx, "k", "v", 0).Err())
		s.Equal("v", mustGet(s, s.mr, "k"))
	})

	s.Run("authenticates with password", func() {
		s.mr.RequireAuth("secret")
		defer s.mr.RequireAuth("")

		client, err := redis.NewClient(s.mr.Addr(), &redis.Options{Password: "secret"})
		s.Require().NoError(err)
		defer func() { _ = client.Close() }()

		s.NoError(redis.Ping(context.Background(), client))
	})
}

func (s *ClientTestSuite) TestPing() {
	client, err := redis.NewClient(s.mr.Addr(), nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(context.Background(), client))

	s.mr.Close()
	err = redis.Ping(context.Background(), client)
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))

	// Restart so TearDownTest has a server to close
	s.Require().NoError(s.mr.Restart())
}

func mustGet(s *ClientTestSuite, mr *miniredis.Miniredis, key string) string {
	v, err := mr.Get(key)
	s.Require().NoError(err)
	return v
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
