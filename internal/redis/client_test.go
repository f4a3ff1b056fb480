package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-gains/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
}

func (s *ClientTestSuite) TestNewClient() {
	s.Run("requires endpoint", func() {
		_, err := redis.NewClient("", nil)
		s.Error(err)
	})

	s.Run("host and port", func() {
		client, err := redis.NewClient(s.mr.Addr(), nil)
		s.Require().NoError(err)
		s.NoError(client.Ping(context.Background()).Err())
	})

	s.Run("url", func() {
		client, err := redis.NewClient("redis://"+s.mr.Addr()+"/0", &redis.Options{PoolSize: 2})
		s.Require().NoError(err)
		s.NoError(client.Set(context.Background(), "k", "v", 0).Err())
		got, err := s.mr.Get("k")
		s.Require().NoError(err)
		s.Equal("v", got)
	})

	s.Run("bad url", func() {
		_, err := redis.NewClient("redis://%zz", nil)
		s.Error(err)
	})
}

func (s *ClientTestSuite) TestMissingKey() {
	client, err := redis.NewClient(s.mr.Addr(), nil)
	s.Require().NoError(err)

	err = client.Get(context.Background(), "missing").Err()
	s.ErrorIs(err, redis.Nil)
}
