package responsecache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/clock"
	"github.com/KirkDiggler/wizarding-catalog/internal/redis"
	responsecache "github.com/KirkDiggler/wizarding-catalog/internal/repositories/response_cache"
	"github.com/KirkDiggler/wizarding-catalog/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Fake
	client  redis.Client
	mr      *miniredis.Miniredis
	cleanup func()
	repo    responsecache.Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFake(time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC))
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisServer(s.T(), nil)

	repo, err := responsecache.NewRedis(&responsecache.RedisConfig{
		Client: s.client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	testCases := []struct {
		name string
		cfg  *responsecache.RedisConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "missing client", cfg: &responsecache.RedisConfig{}},
		{name: "negative ttl", cfg: &responsecache.RedisConfig{Client: s.client, TTL: -time.Minute}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := responsecache.NewRedis(tc.cfg)
			s.Nil(repo)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestSetAndGet() {
	_, err := s.repo.Set(s.ctx, responsecache.SetInput{Key: "characters", Value: []byte(`[{"id":"1"}]`)})
	s.Require().NoError(err)

	s.True(s.mr.Exists("response_cache:characters"))
	s.Equal(responsecache.DefaultTTL, s.mr.TTL("response_cache:characters"))

	out, err := s.repo.Get(s.ctx, responsecache.GetInput{Key: "characters"})
	s.Require().NoError(err)
	s.Equal([]byte(`[{"id":"1"}]`), out.Value)
	s.Equal(s.clock.Now(), out.StoredAt)
}

func (s *RedisRepositoryTestSuite) TestGetMissingKey() {
	_, err := s.repo.Get(s.ctx, responsecache.GetInput{Key: "spells"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestExpiryByClock() {
	_, err := s.repo.Set(s.ctx, responsecache.SetInput{Key: "spells", Value: []byte(`[]`)})
	s.Require().NoError(err)

	s.clock.Advance(5 * time.Minute)

	_, err = s.repo.Get(s.ctx, responsecache.GetInput{Key: "spells"})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("response_cache:spells"))
}

func (s *RedisRepositoryTestSuite) TestExpiryByRedisTTL() {
	_, err := s.repo.Set(s.ctx, responsecache.SetInput{Key: "spells", Value: []byte(`[]`)})
	s.Require().NoError(err)

	s.mr.FastForward(responsecache.DefaultTTL)

	_, err = s.repo.Get(s.ctx, responsecache.GetInput{Key: "spells"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCorruptEntry() {
	s.Require().NoError(s.mr.Set("response_cache:characters", "not json"))

	_, err := s.repo.Get(s.ctx, responsecache.GetInput{Key: "characters"})
	s.Error(err)
	s.False(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestClearOnlyTouchesPrefix() {
	s.Require().NoError(s.mr.Set("unrelated", "keep"))
	for _, key := range []string{"characters", "spells"} {
		_, err := s.repo.Set(s.ctx, responsecache.SetInput{Key: key, Value: []byte(`[]`)})
		s.Require().NoError(err)
	}

	s.Require().NoError(s.repo.Clear(s.ctx))

	s.False(s.mr.Exists("response_cache:characters"))
	s.False(s.mr.Exists("response_cache:spells"))
	s.True(s.mr.Exists("unrelated"))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
