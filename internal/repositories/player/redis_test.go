package player

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestRecordFirstResult() {
	record, err := s.repo.RecordResult(context.Background(), &RecordResultInput{
		Name:   "Alpha",
		Points: 3150,
		Won:    true,
	})
	s.Require().NoError(err)

	s.Equal("Alpha", record.Name)
	s.Equal(1, record.GamesPlayed)
	s.Equal(1, record.Wins)
	s.Equal(3150, record.TotalPoints)
	s.Equal(3150, record.BestScore)
}

func (s *RedisRepositoryTestSuite) TestRecordAccumulates() {
	results := []*RecordResultInput{
		{Name: "Beta", Points: 1200, Won: false},
		{Name: "Beta", Points: 3400, Won: true},
		{Name: "Beta", Points: 900, Won: false},
	}
	for _, result := range results {
		_, err := s.repo.RecordResult(context.Background(), result)
		s.Require().NoError(err)
	}

	record, err := s.repo.GetPlayerRecord(context.Background(), &GetPlayerRecordInput{Name: "Beta"})
	s.Require().NoError(err)

	s.Equal(3, record.GamesPlayed)
	s.Equal(1, record.Wins)
	s.Equal(5500, record.TotalPoints)
	s.Equal(3400, record.BestScore)
}

func (s *RedisRepositoryTestSuite) TestZeroPointMatchStillCounts() {
	record, err := s.repo.RecordResult(context.Background(), &RecordResultInput{Name: "Gamma"})
	s.Require().NoError(err)

	s.Equal(1, record.GamesPlayed)
	s.Equal(0, record.BestScore)
}

func (s *RedisRepositoryTestSuite) TestRecordsAreKeptPerPlayer() {
	_, err := s.repo.RecordResult(context.Background(), &RecordResultInput{Name: "Alpha", Points: 500})
	s.Require().NoError(err)
	_, err = s.repo.RecordResult(context.Background(), &RecordResultInput{Name: "Beta", Points: 3000, Won: true})
	s.Require().NoError(err)

	alpha, err := s.repo.GetPlayerRecord(context.Background(), &GetPlayerRecordInput{Name: "Alpha"})
	s.Require().NoError(err)
	s.Equal(0, alpha.Wins)
	s.Equal(500, alpha.BestScore)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentPlayer() {
	_, err := s.repo.GetPlayerRecord(context.Background(), &GetPlayerRecordInput{Name: "nobody"})
	s.Require().Error(err)
	s.Equal(ErrPlayerNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestEmptyNameRejected() {
	_, err := s.repo.RecordResult(context.Background(), &RecordResultInput{Name: "  "})
	s.Error(err)

	_, err = s.repo.GetPlayerRecord(context.Background(), nil)
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestConcurrentResultsKeepHighestScore() {
	points := []int{800, 3550, 1200, 3100, 450, 2950, 3300, 0}

	var wg sync.WaitGroup
	errs := make(chan error, len(points))
	for i, p := range points {
		wg.Add(1)
		go func(won bool, p int) {
			defer wg.Done()
			_, err := s.repo.RecordResult(context.Background(), &RecordResultInput{
				Name:   "Gamma",
				Points: p,
				Won:    won,
			})
			errs <- err
		}(i == 1, p)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.Require().NoError(err)
	}

	record, err := s.repo.GetPlayerRecord(context.Background(), &GetPlayerRecordInput{Name: "Gamma"})
	s.Require().NoError(err)

	s.Equal(len(points), record.GamesPlayed)
	s.Equal(1, record.Wins)
	s.Equal(15350, record.TotalPoints)
	s.Equal(3550, record.BestScore)
}

func (s *RedisRepositoryTestSuite) TestLowerScoreDoesNotReplaceBest() {
	for _, p := range []int{2000, 1500} {
		_, err := s.repo.RecordResult(context.Background(), &RecordResultInput{Name: "Delta", Points: p})
		s.Require().NoError(err)
	}

	best, err := s.client.HGet(context.Background(), playerKey("Delta"), fieldBestScore).Result()
	s.Require().NoError(err)
	s.Equal("2000", best)
}
