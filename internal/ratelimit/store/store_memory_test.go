package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"roster/internal/ratelimit/models"
)

var testPolicy = models.Policy{Limit: 3, Window: time.Minute}

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	now   time.Time
	ctx   context.Context
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.store = NewInMemoryStore(WithClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
}

func (s *InMemoryStoreSuite) TestAllowUpToLimit() {
	for i := range testPolicy.Limit {
		result, err := s.store.Allow(s.ctx, "submit:10.0.0.1", testPolicy)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(testPolicy.Limit-i-1, result.Remaining)
	}

	result, err := s.store.Allow(s.ctx, "submit:10.0.0.1", testPolicy)
	s.Require().NoError(err)
	s.False(result.Allowed)
	s.Equal(0, result.Remaining)
	s.Equal(60, result.RetryAfter)
}

func (s *InMemoryStoreSuite) TestKeysAreIndependent() {
	for range testPolicy.Limit {
		_, err := s.store.Allow(s.ctx, "submit:10.0.0.1", testPolicy)
		s.Require().NoError(err)
	}
	result, err := s.store.Allow(s.ctx, "submit:10.0.0.2", testPolicy)
	s.Require().NoError(err)
	s.True(result.Allowed)
}

func (s *InMemoryStoreSuite) TestWindowSlides() {
	_, err := s.store.Allow(s.ctx, "k", testPolicy)
	s.Require().NoError(err)
	s.now = s.now.Add(30 * time.Second)
	for range 2 {
		_, err := s.store.Allow(s.ctx, "k", testPolicy)
		s.Require().NoError(err)
	}

	result, err := s.store.Allow(s.ctx, "k", testPolicy)
	s.Require().NoError(err)
	s.False(result.Allowed)
	s.Equal(30, result.RetryAfter)

	s.now = s.now.Add(31 * time.Second)
	result, err = s.store.Allow(s.ctx, "k", testPolicy)
	s.Require().NoError(err)
	s.True(result.Allowed)
	s.Equal(0, result.Remaining)
}

func (s *InMemoryStoreSuite) TestReset() {
	for range testPolicy.Limit {
		_, err := s.store.Allow(s.ctx, "k", testPolicy)
		s.Require().NoError(err)
	}
	s.Require().NoError(s.store.Reset(s.ctx, "k"))

	result, err := s.store.Allow(s.ctx, "k", testPolicy)
	s.Require().NoError(err)
	s.True(result.Allowed)
}

func (s *InMemoryStoreSuite) TestExpiredKeysAreEvicted() {
	for i := range 20 {
		_, err := s.store.Allow(s.ctx, fmt.Sprintf("submit:10.0.0.%d", i), testPolicy)
		s.Require().NoError(err)
	}
	s.Len(s.store.windows, 20)

	s.now = s.now.Add(testPolicy.Window + sweepInterval)
	_, err := s.store.Allow(s.ctx, "submit:192.0.2.1", testPolicy)
	s.Require().NoError(err)
	s.Len(s.store.windows, 1, "only the live key survives")
}

func (s *InMemoryStoreSuite) TestConcurrentCallersNeverExceedLimit() {
	policy := models.Policy{Limit: 10, Window: time.Minute}
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 50 {
		wg.Go(func() {
			result, err := s.store.Allow(s.ctx, "burst", policy)
			if err == nil && result.Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		})
	}
	wg.Wait()
	s.Equal(policy.Limit, allowed)
}
