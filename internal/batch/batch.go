package batch

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/GlebRadaev/sacco/internal/domain"
)

//go:generate mockgen -source=batch.go -destination=mock_batch.go -package=batch

type MemberLister interface {
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

type Recommender interface {
	GenerateRecommendations(ctx context.Context, actor domain.Actor, userID int) ([]domain.Recommendation, error)
}

// Result summarises one run over all members.
type Result struct {
	Members         int
	Recommendations int
	Failed          []int
}

type Service struct {
	members     MemberLister
	recommender Recommender
	workers     int
}

func New(members MemberLister, recommender Recommender, workers int) *Service {
	return &Service{
		members:     members,
		recommender: recommender,
		workers:     workers,
	}
}

// GenerateAll produces recommendations for every MEMBER. A failure for one
// member is recorded in Result.Failed and does not stop the run.
func (s *Service) GenerateAll(ctx context.Context, actor domain.Actor) (*Result, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}
	members, err := s.members.ListByRole(ctx, domain.RoleMember)
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		result = &Result{Members: len(members)}
	)
	pool := NewWorkerPool(s.workers)
	for _, m := range members {
		userID := m.ID
		err := pool.AddTask(ctx, func() error {
			recs, err := s.recommender.GenerateRecommendations(ctx, actor, userID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, userID)
				return err
			}
			result.Recommendations += len(recs)
			return nil
		})
		if err != nil {
			pool.Close()
			return nil, err
		}
	}
	pool.Close()

	sort.Ints(result.Failed)
	zap.L().Info("Batch recommendations finished",
		zap.Int("members", result.Members),
		zap.Int("recommendations", result.Recommendations),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}
