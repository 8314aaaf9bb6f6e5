package reportservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/sacco/internal/domain"
)

//go:generate mockgen -source=reportservice.go -destination=mock_repo.go -package=reportservice

type MemberCounter interface {
	Count(ctx context.Context) (int, error)
}

type SavingsTotaler interface {
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
}

type WithdrawalCounter interface {
	CountByStatus(ctx context.Context, status domain.Status) (int, error)
}

type LoanReporter interface {
	CountByStatus(ctx context.Context, status domain.Status) (int, error)
	OutstandingTotal(ctx context.Context) (decimal.Decimal, error)
}

type Service struct {
	members     MemberCounter
	savings     SavingsTotaler
	withdrawals WithdrawalCounter
	loans       LoanReporter
}

func New(members MemberCounter, savings SavingsTotaler, withdrawals WithdrawalCounter, loans LoanReporter) *Service {
	return &Service{
		members:     members,
		savings:     savings,
		withdrawals: withdrawals,
		loans:       loans,
	}
}

// Summary gathers the cooperative-wide figures concurrently.
func (s *Service) Summary(ctx context.Context, actor domain.Actor) (*domain.Summary, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var summary domain.Summary
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary.Members, err = s.members.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalSavings, err = s.savings.TotalBalance(ctx)
		return err
	})
	g.Go(func() (err error) {
		summary.PendingWithdrawals, err = s.withdrawals.CountByStatus(ctx, domain.StatusPending)
		return err
	})
	g.Go(func() (err error) {
		summary.PendingLoans, err = s.loans.CountByStatus(ctx, domain.StatusPending)
		return err
	})
	g.Go(func() (err error) {
		summary.OutstandingLoans, err = s.loans.OutstandingTotal(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build summary", zap.Error(err))
		return nil, err
	}
	return &summary, nil
}
