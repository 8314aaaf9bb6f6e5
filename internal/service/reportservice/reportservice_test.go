package reportservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/sacco/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockMemberCounter, *MockSavingsTotaler, *MockWithdrawalCounter, *MockLoanReporter) {
	ctrl := gomock.NewController(t)
	members := NewMockMemberCounter(ctrl)
	savings := NewMockSavingsTotaler(ctrl)
	withdrawals := NewMockWithdrawalCounter(ctrl)
	loans := NewMockLoanReporter(ctrl)
	return New(members, savings, withdrawals, loans), members, savings, withdrawals, loans
}

func TestSummary(t *testing.T) {
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	t.Run("Aggregates all figures", func(t *testing.T) {
		service, members, savings, withdrawals, loans := NewMock(t)
		members.EXPECT().Count(gomock.Any()).Return(12, nil)
		savings.EXPECT().TotalBalance(gomock.Any()).Return(decimal.RequireFromString("15000.50"), nil)
		withdrawals.EXPECT().CountByStatus(gomock.Any(), domain.StatusPending).Return(3, nil)
		loans.EXPECT().CountByStatus(gomock.Any(), domain.StatusPending).Return(2, nil)
		loans.EXPECT().OutstandingTotal(gomock.Any()).Return(decimal.RequireFromString("4200"), nil)

		summary, err := service.Summary(context.Background(), admin)
		assert.NoError(t, err)
		assert.Equal(t, 12, summary.Members)
		assert.Equal(t, "15000.50", domain.FormatAmount(summary.TotalSavings))
		assert.Equal(t, 3, summary.PendingWithdrawals)
		assert.Equal(t, 2, summary.PendingLoans)
		assert.Equal(t, "4200.00", domain.FormatAmount(summary.OutstandingLoans))
	})

	t.Run("Any failing query fails the summary", func(t *testing.T) {
		service, members, savings, withdrawals, loans := NewMock(t)
		members.EXPECT().Count(gomock.Any()).Return(0, errors.New("db error")).AnyTimes()
		savings.EXPECT().TotalBalance(gomock.Any()).Return(decimal.Zero, nil).AnyTimes()
		withdrawals.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
		loans.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
		loans.EXPECT().OutstandingTotal(gomock.Any()).Return(decimal.Zero, nil).AnyTimes()

		summary, err := service.Summary(context.Background(), admin)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, summary)
	})

	t.Run("Members are forbidden", func(t *testing.T) {
		service, _, _, _, _ := NewMock(t)
		_, err := service.Summary(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleMember})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
