package loanrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var ts = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func loanRows(loans ...domain.Loan) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "user_id", "product_id", "amount", "purpose", "description", "term_months", "interest_rate", "status", "created_at", "processed_at"})
	for _, l := range loans {
		rows.AddRow(l.ID, l.UserID, l.ProductID, l.Amount, l.Purpose, l.Description, l.TermMonths, l.InterestRate, l.Status, l.CreatedAt, l.ProcessedAt)
	}
	return rows
}

func pendingLoan() domain.Loan {
	productID := 4
	return domain.Loan{
		ID:           99,
		UserID:       7,
		ProductID:    &productID,
		Amount:       decimal.RequireFromString("10000.00"),
		Purpose:      "school fees",
		TermMonths:   12,
		InterestRate: decimal.RequireFromString("12.5"),
		Status:       domain.StatusPending,
		CreatedAt:    ts,
		ProcessedAt:  (*time.Time)(nil),
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Loan saved",
			mockSetup: func() {
				productID := 4
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loans")).
					WithArgs(7, &productID, "10000.00", "school fees", "", 12, "12.5", "PENDING", pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(99))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loans")).
					WithArgs(7, pgxmock.AnyArg(), "10000.00", "school fees", "", 12, "12.5", "PENDING", pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			loan := pendingLoan()
			loan.ID = 0
			err := repo.Save(context.Background(), &loan)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 99, loan.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Find(t *testing.T) {
	repo, mock := NewMock(t)
	stored := pendingLoan()

	mock.ExpectQuery(regexp.QuoteMeta("FROM loans WHERE id = $1")).
		WithArgs(99).
		WillReturnRows(loanRows(stored))
	loan, err := repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Equal(t, &stored, loan)

	mock.ExpectQuery(regexp.QuoteMeta("FROM loans WHERE id = $1 FOR UPDATE")).
		WithArgs(100).
		WillReturnError(pgx.ErrNoRows)
	loan, err = repo.FindForUpdate(context.Background(), 100)
	assert.NoError(t, err)
	assert.Nil(t, loan)

	mock.ExpectQuery(regexp.QuoteMeta("FROM loans WHERE id = $1 FOR UPDATE")).
		WithArgs(101).
		WillReturnError(errors.New("database error"))
	_, err = repo.FindForUpdate(context.Background(), 101)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	processedAt := ts.Add(time.Hour)
	approved := pendingLoan()
	approved.Status = domain.StatusApproved
	approved.ProcessedAt = &processedAt

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE loans")).
		WithArgs("APPROVED", processedAt, 99).
		WillReturnRows(loanRows(approved))
	loan, err := repo.UpdateStatus(context.Background(), 99, domain.StatusApproved, processedAt)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, loan.Status)
	assert.Equal(t, processedAt, *loan.ProcessedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Lists(t *testing.T) {
	repo, mock := NewMock(t)
	loan := pendingLoan()

	mock.ExpectQuery(regexp.QuoteMeta("FROM loans WHERE user_id = $1")).
		WithArgs(7).
		WillReturnRows(loanRows(loan, loan))
	loans, err := repo.FindLoansByUserID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, loans, 2)

	mock.ExpectQuery(regexp.QuoteMeta("FROM loans WHERE status = $1")).
		WithArgs("PENDING").
		WillReturnRows(loanRows(loan))
	loans, err = repo.FindLoansByStatus(context.Background(), domain.StatusPending)
	assert.NoError(t, err)
	assert.Len(t, loans, 1)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM loans WHERE status = $1")).
		WithArgs("PENDING").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	count, err := repo.CountByStatus(context.Background(), domain.StatusPending)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Outstanding(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT GREATEST(")).
		WithArgs(7, "APPROVED").
		WillReturnRows(pgxmock.NewRows([]string{"greatest"}).AddRow(decimal.RequireFromString("900.00")))
	outstanding, err := repo.OutstandingByUserID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "900.00", domain.FormatAmount(outstanding))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT GREATEST(")).
		WithArgs(8, "APPROVED").
		WillReturnError(errors.New("database error"))
	outstanding, err = repo.OutstandingByUserID(context.Background(), 8)
	assert.Error(t, err)
	assert.True(t, outstanding.IsZero())

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN")).
		WithArgs("APPROVED").
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.RequireFromString("4200.00")))
	total, err := repo.OutstandingTotal(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "4200.00", domain.FormatAmount(total))

	assert.NoError(t, mock.ExpectationsWereMet())
}
