package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type SavingsProduct struct {
	ID             int             `db:"id"`
	Name           string          `db:"name"`
	InterestRate   decimal.Decimal `db:"interest_rate"`
	MinimumBalance decimal.Decimal `db:"minimum_balance"`
	TermMonths     int             `db:"term_months"`
	Description    string          `db:"description"`
	CreatedAt      time.Time       `db:"created_at"`
}

// Savings is the single savings account a member owns.
type Savings struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	ProductID     *int            `db:"product_id"`
	AccountNumber string          `db:"account_number"`
	Balance       decimal.Decimal `db:"balance"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type Deposit struct {
	ID        int             `db:"id"`
	SavingsID int             `db:"savings_id"`
	Amount    decimal.Decimal `db:"amount"`
	Method    Method          `db:"method"`
	Notes     string          `db:"notes"`
	Reference string          `db:"reference"`
	CreatedAt time.Time       `db:"created_at"`
}

type Withdrawal struct {
	ID          int             `db:"id"`
	SavingsID   int             `db:"savings_id"`
	Amount      decimal.Decimal `db:"amount"`
	Method      Method          `db:"method"`
	Reason      string          `db:"reason"`
	Status      Status          `db:"status"`
	Reference   string          `db:"reference"`
	CreatedAt   time.Time       `db:"created_at"`
	ProcessedAt *time.Time      `db:"processed_at"`
}

type LoanProduct struct {
	ID           int             `db:"id"`
	Name         string          `db:"name"`
	InterestRate decimal.Decimal `db:"interest_rate"`
	MaxAmount    decimal.Decimal `db:"max_amount"`
	MaxTerm      int             `db:"max_term"`
	// MinSavingsPercentage is nil when the product has no collateral rule.
	MinSavingsPercentage *decimal.Decimal `db:"min_savings_percentage"`
	Description          string           `db:"description"`
	CreatedAt            time.Time        `db:"created_at"`
}

type Loan struct {
	ID           int             `db:"id"`
	UserID       int             `db:"user_id"`
	ProductID    *int            `db:"product_id"`
	Amount       decimal.Decimal `db:"amount"`
	Purpose      string          `db:"purpose"`
	Description  string          `db:"description"`
	TermMonths   int             `db:"term_months"`
	InterestRate decimal.Decimal `db:"interest_rate"`
	Status       Status          `db:"status"`
	CreatedAt    time.Time       `db:"created_at"`
	ProcessedAt  *time.Time      `db:"processed_at"`
}

type Repayment struct {
	ID        int             `db:"id"`
	LoanID    int             `db:"loan_id"`
	Amount    decimal.Decimal `db:"amount"`
	Method    Method          `db:"method"`
	Notes     string          `db:"notes"`
	Reference string          `db:"reference"`
	CreatedAt time.Time       `db:"created_at"`
}

type BudgetCategory struct {
	ID        int             `db:"id"`
	UserID    int             `db:"user_id"`
	Name      string          `db:"name"`
	Type      CategoryType    `db:"type"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

type Recommendation struct {
	ID        int                `db:"id"`
	UserID    int                `db:"user_id"`
	Kind      RecommendationKind `db:"kind"`
	Message   string             `db:"message"`
	CreatedAt time.Time          `db:"created_at"`
}

type Summary struct {
	Members            int
	TotalSavings       decimal.Decimal
	PendingWithdrawals int
	PendingLoans       int
	OutstandingLoans   decimal.Decimal
}
