package dto

import (
	"time"

	"github.com/GlebRadaev/sacco/internal/domain"
)

type SavingsResponseDTO struct {
	ID            int       `json:"id" example:"3"`
	UserID        int       `json:"user_id" example:"7"`
	ProductID     *int      `json:"product_id,omitempty" example:"1"`
	AccountNumber string    `json:"account_number" example:"71000000075"`
	Balance       string    `json:"balance" example:"1000.00"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewSavingsResponse(s domain.Savings) SavingsResponseDTO {
	return SavingsResponseDTO{
		ID:            s.ID,
		UserID:        s.UserID,
		ProductID:     s.ProductID,
		AccountNumber: s.AccountNumber,
		Balance:       domain.FormatAmount(s.Balance),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

type DepositRequestDTO struct {
	Amount string `json:"amount" validate:"required,numeric" example:"250.00"`
	Method string `json:"method" validate:"required" example:"CASH"`
	Notes  string `json:"notes" validate:"max=500" example:"March salary"`
}

type DepositResponseDTO struct {
	ID        int       `json:"id" example:"11"`
	SavingsID int       `json:"savings_id" example:"3"`
	Amount    string    `json:"amount" example:"250.00"`
	Method    string    `json:"method" example:"CASH"`
	Notes     string    `json:"notes,omitempty"`
	Reference string    `json:"reference" example:"3f0e5b7c-3c1b-4a8e-9d43-0b9f7d0c2a11"`
	CreatedAt time.Time `json:"created_at"`
}

func NewDepositResponse(d domain.Deposit) DepositResponseDTO {
	return DepositResponseDTO{
		ID:        d.ID,
		SavingsID: d.SavingsID,
		Amount:    domain.FormatAmount(d.Amount),
		Method:    string(d.Method),
		Notes:     d.Notes,
		Reference: d.Reference,
		CreatedAt: d.CreatedAt,
	}
}

type WithdrawalRequestDTO struct {
	Amount string `json:"amount" validate:"required,numeric" example:"400.00"`
	Method string `json:"method" validate:"required" example:"MOBILE_MONEY"`
	Reason string `json:"reason" validate:"max=500" example:"School fees"`
}

type WithdrawalResponseDTO struct {
	ID          int        `json:"id" example:"21"`
	SavingsID   int        `json:"savings_id" example:"3"`
	Amount      string     `json:"amount" example:"400.00"`
	Method      string     `json:"method" example:"MOBILE_MONEY"`
	Reason      string     `json:"reason,omitempty"`
	Status      string     `json:"status" example:"PENDING"`
	Reference   string     `json:"reference"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

func NewWithdrawalResponse(w domain.Withdrawal) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:          w.ID,
		SavingsID:   w.SavingsID,
		Amount:      domain.FormatAmount(w.Amount),
		Method:      string(w.Method),
		Reason:      w.Reason,
		Status:      string(w.Status),
		Reference:   w.Reference,
		CreatedAt:   w.CreatedAt,
		ProcessedAt: w.ProcessedAt,
	}
}

func NewWithdrawalsResponse(ws []domain.Withdrawal) []WithdrawalResponseDTO {
	out := make([]WithdrawalResponseDTO, len(ws))
	for i, w := range ws {
		out[i] = NewWithdrawalResponse(w)
	}
	return out
}

type SavingsProductRequestDTO struct {
	Name           string `json:"name" validate:"required,max=100" example:"Fixed deposit"`
	InterestRate   string `json:"interest_rate" validate:"required,numeric" example:"5.50"`
	MinimumBalance string `json:"minimum_balance" validate:"omitempty,numeric" example:"100.00"`
	TermMonths     int    `json:"term_months" validate:"gte=0" example:"12"`
	Description    string `json:"description" validate:"max=500"`
}

type SavingsProductResponseDTO struct {
	ID             int       `json:"id" example:"1"`
	Name           string    `json:"name" example:"Fixed deposit"`
	InterestRate   string    `json:"interest_rate" example:"5.50"`
	MinimumBalance string    `json:"minimum_balance" example:"100.00"`
	TermMonths     int       `json:"term_months" example:"12"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewSavingsProductResponse(p domain.SavingsProduct) SavingsProductResponseDTO {
	return SavingsProductResponseDTO{
		ID:             p.ID,
		Name:           p.Name,
		InterestRate:   domain.FormatAmount(p.InterestRate),
		MinimumBalance: domain.FormatAmount(p.MinimumBalance),
		TermMonths:     p.TermMonths,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
	}
}

type AssignProductRequestDTO struct {
	ProductID int `json:"product_id" validate:"required,gt=0" example:"1"`
}
