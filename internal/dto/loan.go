package dto

import (
	"time"

	"github.com/GlebRadaev/sacco/internal/domain"
)

type LoanProductRequestDTO struct {
	Name                 string  `json:"name" validate:"required,max=100" example:"Development"`
	InterestRate         string  `json:"interest_rate" validate:"required,numeric" example:"12.50"`
	MaxAmount            string  `json:"max_amount" validate:"required,numeric" example:"50000.00"`
	MaxTerm              int     `json:"max_term" validate:"required,gt=0" example:"24"`
	MinSavingsPercentage *string `json:"min_savings_percentage,omitempty" validate:"omitempty,numeric" example:"25"`
	Description          string  `json:"description" validate:"max=500"`
}

type LoanProductResponseDTO struct {
	ID                   int       `json:"id" example:"4"`
	Name                 string    `json:"name" example:"Development"`
	InterestRate         string    `json:"interest_rate" example:"12.50"`
	MaxAmount            string    `json:"max_amount" example:"50000.00"`
	MaxTerm              int       `json:"max_term" example:"24"`
	MinSavingsPercentage *string   `json:"min_savings_percentage,omitempty" example:"25.00"`
	Description          string    `json:"description,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func NewLoanProductResponse(p domain.LoanProduct) LoanProductResponseDTO {
	resp := LoanProductResponseDTO{
		ID:           p.ID,
		Name:         p.Name,
		InterestRate: domain.FormatAmount(p.InterestRate),
		MaxAmount:    domain.FormatAmount(p.MaxAmount),
		MaxTerm:      p.MaxTerm,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
	}
	if p.MinSavingsPercentage != nil {
		pct := domain.FormatAmount(*p.MinSavingsPercentage)
		resp.MinSavingsPercentage = &pct
	}
	return resp
}

type LoanApplicationRequestDTO struct {
	UserID      int    `json:"user_id" validate:"omitempty,gt=0" example:"7"`
	ProductID   *int   `json:"product_id,omitempty" validate:"omitempty,gt=0" example:"4"`
	Amount      string `json:"amount" validate:"required,numeric" example:"10000.00"`
	Purpose     string `json:"purpose" validate:"required,max=200" example:"School fees"`
	TermMonths  int    `json:"term_months" validate:"required,gt=0" example:"12"`
	Description string `json:"description" validate:"max=1000"`
}

type LoanResponseDTO struct {
	ID           int        `json:"id" example:"99"`
	UserID       int        `json:"user_id" example:"7"`
	ProductID    *int       `json:"product_id,omitempty" example:"4"`
	Amount       string     `json:"amount" example:"10000.00"`
	Purpose      string     `json:"purpose" example:"School fees"`
	Description  string     `json:"description,omitempty"`
	TermMonths   int        `json:"term_months" example:"12"`
	InterestRate string     `json:"interest_rate" example:"12.50"`
	Status       string     `json:"status" example:"PENDING"`
	CreatedAt    time.Time  `json:"created_at"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
}

func NewLoanResponse(l domain.Loan) LoanResponseDTO {
	return LoanResponseDTO{
		ID:           l.ID,
		UserID:       l.UserID,
		ProductID:    l.ProductID,
		Amount:       domain.FormatAmount(l.Amount),
		Purpose:      l.Purpose,
		Description:  l.Description,
		TermMonths:   l.TermMonths,
		InterestRate: domain.FormatAmount(l.InterestRate),
		Status:       string(l.Status),
		CreatedAt:    l.CreatedAt,
		ProcessedAt:  l.ProcessedAt,
	}
}

func NewLoansResponse(loans []domain.Loan) []LoanResponseDTO {
	out := make([]LoanResponseDTO, len(loans))
	for i, l := range loans {
		out[i] = NewLoanResponse(l)
	}
	return out
}

type RepaymentRequestDTO struct {
	Amount string `json:"amount" validate:"required,numeric" example:"300.00"`
	Method string `json:"method" validate:"required" example:"BANK_TRANSFER"`
	Notes  string `json:"notes" validate:"max=500"`
}

type RepaymentResponseDTO struct {
	ID        int       `json:"id" example:"5"`
	LoanID    int       `json:"loan_id" example:"99"`
	Amount    string    `json:"amount" example:"300.00"`
	Method    string    `json:"method" example:"BANK_TRANSFER"`
	Notes     string    `json:"notes,omitempty"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRepaymentResponse(r domain.Repayment) RepaymentResponseDTO {
	return RepaymentResponseDTO{
		ID:        r.ID,
		LoanID:    r.LoanID,
		Amount:    domain.FormatAmount(r.Amount),
		Method:    string(r.Method),
		Notes:     r.Notes,
		Reference: r.Reference,
		CreatedAt: r.CreatedAt,
	}
}

func (req LoanProductRequestDTO) ToDomain() (*domain.LoanProduct, error) {
	rate, err := domain.ParsePercentage(req.InterestRate)
	if err != nil {
		return nil, err
	}
	maxAmount, err := domain.ParseAmount(req.MaxAmount)
	if err != nil {
		return nil, err
	}
	product := &domain.LoanProduct{
		Name:         req.Name,
		InterestRate: rate,
		MaxAmount:    maxAmount,
		MaxTerm:      req.MaxTerm,
		Description:  req.Description,
	}
	if req.MinSavingsPercentage != nil {
		pct, err := domain.ParsePercentage(*req.MinSavingsPercentage)
		if err != nil {
			return nil, err
		}
		product.MinSavingsPercentage = &pct
	}
	return product, nil
}
