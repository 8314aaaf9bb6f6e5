package dto

import "github.com/GlebRadaev/sacco/internal/domain"

type SummaryResponseDTO struct {
	Members            int    `json:"members" example:"120"`
	TotalSavings       string `json:"total_savings" example:"153000.50"`
	PendingWithdrawals int    `json:"pending_withdrawals" example:"3"`
	PendingLoans       int    `json:"pending_loans" example:"2"`
	OutstandingLoans   string `json:"outstanding_loans" example:"42000.00"`
}

func NewSummaryResponse(s domain.Summary) SummaryResponseDTO {
	return SummaryResponseDTO{
		Members:            s.Members,
		TotalSavings:       domain.FormatAmount(s.TotalSavings),
		PendingWithdrawals: s.PendingWithdrawals,
		PendingLoans:       s.PendingLoans,
		OutstandingLoans:   domain.FormatAmount(s.OutstandingLoans),
	}
}

type BatchResultDTO struct {
	Members         int   `json:"members" example:"120"`
	Recommendations int   `json:"recommendations" example:"210"`
	Failed          []int `json:"failed_user_ids,omitempty"`
}
