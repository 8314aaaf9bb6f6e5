package dto

import (
	"time"

	"github.com/GlebRadaev/sacco/internal/domain"
)

type CategoryRequestDTO struct {
	Name   string `json:"name" validate:"max=100" example:"Rent"`
	Type   string `json:"type" validate:"required" example:"HOUSING"`
	Amount string `json:"amount" validate:"required,numeric" example:"800.00"`
}

type CategoryResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	UserID    int       `json:"user_id" example:"7"`
	Name      string    `json:"name" example:"Rent"`
	Type      string    `json:"type" example:"HOUSING"`
	Amount    string    `json:"amount" example:"800.00"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCategoryResponse(c domain.BudgetCategory) CategoryResponseDTO {
	return CategoryResponseDTO{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Type:      string(c.Type),
		Amount:    domain.FormatAmount(c.Amount),
		CreatedAt: c.CreatedAt,
	}
}

type RecommendationResponseDTO struct {
	ID        int       `json:"id" example:"5"`
	UserID    int       `json:"user_id" example:"7"`
	Kind      string    `json:"kind" example:"EMERGENCY_FUND"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRecommendationsResponse(recs []domain.Recommendation) []RecommendationResponseDTO {
	out := make([]RecommendationResponseDTO, len(recs))
	for i, r := range recs {
		out[i] = RecommendationResponseDTO{
			ID:        r.ID,
			UserID:    r.UserID,
			Kind:      string(r.Kind),
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}
