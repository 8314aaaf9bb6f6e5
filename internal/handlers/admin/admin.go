package admin

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/sacco/internal/batch"
	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/dto"
	"github.com/GlebRadaev/sacco/internal/handlers/common"
	"github.com/GlebRadaev/sacco/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_service.go -package=admin

type ReportService interface {
	Summary(ctx context.Context, actor domain.Actor) (*domain.Summary, error)
}

type BatchService interface {
	GenerateAll(ctx context.Context, actor domain.Actor) (*batch.Result, error)
}

type AdminHandler struct {
	reports ReportService
	batches BatchService
}

func New(reports ReportService, batches BatchService) *AdminHandler {
	return &AdminHandler{reports: reports, batches: batches}
}

// Summary godoc
//
//	@Summary	Cooperative-wide totals
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.SummaryResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/summary [get]
func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.Summary(r.Context(), common.Actor(r))
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSummaryResponse(*summary))
}

// GenerateAllRecommendations godoc
//
//	@Summary		Generate recommendations for every member
//	@Description	Runs the budget rules for all MEMBER users on a bounded worker pool
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BatchResultDTO
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Router			/api/admin/recommendations [post]
func (h *AdminHandler) GenerateAllRecommendations(w http.ResponseWriter, r *http.Request) {
	result, err := h.batches.GenerateAll(r.Context(), common.Actor(r))
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BatchResultDTO{
		Members:         result.Members,
		Recommendations: result.Recommendations,
		Failed:          result.Failed,
	})
}
