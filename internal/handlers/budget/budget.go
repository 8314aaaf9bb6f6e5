package budget

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/dto"
	"github.com/GlebRadaev/sacco/internal/handlers/common"
	"github.com/GlebRadaev/sacco/pkg/utils"
)

//go:generate mockgen -source=budget.go -destination=mock_service.go -package=budget

type Service interface {
	CreateCategory(ctx context.Context, actor domain.Actor, category *domain.BudgetCategory) (*domain.BudgetCategory, error)
	UpdateCategory(ctx context.Context, actor domain.Actor, category *domain.BudgetCategory) (*domain.BudgetCategory, error)
	DeleteCategory(ctx context.Context, actor domain.Actor, categoryID int) error
	GetCategories(ctx context.Context, actor domain.Actor, userID int) ([]domain.BudgetCategory, error)
	GenerateRecommendations(ctx context.Context, actor domain.Actor, userID int) ([]domain.Recommendation, error)
	GetRecommendations(ctx context.Context, actor domain.Actor, userID int) ([]domain.Recommendation, error)
	DeleteRecommendation(ctx context.Context, actor domain.Actor, recommendationID int) error
}

type BudgetHandler struct {
	budgetService Service
}

func New(budgetService Service) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// ListCategories godoc
//
//	@Summary	A member's budget categories
//	@Tags		Budget
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userID	path	int	true	"User ID"
//	@Success	200		{array}	dto.CategoryResponseDTO
//	@Failure	403		{object}	utils.Response	"Not the owner"
//	@Router		/api/users/{userID}/budget-categories [get]
func (h *BudgetHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "userID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	categories, err := h.budgetService.GetCategories(r.Context(), common.Actor(r), userID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	response := make([]dto.CategoryResponseDTO, len(categories))
	for i, c := range categories {
		response[i] = dto.NewCategoryResponse(c)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateCategory godoc
//
//	@Summary		Add a budget category
//	@Description	Name defaults to the type when empty
//	@Tags			Budget
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int						true	"User ID"
//	@Param			request	body		dto.CategoryRequestDTO	true	"Category"
//	@Success		201		{object}	dto.CategoryResponseDTO
//	@Failure		403		{object}	utils.Response	"Not the owner"
//	@Failure		422		{object}	utils.Response	"Unsupported type or invalid amount"
//	@Router			/api/users/{userID}/budget-categories [post]
func (h *BudgetHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "userID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	category, err := decodeCategory(r)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	category.UserID = userID
	created, err := h.budgetService.CreateCategory(r.Context(), common.Actor(r), category)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewCategoryResponse(*created))
}

// UpdateCategory godoc
//
//	@Summary	Change a budget category
//	@Tags		Budget
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		categoryID	path		int						true	"Category ID"
//	@Param		request		body		dto.CategoryRequestDTO	true	"Category"
//	@Success	200			{object}	dto.CategoryResponseDTO
//	@Failure	404			{object}	utils.Response	"Category not found"
//	@Router		/api/budget-categories/{categoryID} [put]
func (h *BudgetHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := common.PathID(r, "categoryID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	category, err := decodeCategory(r)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	category.ID = categoryID
	updated, err := h.budgetService.UpdateCategory(r.Context(), common.Actor(r), category)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCategoryResponse(*updated))
}

// DeleteCategory godoc
//
//	@Summary	Remove a budget category
//	@Tags		Budget
//	@Security	BearerAuth
//	@Param		categoryID	path	int	true	"Category ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Category not found"
//	@Router		/api/budget-categories/{categoryID} [delete]
func (h *BudgetHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := common.PathID(r, "categoryID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	if err := h.budgetService.DeleteCategory(r.Context(), common.Actor(r), categoryID); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GenerateRecommendations godoc
//
//	@Summary		Generate budget recommendations
//	@Description	Evaluates savings, outstanding loans and budget categories and stores one recommendation per rule that fires
//	@Tags			Budget
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path	int	true	"User ID"
//	@Success		201		{array}	dto.RecommendationResponseDTO
//	@Failure		403		{object}	utils.Response	"Not the owner"
//	@Router			/api/users/{userID}/recommendations [post]
func (h *BudgetHandler) GenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "userID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	recs, err := h.budgetService.GenerateRecommendations(r.Context(), common.Actor(r), userID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRecommendationsResponse(recs))
}

// ListRecommendations godoc
//
//	@Summary	Stored recommendations, newest first
//	@Tags		Budget
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userID	path	int	true	"User ID"
//	@Success	200		{array}	dto.RecommendationResponseDTO
//	@Router		/api/users/{userID}/recommendations [get]
func (h *BudgetHandler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "userID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	recs, err := h.budgetService.GetRecommendations(r.Context(), common.Actor(r), userID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRecommendationsResponse(recs))
}

// DeleteRecommendation godoc
//
//	@Summary	Dismiss a recommendation
//	@Tags		Budget
//	@Security	BearerAuth
//	@Param		recommendationID	path	int	true	"Recommendation ID"
//	@Success	204
//	@Failure	404	{object}	utils.Response	"Recommendation not found"
//	@Router		/api/recommendations/{recommendationID} [delete]
func (h *BudgetHandler) DeleteRecommendation(w http.ResponseWriter, r *http.Request) {
	recID, err := common.PathID(r, "recommendationID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	if err := h.budgetService.DeleteRecommendation(r.Context(), common.Actor(r), recID); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func decodeCategory(r *http.Request) (*domain.BudgetCategory, error) {
	var req dto.CategoryRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		return nil, err
	}
	amount, err := domain.ParseLimit(req.Amount)
	if err != nil {
		return nil, err
	}
	return &domain.BudgetCategory{
		Name:   req.Name,
		Type:   domain.CategoryType(req.Type),
		Amount: amount,
	}, nil
}
