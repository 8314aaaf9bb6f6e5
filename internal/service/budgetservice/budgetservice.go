package budgetservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sacco/internal/domain"
)

//go:generate mockgen -source=budgetservice.go -destination=mock_repo.go -package=budgetservice

type Repo interface {
	CreateCategory(ctx context.Context, category *domain.BudgetCategory) (*domain.BudgetCategory, error)
	GetCategory(ctx context.Context, id int) (*domain.BudgetCategory, error)
	UpdateCategory(ctx context.Context, category *domain.BudgetCategory) (*domain.BudgetCategory, error)
	DeleteCategory(ctx context.Context, id int) error
	ListCategories(ctx context.Context, userID int) ([]domain.BudgetCategory, error)
	HasCategoryType(ctx context.Context, userID int, categoryType domain.CategoryType) (bool, error)
	CreateRecommendation(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error)
	GetRecommendation(ctx context.Context, id int) (*domain.Recommendation, error)
	DeleteRecommendation(ctx context.Context, id int) error
	ListRecommendations(ctx context.Context, userID int) ([]domain.Recommendation, error)
}

type SavingsRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Savings, error)
}

type LoanRepo interface {
	OutstandingByUserID(ctx context.Context, userID int) (decimal.Decimal, error)
}

// EmergencyFundThreshold is the savings balance below which members are
// advised to build an emergency fund.
var EmergencyFundThreshold = decimal.NewFromInt(1000)

type Service struct {
	repo        Repo
	savingsRepo SavingsRepo
	loanRepo    LoanRepo
}

func New(repo Repo, savingsRepo SavingsRepo, loanRepo LoanRepo) *Service {
	return &Service{
		repo:        repo,
		savingsRepo: savingsRepo,
		loanRepo:    loanRepo,
	}
}

func (s *Service) CreateCategory(ctx context.Context, actor domain.Actor, category *domain.BudgetCategory) (*domain.BudgetCategory, error) {
	if err := domain.Authorize(actor, category.UserID); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	created, err := s.repo.CreateCategory(ctx, category)
	if err != nil {
		zap.L().Error("failed to create budget category", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateCategory(ctx context.Context, actor domain.Actor, category *domain.BudgetCategory) (*domain.BudgetCategory, error) {
	existing, err := s.ownedCategory(ctx, actor, category.ID)
	if err != nil {
		return nil, err
	}
	category.UserID = existing.UserID
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateCategory(ctx, category)
	if err != nil {
		zap.L().Error("failed to update budget category", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteCategory(ctx context.Context, actor domain.Actor, categoryID int) error {
	if _, err := s.ownedCategory(ctx, actor, categoryID); err != nil {
		return err
	}
	if err := s.repo.DeleteCategory(ctx, categoryID); err != nil {
		zap.L().Error("failed to delete budget category", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetCategories(ctx context.Context, actor domain.Actor, userID int) ([]domain.BudgetCategory, error) {
	if err := domain.Authorize(actor, userID); err != nil {
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list budget categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

// GenerateRecommendations evaluates the member's current savings, loans and
// categories and stores one recommendation per triggered rule. Earlier
// recommendations are not consulted.
func (s *Service) GenerateRecommendations(ctx context.Context, actor domain.Actor, userID int) ([]domain.Recommendation, error) {
	if err := domain.Authorize(actor, userID); err != nil {
		return nil, err
	}

	balance := decimal.Zero
	savings, err := s.savingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get savings", zap.Error(err))
		return nil, err
	}
	if savings != nil {
		balance = savings.Balance
	}

	outstanding, err := s.loanRepo.OutstandingByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get outstanding loans", zap.Error(err))
		return nil, err
	}

	hasHousing, err := s.repo.HasCategoryType(ctx, userID, domain.CategoryHousing)
	if err != nil {
		zap.L().Error("failed to check housing category", zap.Error(err))
		return nil, err
	}

	var pending []domain.Recommendation
	if balance.LessThan(EmergencyFundThreshold) {
		pending = append(pending, domain.Recommendation{
			UserID: userID,
			Kind:   domain.RecommendEmergencyFund,
			Message: fmt.Sprintf("Your savings balance is %s. Aim to build an emergency fund of at least %s by setting aside a fixed amount from every income.",
				domain.FormatAmount(balance), domain.FormatAmount(EmergencyFundThreshold)),
		})
	}
	if outstanding.IsPositive() {
		pending = append(pending, domain.Recommendation{
			UserID: userID,
			Kind:   domain.RecommendDebtAcceleration,
			Message: fmt.Sprintf("You have %s outstanding on approved loans. Paying more than the minimum each month reduces the interest you pay overall.",
				domain.FormatAmount(outstanding)),
		})
	}
	if !hasHousing {
		pending = append(pending, domain.Recommendation{
			UserID:  userID,
			Kind:    domain.RecommendHousingBudget,
			Message: "You have no housing budget. Housing is usually the largest expense; add a HOUSING category to track rent or mortgage payments.",
		})
	}

	created := make([]domain.Recommendation, 0, len(pending))
	for i := range pending {
		rec, err := s.repo.CreateRecommendation(ctx, &pending[i])
		if err != nil {
			zap.L().Error("failed to save recommendation", zap.Error(err))
			return nil, err
		}
		created = append(created, *rec)
	}
	return created, nil
}

func (s *Service) GetRecommendations(ctx context.Context, actor domain.Actor, userID int) ([]domain.Recommendation, error) {
	if err := domain.Authorize(actor, userID); err != nil {
		return nil, err
	}
	recs, err := s.repo.ListRecommendations(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list recommendations", zap.Error(err))
		return nil, err
	}
	return recs, nil
}

func (s *Service) DeleteRecommendation(ctx context.Context, actor domain.Actor, recommendationID int) error {
	rec, err := s.repo.GetRecommendation(ctx, recommendationID)
	if err != nil {
		zap.L().Error("failed to get recommendation", zap.Error(err))
		return err
	}
	if rec == nil {
		return fmt.Errorf("recommendation %d: %w", recommendationID, domain.ErrNotFound)
	}
	if err := domain.Authorize(actor, rec.UserID); err != nil {
		return err
	}
	if err := s.repo.DeleteRecommendation(ctx, recommendationID); err != nil {
		zap.L().Error("failed to delete recommendation", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ownedCategory(ctx context.Context, actor domain.Actor, categoryID int) (*domain.BudgetCategory, error) {
	category, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		zap.L().Error("failed to get budget category", zap.Error(err))
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("budget category %d: %w", categoryID, domain.ErrNotFound)
	}
	if err := domain.Authorize(actor, category.UserID); err != nil {
		return nil, err
	}
	return category, nil
}

func validateCategory(category *domain.BudgetCategory) error {
	categoryType, err := domain.ParseCategoryType(string(category.Type))
	if err != nil {
		return err
	}
	category.Type = categoryType
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		category.Name = string(category.Type)
	}
	if category.Amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	return nil
}
