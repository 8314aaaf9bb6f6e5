package budgetservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/sacco/internal/domain"
)

var (
	member = domain.Actor{UserID: 7, Role: domain.RoleMember}
	other  = domain.Actor{UserID: 8, Role: domain.RoleMember}
	admin  = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockSavingsRepo, *MockLoanRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	savingsRepo := NewMockSavingsRepo(ctrl)
	loanRepo := NewMockLoanRepo(ctrl)
	return New(repo, savingsRepo, loanRepo), repo, savingsRepo, loanRepo
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func storeRecommendation(repo *MockRepo) {
	id := 0
	repo.EXPECT().CreateRecommendation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
		id++
		rec.ID = id
		return rec, nil
	}).AnyTimes()
}

func kinds(recs []domain.Recommendation) []domain.RecommendationKind {
	out := make([]domain.RecommendationKind, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Kind)
	}
	return out
}

func TestGenerateRecommendations(t *testing.T) {
	tests := []struct {
		name          string
		actor         domain.Actor
		balance       *decimal.Decimal
		outstanding   decimal.Decimal
		hasHousing    bool
		expectedKinds []domain.RecommendationKind
	}{
		{
			name:        "All three rules fire",
			actor:       member,
			balance:     ptr(amount("500")),
			outstanding: amount("1200"),
			hasHousing:  false,
			expectedKinds: []domain.RecommendationKind{
				domain.RecommendEmergencyFund,
				domain.RecommendDebtAcceleration,
				domain.RecommendHousingBudget,
			},
		},
		{
			name:          "Healthy member gets nothing",
			actor:         member,
			balance:       ptr(amount("1000")),
			outstanding:   decimal.Zero,
			hasHousing:    true,
			expectedKinds: []domain.RecommendationKind{},
		},
		{
			name:          "No savings row counts as zero balance",
			actor:         admin,
			balance:       nil,
			outstanding:   decimal.Zero,
			hasHousing:    true,
			expectedKinds: []domain.RecommendationKind{domain.RecommendEmergencyFund},
		},
		{
			name:          "Only housing missing",
			actor:         member,
			balance:       ptr(amount("5000")),
			outstanding:   decimal.Zero,
			hasHousing:    false,
			expectedKinds: []domain.RecommendationKind{domain.RecommendHousingBudget},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, savingsRepo, loanRepo := NewMock(t)
			var savings *domain.Savings
			if tt.balance != nil {
				savings = &domain.Savings{ID: 3, UserID: 7, Balance: *tt.balance}
			}
			savingsRepo.EXPECT().GetByUserID(gomock.Any(), 7).Return(savings, nil)
			loanRepo.EXPECT().OutstandingByUserID(gomock.Any(), 7).Return(tt.outstanding, nil)
			repo.EXPECT().HasCategoryType(gomock.Any(), 7, domain.CategoryHousing).Return(tt.hasHousing, nil)
			storeRecommendation(repo)

			recs, err := service.GenerateRecommendations(context.Background(), tt.actor, 7)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedKinds, kinds(recs))
			for _, r := range recs {
				assert.Equal(t, 7, r.UserID)
				assert.NotEmpty(t, r.Message)
			}
		})
	}
}

func TestGenerateRecommendationsErrors(t *testing.T) {
	t.Run("Forbidden for other members", func(t *testing.T) {
		service, _, _, _ := NewMock(t)
		_, err := service.GenerateRecommendations(context.Background(), other, 7)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Loan lookup fails", func(t *testing.T) {
		service, _, savingsRepo, loanRepo := NewMock(t)
		savingsRepo.EXPECT().GetByUserID(gomock.Any(), 7).Return(nil, nil)
		loanRepo.EXPECT().OutstandingByUserID(gomock.Any(), 7).Return(decimal.Zero, errors.New("db error"))
		_, err := service.GenerateRecommendations(context.Background(), member, 7)
		assert.EqualError(t, err, "db error")
	})

	t.Run("Store fails", func(t *testing.T) {
		service, repo, savingsRepo, loanRepo := NewMock(t)
		savingsRepo.EXPECT().GetByUserID(gomock.Any(), 7).Return(nil, nil)
		loanRepo.EXPECT().OutstandingByUserID(gomock.Any(), 7).Return(decimal.Zero, nil)
		repo.EXPECT().HasCategoryType(gomock.Any(), 7, domain.CategoryHousing).Return(true, nil)
		repo.EXPECT().CreateRecommendation(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
		_, err := service.GenerateRecommendations(context.Background(), member, 7)
		assert.EqualError(t, err, "db error")
	})
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestCreateCategory(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		actor         domain.Actor
		category      *domain.BudgetCategory
		prepareMock   func()
		expectedName  string
		expectedError error
	}{
		{
			name:     "Name defaults to type",
			actor:    member,
			category: &domain.BudgetCategory{UserID: 7, Type: "housing", Amount: amount("800")},
			prepareMock: func() {
				repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.BudgetCategory) (*domain.BudgetCategory, error) {
					c.ID = 1
					return c, nil
				})
			},
			expectedName: "HOUSING",
		},
		{
			name:     "Custom name is trimmed",
			actor:    admin,
			category: &domain.BudgetCategory{UserID: 7, Name: "  Groceries ", Type: domain.CategoryFood, Amount: amount("200")},
			prepareMock: func() {
				repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.BudgetCategory) (*domain.BudgetCategory, error) {
					return c, nil
				})
			},
			expectedName: "Groceries",
		},
		{
			name:          "Unknown type",
			actor:         member,
			category:      &domain.BudgetCategory{UserID: 7, Type: "LEISURE"},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidCategoryType,
		},
		{
			name:          "Negative amount",
			actor:         member,
			category:      &domain.BudgetCategory{UserID: 7, Type: domain.CategoryFood, Amount: amount("-1")},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Other member",
			actor:         other,
			category:      &domain.BudgetCategory{UserID: 7, Type: domain.CategoryFood},
			prepareMock:   func() {},
			expectedError: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			category, err := service.CreateCategory(context.Background(), tt.actor, tt.category)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedName, category.Name)
		})
	}
}

func TestUpdateAndDeleteCategory(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	existing := &domain.BudgetCategory{ID: 1, UserID: 7, Name: "Rent", Type: domain.CategoryHousing, Amount: amount("800")}

	repo.EXPECT().GetCategory(gomock.Any(), 1).Return(existing, nil)
	repo.EXPECT().UpdateCategory(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.BudgetCategory) (*domain.BudgetCategory, error) {
		return c, nil
	})
	updated, err := service.UpdateCategory(context.Background(), member, &domain.BudgetCategory{ID: 1, Name: "Rent", Type: domain.CategoryHousing, Amount: amount("900")})
	assert.NoError(t, err)
	assert.Equal(t, 7, updated.UserID)
	assert.True(t, amount("900").Equal(updated.Amount))

	repo.EXPECT().GetCategory(gomock.Any(), 1).Return(existing, nil)
	_, err = service.UpdateCategory(context.Background(), other, &domain.BudgetCategory{ID: 1, Type: domain.CategoryHousing})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	repo.EXPECT().GetCategory(gomock.Any(), 2).Return(nil, nil)
	err = service.DeleteCategory(context.Background(), member, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo.EXPECT().GetCategory(gomock.Any(), 1).Return(existing, nil)
	repo.EXPECT().DeleteCategory(gomock.Any(), 1).Return(nil)
	assert.NoError(t, service.DeleteCategory(context.Background(), member, 1))

	repo.EXPECT().ListCategories(gomock.Any(), 7).Return([]domain.BudgetCategory{*existing}, nil)
	categories, err := service.GetCategories(context.Background(), admin, 7)
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestRecommendationsLifecycle(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().ListRecommendations(gomock.Any(), 7).Return([]domain.Recommendation{{ID: 1, UserID: 7}}, nil)
	recs, err := service.GetRecommendations(context.Background(), member, 7)
	assert.NoError(t, err)
	assert.Len(t, recs, 1)

	repo.EXPECT().GetRecommendation(gomock.Any(), 1).Return(&domain.Recommendation{ID: 1, UserID: 7}, nil)
	err = service.DeleteRecommendation(context.Background(), other, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	repo.EXPECT().GetRecommendation(gomock.Any(), 1).Return(&domain.Recommendation{ID: 1, UserID: 7}, nil)
	repo.EXPECT().DeleteRecommendation(gomock.Any(), 1).Return(nil)
	assert.NoError(t, service.DeleteRecommendation(context.Background(), member, 1))

	repo.EXPECT().GetRecommendation(gomock.Any(), 5).Return(nil, nil)
	err = service.DeleteRecommendation(context.Background(), admin, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
