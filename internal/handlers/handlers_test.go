package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/sacco/internal/config"
	"github.com/GlebRadaev/sacco/internal/pg"
	"github.com/GlebRadaev/sacco/internal/repo"
	"github.com/GlebRadaev/sacco/internal/service"
	"github.com/GlebRadaev/sacco/pkg/auth"
)

type stubSessions map[string]*auth.Claims

func (s stubSessions) ValidateSession(_ context.Context, token string) (*auth.Claims, error) {
	if c, ok := s[token]; ok {
		return c, nil
	}
	return nil, auth.ErrInvalidSession
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := service.New(repo.New(nil, pg.NewMockTXManager(ctrl)), &config.Config{JWTSecret: "secret"})

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Sessions)
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewMockAuthHandler(ctrl)
	memberHandler := NewMockMemberHandler(ctrl)
	savingsHandler := NewMockSavingsHandler(ctrl)
	loanHandler := NewMockLoanHandler(ctrl)
	budgetHandler := NewMockBudgetHandler(ctrl)
	adminHandler := NewMockAdminHandler(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	memberHandler.EXPECT().Me(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	memberHandler.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	memberHandler.EXPECT().DeleteMember(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	savingsHandler.EXPECT().GetUserSavings(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	savingsHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	savingsHandler.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	savingsHandler.EXPECT().ListProducts(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	savingsHandler.EXPECT().ApproveWithdrawal(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	savingsHandler.EXPECT().AssignProduct(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	loanHandler.EXPECT().Apply(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	loanHandler.EXPECT().GetLoan(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	loanHandler.EXPECT().ApproveLoan(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	loanHandler.EXPECT().Repay(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	budgetHandler.EXPECT().GenerateRecommendations(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	budgetHandler.EXPECT().DeleteCategory(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	adminHandler.EXPECT().Summary(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	adminHandler.EXPECT().GenerateAllRecommendations(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	h := &Handlers{
		AuthHandler:    authHandler,
		MemberHandler:  memberHandler,
		SavingsHandler: savingsHandler,
		LoanHandler:    loanHandler,
		BudgetHandler:  budgetHandler,
		AdminHandler:   adminHandler,
		Sessions:       stubSessions{
			"member-token": {UserID: 7, Role: "MEMBER"},
			"admin-token":  {UserID: 1, Role: "ADMIN"},
		},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"GET", "/api/user/me", "", http.StatusUnauthorized},
		{"GET", "/api/user/me", "forged", http.StatusUnauthorized},
		{"GET", "/api/user/me", "member-token", http.StatusOK},
		{"GET", "/api/users/7/savings", "member-token", http.StatusOK},
		{"POST", "/api/savings/3/deposits", "member-token", http.StatusOK},
		{"GET", "/api/savings-products", "member-token", http.StatusOK},
		{"POST", "/api/savings-products", "member-token", http.StatusForbidden},
		{"POST", "/api/savings-products", "admin-token", http.StatusOK},
		{"PUT", "/api/savings/3/product", "member-token", http.StatusForbidden},
		{"PUT", "/api/savings/3/product", "admin-token", http.StatusOK},
		{"POST", "/api/withdrawals/21/approve", "member-token", http.StatusForbidden},
		{"POST", "/api/withdrawals/21/approve", "admin-token", http.StatusOK},
		{"POST", "/api/loans", "member-token", http.StatusOK},
		{"GET", "/api/loans/99", "member-token", http.StatusOK},
		{"POST", "/api/loans/99/approve", "member-token", http.StatusForbidden},
		{"POST", "/api/loans/99/approve", "admin-token", http.StatusOK},
		{"POST", "/api/loans/99/repayments", "member-token", http.StatusOK},
		{"POST", "/api/users/7/recommendations", "member-token", http.StatusOK},
		{"DELETE", "/api/budget-categories/1", "member-token", http.StatusOK},
		{"GET", "/api/admin/members", "member-token", http.StatusForbidden},
		{"GET", "/api/admin/members", "admin-token", http.StatusOK},
		{"DELETE", "/api/admin/members/7", "admin-token", http.StatusOK},
		{"GET", "/api/admin/summary", "", http.StatusUnauthorized},
		{"GET", "/api/admin/summary", "admin-token", http.StatusOK},
		{"POST", "/api/admin/recommendations", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
