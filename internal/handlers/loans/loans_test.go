package loans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/dto"
	"github.com/GlebRadaev/sacco/internal/service/loanservice"
	"github.com/GlebRadaev/sacco/pkg/auth"
	"github.com/GlebRadaev/sacco/pkg/utils"
)

var (
	member = domain.Actor{UserID: 7, Role: domain.RoleMember}
	admin  = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
)

func NewMock(t *testing.T) (*LoanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, body string, actor domain.Actor, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, actor.UserID)
	ctx = context.WithValue(ctx, auth.RoleKey, string(actor.Role))
	return req.WithContext(ctx)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApply(t *testing.T) {
	handler, service := NewMock(t)
	productID := 4

	tests := []struct {
		name          string
		actor         domain.Actor
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Member applies for themselves",
			actor: member,
			body:  `{"product_id":4,"amount":"10000","purpose":"School fees","term_months":12}`,
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), member, loanservice.Application{
					UserID: 7, ProductID: &productID, Amount: amount("10000"), Purpose: "School fees", TermMonths: 12,
				}).Return(&domain.Loan{
					ID: 99, UserID: 7, ProductID: &productID, Amount: amount("10000"), InterestRate: amount("12.5"), Status: domain.StatusPending,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:  "Admin applies on behalf of a member",
			actor: admin,
			body:  `{"user_id":7,"amount":"500","purpose":"Stock","term_months":3}`,
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), admin, loanservice.Application{
					UserID: 7, Amount: amount("500"), Purpose: "Stock", TermMonths: 3,
				}).Return(&domain.Loan{ID: 100, UserID: 7, Amount: amount("500"), Status: domain.StatusPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:  "Collateral too low",
			actor: member,
			body:  `{"product_id":4,"amount":"10000","purpose":"School fees","term_months":12}`,
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), member, gomock.Any()).Return(nil, domain.ErrInsufficientCollateral)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInsufficientCollateral.Error(),
		},
		{
			name:  "Someone else's application",
			actor: member,
			body:  `{"user_id":8,"amount":"100","purpose":"x","term_months":1}`,
			prepareMock: func() {
				service.EXPECT().Apply(gomock.Any(), member, gomock.Any()).Return(nil, domain.ErrForbidden)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "forbidden",
		},
		{
			name:          "Missing term",
			actor:         member,
			body:          `{"amount":"100","purpose":"x"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "TermMonths: failed required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Apply(rr, newRequest(http.MethodPost, "/api/loans", tt.body, tt.actor, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetLoan(t *testing.T) {
	handler, service := NewMock(t)
	params := map[string]string{"loanID": "99"}

	service.EXPECT().GetLoan(gomock.Any(), member, 99).Return(&domain.Loan{
		ID: 99, UserID: 7, Amount: amount("10000"), InterestRate: amount("12.5"), Status: domain.StatusApproved,
	}, nil)
	rr := httptest.NewRecorder()
	handler.GetLoan(rr, newRequest(http.MethodGet, "/api/loans/99", "", member, params))
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.LoanResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "10000.00", resp.Amount)
	assert.Equal(t, "12.50", resp.InterestRate)
	assert.Equal(t, "APPROVED", resp.Status)

	service.EXPECT().GetLoan(gomock.Any(), member, 99).Return(nil, domain.ErrNotFound)
	rr = httptest.NewRecorder()
	handler.GetLoan(rr, newRequest(http.MethodGet, "/api/loans/99", "", member, params))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLoanDecisions(t *testing.T) {
	handler, service := NewMock(t)
	params := map[string]string{"loanID": "99"}

	tests := []struct {
		name         string
		call         func(w http.ResponseWriter, r *http.Request)
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Approve",
			call: handler.ApproveLoan,
			prepareMock: func() {
				service.EXPECT().ApproveLoan(gomock.Any(), admin, 99).Return(&domain.Loan{ID: 99, Status: domain.StatusApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Reject twice",
			call: handler.RejectLoan,
			prepareMock: func() {
				service.EXPECT().RejectLoan(gomock.Any(), admin, 99).Return(nil, domain.ErrAlreadyProcessed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Storage failure",
			call: handler.ApproveLoan,
			prepareMock: func() {
				service.EXPECT().ApproveLoan(gomock.Any(), admin, 99).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			tt.call(rr, newRequest(http.MethodPost, "/api/loans/99/approve", "", admin, params))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestLoanListings(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetLoans(gomock.Any(), member, 7).Return([]domain.Loan{{ID: 2}, {ID: 1}}, nil)
	rr := httptest.NewRecorder()
	handler.ListUserLoans(rr, newRequest(http.MethodGet, "/api/users/7/loans", "", member, map[string]string{"userID": "7"}))
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.LoanResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)

	service.EXPECT().GetPendingLoans(gomock.Any(), admin).Return([]domain.Loan{}, nil)
	rr = httptest.NewRecorder()
	handler.ListPendingLoans(rr, newRequest(http.MethodGet, "/api/admin/loans/pending", "", admin, nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	service.EXPECT().GetPendingLoans(gomock.Any(), member).Return(nil, domain.ErrForbidden)
	rr = httptest.NewRecorder()
	handler.ListPendingLoans(rr, newRequest(http.MethodGet, "/api/admin/loans/pending", "", member, nil))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRepay(t *testing.T) {
	handler, service := NewMock(t)
	params := map[string]string{"loanID": "99"}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Recorded",
			body: `{"amount":"300","method":"bank_transfer"}`,
			prepareMock: func() {
				service.EXPECT().Repay(gomock.Any(), member, 99, amount("300"), domain.MethodBankTransfer, "").Return(&domain.Repayment{
					ID: 5, LoanID: 99, Amount: amount("300"), Method: domain.MethodBankTransfer,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Loan still pending",
			body: `{"amount":"300","method":"CASH"}`,
			prepareMock: func() {
				service.EXPECT().Repay(gomock.Any(), member, 99, amount("300"), domain.MethodCash, "").Return(nil, domain.ErrLoanNotApproved)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Unknown method",
			body:         `{"amount":"300","method":"BARTER"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Repay(rr, newRequest(http.MethodPost, "/api/loans/99/repayments", tt.body, member, params))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}

	service.EXPECT().GetRepayments(gomock.Any(), member, 99).Return(nil, nil)
	rr := httptest.NewRecorder()
	handler.ListRepayments(rr, newRequest(http.MethodGet, "/api/loans/99/repayments", "", member, params))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestLoanProducts(t *testing.T) {
	handler, service := NewMock(t)
	pct := amount("25")

	service.EXPECT().CreateProduct(gomock.Any(), admin, &domain.LoanProduct{
		Name: "Development", InterestRate: amount("12.5"), MaxAmount: amount("50000"), MaxTerm: 24, MinSavingsPercentage: &pct,
	}).DoAndReturn(func(_ context.Context, _ domain.Actor, p *domain.LoanProduct) (*domain.LoanProduct, error) {
		p.ID = 4
		return p, nil
	})
	rr := httptest.NewRecorder()
	body := `{"name":"Development","interest_rate":"12.5","max_amount":"50000","max_term":24,"min_savings_percentage":"25"}`
	handler.CreateProduct(rr, newRequest(http.MethodPost, "/api/loan-products", body, admin, nil))
	assert.Equal(t, http.StatusCreated, rr.Code)
	var created dto.LoanProductResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, 4, created.ID)
	if assert.NotNil(t, created.MinSavingsPercentage) {
		assert.Equal(t, "25.00", *created.MinSavingsPercentage)
	}

	rr = httptest.NewRecorder()
	handler.CreateProduct(rr, newRequest(http.MethodPost, "/api/loan-products", `{"name":"Bad","interest_rate":"5","max_amount":"0","max_term":6}`, admin, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	service.EXPECT().ListProducts(gomock.Any()).Return([]domain.LoanProduct{{ID: 4, Name: "Development"}}, nil)
	rr = httptest.NewRecorder()
	handler.ListProducts(rr, newRequest(http.MethodGet, "/api/loan-products", "", member, nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().GetProduct(gomock.Any(), 5).Return(nil, domain.ErrNotFound)
	rr = httptest.NewRecorder()
	handler.GetProduct(rr, newRequest(http.MethodGet, "/api/loan-products/5", "", member, map[string]string{"productID": "5"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
