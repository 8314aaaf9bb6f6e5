package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/sacco/internal/batch"
	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/dto"
	"github.com/GlebRadaev/sacco/pkg/auth"
)

var admin = domain.Actor{UserID: 1, Role: domain.RoleAdmin}

func NewMock(t *testing.T) (*AdminHandler, *MockReportService, *MockBatchService) {
	ctrl := gomock.NewController(t)
	reports := NewMockReportService(ctrl)
	batches := NewMockBatchService(ctrl)
	return New(reports, batches), reports, batches
}

func adminRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), auth.UserIDKey, admin.UserID)
	ctx = context.WithValue(ctx, auth.RoleKey, string(admin.Role))
	return req.WithContext(ctx)
}

func TestSummary(t *testing.T) {
	handler, reports, _ := NewMock(t)

	tests := []struct {
		name             string
		prepareMock      func()
		expectedCode     int
		expectedResponse *dto.SummaryResponseDTO
	}{
		{
			name: "Totals",
			prepareMock: func() {
				reports.EXPECT().Summary(gomock.Any(), admin).Return(&domain.Summary{
					Members:            12,
					TotalSavings:       decimal.RequireFromString("15300.5"),
					PendingWithdrawals: 3,
					PendingLoans:       2,
					OutstandingLoans:   decimal.RequireFromString("4200"),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedResponse: &dto.SummaryResponseDTO{
				Members:            12,
				TotalSavings:       "15300.50",
				PendingWithdrawals: 3,
				PendingLoans:       2,
				OutstandingLoans:   "4200.00",
			},
		},
		{
			name: "Query fails",
			prepareMock: func() {
				reports.EXPECT().Summary(gomock.Any(), admin).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.Summary(rr, adminRequest(http.MethodGet, "/api/admin/summary"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedResponse != nil {
				var resp dto.SummaryResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, *tt.expectedResponse, resp)
			}
		})
	}
}

func TestGenerateAllRecommendations(t *testing.T) {
	handler, _, batches := NewMock(t)

	batches.EXPECT().GenerateAll(gomock.Any(), admin).Return(&batch.Result{Members: 3, Recommendations: 4, Failed: []int{9}}, nil)
	rr := httptest.NewRecorder()
	handler.GenerateAllRecommendations(rr, adminRequest(http.MethodPost, "/api/admin/recommendations"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"members":3,"recommendations":4,"failed_user_ids":[9]}`, rr.Body.String())

	batches.EXPECT().GenerateAll(gomock.Any(), admin).Return(nil, context.Canceled)
	rr = httptest.NewRecorder()
	handler.GenerateAllRecommendations(rr, adminRequest(http.MethodPost, "/api/admin/recommendations"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
