// Package common holds the request and error plumbing shared by the HTTP handlers.
package common

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/pkg/auth"
	"github.com/GlebRadaev/sacco/pkg/utils"
)

var ErrInvalidID = errors.New("invalid id in path")

// Actor builds the caller identity put in the request context by auth.AuthMiddleware.
func Actor(r *http.Request) domain.Actor {
	return domain.NewActor(auth.Identity(r.Context()))
}

// PathID reads a positive integer URL parameter.
func PathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, utils.ErrInvalidBody), errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	case utils.IsValidationError(err),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTerm),
		errors.Is(err, domain.ErrInvalidMethod),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidCategoryType),
		errors.Is(err, domain.ErrInvalidAccountNumber),
		errors.Is(err, domain.ErrLoanAmountExceedsLimit),
		errors.Is(err, domain.ErrLoanTermExceedsLimit),
		errors.Is(err, domain.ErrInsufficientCollateral),
		errors.Is(err, domain.ErrLoanNotApproved):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyProcessed),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrProductExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	}
	return http.StatusInternalServerError
}

// RespondWithServiceError writes err with the status StatusFor picks.
// Internal errors are logged and hidden from the client.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
