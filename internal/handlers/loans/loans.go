package loans

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/dto"
	"github.com/GlebRadaev/sacco/internal/handlers/common"
	"github.com/GlebRadaev/sacco/internal/service/loanservice"
	"github.com/GlebRadaev/sacco/pkg/utils"
)

//go:generate mockgen -source=loans.go -destination=mock_service.go -package=loans

type Service interface {
	Apply(ctx context.Context, actor domain.Actor, app loanservice.Application) (*domain.Loan, error)
	ApproveLoan(ctx context.Context, actor domain.Actor, loanID int) (*domain.Loan, error)
	RejectLoan(ctx context.Context, actor domain.Actor, loanID int) (*domain.Loan, error)
	GetLoan(ctx context.Context, actor domain.Actor, loanID int) (*domain.Loan, error)
	GetLoans(ctx context.Context, actor domain.Actor, userID int) ([]domain.Loan, error)
	GetPendingLoans(ctx context.Context, actor domain.Actor) ([]domain.Loan, error)
	Repay(ctx context.Context, actor domain.Actor, loanID int, amount decimal.Decimal, method domain.Method, notes string) (*domain.Repayment, error)
	GetRepayments(ctx context.Context, actor domain.Actor, loanID int) ([]domain.Repayment, error)
	CreateProduct(ctx context.Context, actor domain.Actor, product *domain.LoanProduct) (*domain.LoanProduct, error)
	GetProduct(ctx context.Context, productID int) (*domain.LoanProduct, error)
	ListProducts(ctx context.Context) ([]domain.LoanProduct, error)
}

type LoanHandler struct {
	loanService Service
}

func New(loanService Service) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// Apply godoc
//
//	@Summary		Apply for a loan
//	@Description	Files a PENDING loan. With a product the amount, term and savings collateral are checked against it.
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoanApplicationRequestDTO	true	"Application; user_id defaults to the caller"
//	@Success		201		{object}	dto.LoanResponseDTO
//	@Failure		403		{object}	utils.Response	"Applying for someone else"
//	@Failure		404		{object}	utils.Response	"Product or savings not found"
//	@Failure		422		{object}	utils.Response	"Amount, term or collateral rule violated"
//	@Router			/api/loans [post]
func (h *LoanHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanApplicationRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	actor := common.Actor(r)
	userID := req.UserID
	if userID == 0 {
		userID = actor.UserID
	}
	loan, err := h.loanService.Apply(r.Context(), actor, loanservice.Application{
		UserID:      userID,
		ProductID:   req.ProductID,
		Amount:      amount,
		Purpose:     req.Purpose,
		TermMonths:  req.TermMonths,
		Description: req.Description,
	})
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewLoanResponse(*loan))
}

// GetLoan godoc
//
//	@Summary	Get a loan
//	@Tags		Loans
//	@Security	BearerAuth
//	@Produce	json
//	@Param		loanID	path		int	true	"Loan ID"
//	@Success	200		{object}	dto.LoanResponseDTO
//	@Failure	403		{object}	utils.Response	"Not the borrower"
//	@Failure	404		{object}	utils.Response	"Loan not found"
//	@Router		/api/loans/{loanID} [get]
func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := common.PathID(r, "loanID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	loan, err := h.loanService.GetLoan(r.Context(), common.Actor(r), loanID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanResponse(*loan))
}

// ListUserLoans godoc
//
//	@Summary	A member's loans, newest first
//	@Tags		Loans
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userID	path		int	true	"User ID"
//	@Success	200		{array}		dto.LoanResponseDTO
//	@Success	204		{object}	utils.Response	"No loans"
//	@Router		/api/users/{userID}/loans [get]
func (h *LoanHandler) ListUserLoans(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "userID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	loans, err := h.loanService.GetLoans(r.Context(), common.Actor(r), userID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	respondLoans(w, loans)
}

// ListPendingLoans godoc
//
//	@Summary	Loans awaiting a decision
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.LoanResponseDTO
//	@Success	204	{object}	utils.Response	"Nothing pending"
//	@Router		/api/admin/loans/pending [get]
func (h *LoanHandler) ListPendingLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loanService.GetPendingLoans(r.Context(), common.Actor(r))
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	respondLoans(w, loans)
}

// ApproveLoan godoc
//
//	@Summary	Approve a pending loan
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		loanID	path		int	true	"Loan ID"
//	@Success	200		{object}	dto.LoanResponseDTO
//	@Failure	404		{object}	utils.Response	"Loan not found"
//	@Failure	409		{object}	utils.Response	"Already processed"
//	@Router		/api/loans/{loanID}/approve [post]
func (h *LoanHandler) ApproveLoan(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.loanService.ApproveLoan)
}

// RejectLoan godoc
//
//	@Summary	Reject a pending loan
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		loanID	path		int	true	"Loan ID"
//	@Success	200		{object}	dto.LoanResponseDTO
//	@Failure	404		{object}	utils.Response	"Loan not found"
//	@Failure	409		{object}	utils.Response	"Already processed"
//	@Router		/api/loans/{loanID}/reject [post]
func (h *LoanHandler) RejectLoan(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.loanService.RejectLoan)
}

func (h *LoanHandler) decide(w http.ResponseWriter, r *http.Request, fn func(context.Context, domain.Actor, int) (*domain.Loan, error)) {
	loanID, err := common.PathID(r, "loanID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	loan, err := fn(r.Context(), common.Actor(r), loanID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanResponse(*loan))
}

// Repay godoc
//
//	@Summary		Record a repayment
//	@Description	Only APPROVED loans accept repayments
//	@Tags			Loans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			loanID	path		int						true	"Loan ID"
//	@Param			request	body		dto.RepaymentRequestDTO	true	"Repayment"
//	@Success		201		{object}	dto.RepaymentResponseDTO
//	@Failure		404		{object}	utils.Response	"Loan not found"
//	@Failure		422		{object}	utils.Response	"Loan not approved or invalid amount"
//	@Router			/api/loans/{loanID}/repayments [post]
func (h *LoanHandler) Repay(w http.ResponseWriter, r *http.Request) {
	loanID, err := common.PathID(r, "loanID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	var req dto.RepaymentRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	method, err := domain.ParseMethod(req.Method)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	repayment, err := h.loanService.Repay(r.Context(), common.Actor(r), loanID, amount, method, req.Notes)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRepaymentResponse(*repayment))
}

// ListRepayments godoc
//
//	@Summary	Repayments of a loan
//	@Tags		Loans
//	@Security	BearerAuth
//	@Produce	json
//	@Param		loanID	path		int	true	"Loan ID"
//	@Success	200		{array}		dto.RepaymentResponseDTO
//	@Success	204		{object}	utils.Response	"No repayments"
//	@Router		/api/loans/{loanID}/repayments [get]
func (h *LoanHandler) ListRepayments(w http.ResponseWriter, r *http.Request) {
	loanID, err := common.PathID(r, "loanID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	repayments, err := h.loanService.GetRepayments(r.Context(), common.Actor(r), loanID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	if len(repayments) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	response := make([]dto.RepaymentResponseDTO, len(repayments))
	for i, rp := range repayments {
		response[i] = dto.NewRepaymentResponse(rp)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListProducts godoc
//
//	@Summary	List loan products
//	@Tags		Loans
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.LoanProductResponseDTO
//	@Router		/api/loan-products [get]
func (h *LoanHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.loanService.ListProducts(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	response := make([]dto.LoanProductResponseDTO, len(products))
	for i, p := range products {
		response[i] = dto.NewLoanProductResponse(p)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetProduct godoc
//
//	@Summary	Get a loan product
//	@Tags		Loans
//	@Security	BearerAuth
//	@Produce	json
//	@Param		productID	path		int	true	"Product ID"
//	@Success	200			{object}	dto.LoanProductResponseDTO
//	@Failure	404			{object}	utils.Response	"Product not found"
//	@Router		/api/loan-products/{productID} [get]
func (h *LoanHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := common.PathID(r, "productID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	product, err := h.loanService.GetProduct(r.Context(), productID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoanProductResponse(*product))
}

// CreateProduct godoc
//
//	@Summary	Create a loan product
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoanProductRequestDTO	true	"Product"
//	@Success	201		{object}	dto.LoanProductResponseDTO
//	@Failure	409		{object}	utils.Response	"Product name already exists"
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/loan-products [post]
func (h *LoanHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanProductRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	product, err := req.ToDomain()
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	created, err := h.loanService.CreateProduct(r.Context(), common.Actor(r), product)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewLoanProductResponse(*created))
}

func respondLoans(w http.ResponseWriter, loans []domain.Loan) {
	if len(loans) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLoansResponse(loans))
}
