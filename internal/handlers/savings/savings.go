package savings

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/dto"
	"github.com/GlebRadaev/sacco/internal/handlers/common"
	"github.com/GlebRadaev/sacco/pkg/utils"
)

//go:generate mockgen -source=savings.go -destination=mock_service.go -package=savings

type Service interface {
	GetSavings(ctx context.Context, actor domain.Actor, userID int) (*domain.Savings, error)
	GetSavingsByAccountNumber(ctx context.Context, actor domain.Actor, accountNumber string) (*domain.Savings, error)
	Deposit(ctx context.Context, actor domain.Actor, savingsID int, amount decimal.Decimal, method domain.Method, notes string) (*domain.Deposit, error)
	ListDeposits(ctx context.Context, actor domain.Actor, savingsID int) ([]domain.Deposit, error)
	CreateWithdrawal(ctx context.Context, actor domain.Actor, savingsID int, amount decimal.Decimal, method domain.Method, reason string) (*domain.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, actor domain.Actor, withdrawalID int) (*domain.Withdrawal, error)
	RejectWithdrawal(ctx context.Context, actor domain.Actor, withdrawalID int) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, actor domain.Actor, savingsID int) ([]domain.Withdrawal, error)
	GetPendingWithdrawals(ctx context.Context, actor domain.Actor) ([]domain.Withdrawal, error)
	CreateProduct(ctx context.Context, actor domain.Actor, product *domain.SavingsProduct) (*domain.SavingsProduct, error)
	ListProducts(ctx context.Context) ([]domain.SavingsProduct, error)
	AssignProduct(ctx context.Context, actor domain.Actor, savingsID, productID int) (*domain.Savings, error)
}

type SavingsHandler struct {
	savingsService Service
}

func New(savingsService Service) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// GetUserSavings godoc
//
//	@Summary	Get a member's savings account
//	@Tags		Savings
//	@Security	BearerAuth
//	@Produce	json
//	@Param		userID	path		int	true	"User ID"
//	@Success	200		{object}	dto.SavingsResponseDTO
//	@Failure	403		{object}	utils.Response	"Not the owner"
//	@Failure	404		{object}	utils.Response	"Savings account not found"
//	@Router		/api/users/{userID}/savings [get]
func (h *SavingsHandler) GetUserSavings(w http.ResponseWriter, r *http.Request) {
	userID, err := common.PathID(r, "userID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	savings, err := h.savingsService.GetSavings(r.Context(), common.Actor(r), userID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSavingsResponse(*savings))
}

// GetByAccountNumber godoc
//
//	@Summary	Find a savings account by its number
//	@Tags		Savings
//	@Security	BearerAuth
//	@Produce	json
//	@Param		accountNumber	path		string	true	"Luhn-valid account number"
//	@Success	200				{object}	dto.SavingsResponseDTO
//	@Failure	404				{object}	utils.Response	"Savings account not found"
//	@Failure	422				{object}	utils.Response	"Invalid account number"
//	@Router		/api/savings/accounts/{accountNumber} [get]
func (h *SavingsHandler) GetByAccountNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "accountNumber")
	savings, err := h.savingsService.GetSavingsByAccountNumber(r.Context(), common.Actor(r), number)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSavingsResponse(*savings))
}

// Deposit godoc
//
//	@Summary		Deposit into a savings account
//	@Description	Records the deposit and credits the balance in one transaction
//	@Tags			Savings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			savingsID	path		int						true	"Savings ID"
//	@Param			request		body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		201			{object}	dto.DepositResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		403			{object}	utils.Response	"Not the owner"
//	@Failure		404			{object}	utils.Response	"Savings account not found"
//	@Failure		422			{object}	utils.Response	"Invalid amount or method"
//	@Router			/api/savings/{savingsID}/deposits [post]
func (h *SavingsHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	savingsID, err := common.PathID(r, "savingsID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	var req dto.DepositRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	amount, method, err := parsePayment(req.Amount, req.Method)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	deposit, err := h.savingsService.Deposit(r.Context(), common.Actor(r), savingsID, amount, method, req.Notes)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDepositResponse(*deposit))
}

// ListDeposits godoc
//
//	@Summary	Deposit history, newest first
//	@Tags		Savings
//	@Security	BearerAuth
//	@Produce	json
//	@Param		savingsID	path		int	true	"Savings ID"
//	@Success	200			{array}		dto.DepositResponseDTO
//	@Success	204			{object}	utils.Response	"No deposits"
//	@Failure	403			{object}	utils.Response	"Not the owner"
//	@Router		/api/savings/{savingsID}/deposits [get]
func (h *SavingsHandler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	savingsID, err := common.PathID(r, "savingsID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	deposits, err := h.savingsService.ListDeposits(r.Context(), common.Actor(r), savingsID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	if len(deposits) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	response := make([]dto.DepositResponseDTO, len(deposits))
	for i, d := range deposits {
		response[i] = dto.NewDepositResponse(d)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Files a PENDING withdrawal; members need enough balance, admins may file any amount
//	@Tags			Savings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			savingsID	path		int							true	"Savings ID"
//	@Param			request		body		dto.WithdrawalRequestDTO	true	"Withdrawal payload"
//	@Success		201			{object}	dto.WithdrawalResponseDTO
//	@Failure		402			{object}	utils.Response	"Insufficient balance"
//	@Failure		403			{object}	utils.Response	"Not the owner"
//	@Failure		422			{object}	utils.Response	"Invalid amount or method"
//	@Router			/api/savings/{savingsID}/withdrawals [post]
func (h *SavingsHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	savingsID, err := common.PathID(r, "savingsID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	var req dto.WithdrawalRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	amount, method, err := parsePayment(req.Amount, req.Method)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	withdrawal, err := h.savingsService.CreateWithdrawal(r.Context(), common.Actor(r), savingsID, amount, method, req.Reason)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWithdrawalResponse(*withdrawal))
}

// ListWithdrawals godoc
//
//	@Summary	Withdrawal history, newest first
//	@Tags		Savings
//	@Security	BearerAuth
//	@Produce	json
//	@Param		savingsID	path		int	true	"Savings ID"
//	@Success	200			{array}		dto.WithdrawalResponseDTO
//	@Success	204			{object}	utils.Response	"No withdrawals"
//	@Failure	403			{object}	utils.Response	"Not the owner"
//	@Router		/api/savings/{savingsID}/withdrawals [get]
func (h *SavingsHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	savingsID, err := common.PathID(r, "savingsID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	withdrawals, err := h.savingsService.GetWithdrawals(r.Context(), common.Actor(r), savingsID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	respondWithdrawals(w, withdrawals)
}

// ListPendingWithdrawals godoc
//
//	@Summary	Withdrawals awaiting a decision
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.WithdrawalResponseDTO
//	@Success	204	{object}	utils.Response	"Nothing pending"
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Router		/api/admin/withdrawals/pending [get]
func (h *SavingsHandler) ListPendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.savingsService.GetPendingWithdrawals(r.Context(), common.Actor(r))
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	respondWithdrawals(w, withdrawals)
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a pending withdrawal
//	@Description	Debits the savings balance; fails with 402 when the balance no longer covers the amount
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			withdrawalID	path		int	true	"Withdrawal ID"
//	@Success		200				{object}	dto.WithdrawalResponseDTO
//	@Failure		402				{object}	utils.Response	"Insufficient balance"
//	@Failure		404				{object}	utils.Response	"Withdrawal not found"
//	@Failure		409				{object}	utils.Response	"Already processed"
//	@Router			/api/withdrawals/{withdrawalID}/approve [post]
func (h *SavingsHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.savingsService.ApproveWithdrawal)
}

// RejectWithdrawal godoc
//
//	@Summary	Reject a pending withdrawal
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		withdrawalID	path		int	true	"Withdrawal ID"
//	@Success	200				{object}	dto.WithdrawalResponseDTO
//	@Failure	404				{object}	utils.Response	"Withdrawal not found"
//	@Failure	409				{object}	utils.Response	"Already processed"
//	@Router		/api/withdrawals/{withdrawalID}/reject [post]
func (h *SavingsHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.savingsService.RejectWithdrawal)
}

func (h *SavingsHandler) decide(w http.ResponseWriter, r *http.Request, fn func(context.Context, domain.Actor, int) (*domain.Withdrawal, error)) {
	withdrawalID, err := common.PathID(r, "withdrawalID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	withdrawal, err := fn(r.Context(), common.Actor(r), withdrawalID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(*withdrawal))
}

// ListProducts godoc
//
//	@Summary	List savings products
//	@Tags		Savings
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.SavingsProductResponseDTO
//	@Router		/api/savings-products [get]
func (h *SavingsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.savingsService.ListProducts(r.Context())
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	response := make([]dto.SavingsProductResponseDTO, len(products))
	for i, p := range products {
		response[i] = dto.NewSavingsProductResponse(p)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateProduct godoc
//
//	@Summary	Create a savings product
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SavingsProductRequestDTO	true	"Product"
//	@Success	201		{object}	dto.SavingsProductResponseDTO
//	@Failure	403		{object}	utils.Response	"Admin role required"
//	@Failure	409		{object}	utils.Response	"Product name already exists"
//	@Failure	422		{object}	utils.Response	"Validation failed"
//	@Router		/api/savings-products [post]
func (h *SavingsHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.SavingsProductRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	rate, err := domain.ParsePercentage(req.InterestRate)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	minimum := decimal.Zero
	if req.MinimumBalance != "" {
		if minimum, err = domain.ParseLimit(req.MinimumBalance); err != nil {
			common.RespondWithServiceError(w, err)
			return
		}
	}
	product, err := h.savingsService.CreateProduct(r.Context(), common.Actor(r), &domain.SavingsProduct{
		Name:           req.Name,
		InterestRate:   rate,
		MinimumBalance: minimum,
		TermMonths:     req.TermMonths,
		Description:    req.Description,
	})
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSavingsProductResponse(*product))
}

// AssignProduct godoc
//
//	@Summary	Attach a savings product to an account
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		savingsID	path		int							true	"Savings ID"
//	@Param		request		body		dto.AssignProductRequestDTO	true	"Product reference"
//	@Success	200			{object}	dto.SavingsResponseDTO
//	@Failure	404			{object}	utils.Response	"Account or product not found"
//	@Router		/api/savings/{savingsID}/product [put]
func (h *SavingsHandler) AssignProduct(w http.ResponseWriter, r *http.Request) {
	savingsID, err := common.PathID(r, "savingsID")
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	var req dto.AssignProductRequestDTO
	if err := utils.DecodeJSON(r, &req); err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	savings, err := h.savingsService.AssignProduct(r.Context(), common.Actor(r), savingsID, req.ProductID)
	if err != nil {
		common.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSavingsResponse(*savings))
}

func respondWithdrawals(w http.ResponseWriter, withdrawals []domain.Withdrawal) {
	if len(withdrawals) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalsResponse(withdrawals))
}

func parsePayment(rawAmount, rawMethod string) (decimal.Decimal, domain.Method, error) {
	amount, err := domain.ParseAmount(rawAmount)
	if err != nil {
		return decimal.Zero, "", err
	}
	method, err := domain.ParseMethod(rawMethod)
	if err != nil {
		return decimal.Zero, "", err
	}
	return amount, method, nil
}
