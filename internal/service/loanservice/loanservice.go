package loanservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/pg"
)

//go:generate mockgen -source=loanservice.go -destination=mock_repo.go -package=loanservice

type Repo interface {
	Save(ctx context.Context, loan *domain.Loan) error
	FindByID(ctx context.Context, id int) (*domain.Loan, error)
	FindForUpdate(ctx context.Context, id int) (*domain.Loan, error)
	UpdateStatus(ctx context.Context, id int, status domain.Status, processedAt time.Time) (*domain.Loan, error)
	FindLoansByUserID(ctx context.Context, userID int) ([]domain.Loan, error)
	FindLoansByStatus(ctx context.Context, status domain.Status) ([]domain.Loan, error)
}

type ProductRepo interface {
	Create(ctx context.Context, product *domain.LoanProduct) (*domain.LoanProduct, error)
	GetByID(ctx context.Context, id int) (*domain.LoanProduct, error)
	List(ctx context.Context) ([]domain.LoanProduct, error)
}

type RepaymentRepo interface {
	Create(ctx context.Context, repayment *domain.Repayment) (*domain.Repayment, error)
	ListByLoanID(ctx context.Context, loanID int) ([]domain.Repayment, error)
}

type SavingsRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Savings, error)
}

// Application is a member's request for a loan.
type Application struct {
	UserID      int
	ProductID   *int
	Amount      decimal.Decimal
	Purpose     string
	TermMonths  int
	Description string
}

type Service struct {
	repo          Repo
	productRepo   ProductRepo
	repaymentRepo RepaymentRepo
	savingsRepo   SavingsRepo
	txManager     pg.TXManager
	now           func() time.Time
}

func New(repo Repo, productRepo ProductRepo, repaymentRepo RepaymentRepo, savingsRepo SavingsRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:          repo,
		productRepo:   productRepo,
		repaymentRepo: repaymentRepo,
		savingsRepo:   savingsRepo,
		txManager:     txManager,
		now:           time.Now,
	}
}

var hundred = decimal.NewFromInt(100)

// Apply checks the application against the referenced product and files a
// PENDING loan carrying the product's interest rate as of now.
func (s *Service) Apply(ctx context.Context, actor domain.Actor, app Application) (*domain.Loan, error) {
	if err := domain.Authorize(actor, app.UserID); err != nil {
		return nil, err
	}
	if !app.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if app.TermMonths <= 0 {
		return nil, domain.ErrInvalidTerm
	}

	savings, err := s.savingsRepo.GetByUserID(ctx, app.UserID)
	if err != nil {
		zap.L().Error("failed to get member savings", zap.Error(err))
		return nil, err
	}
	if savings == nil {
		return nil, fmt.Errorf("savings of member %d: %w", app.UserID, domain.ErrNotFound)
	}

	interestRate := decimal.Zero
	if app.ProductID != nil {
		product, err := s.productRepo.GetByID(ctx, *app.ProductID)
		if err != nil {
			zap.L().Error("failed to get loan product", zap.Error(err))
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("loan product %d: %w", *app.ProductID, domain.ErrNotFound)
		}
		if err := checkEligibility(product, app, savings.Balance); err != nil {
			zap.L().Info("loan application rejected",
				zap.Int("user_id", app.UserID),
				zap.Int("product_id", product.ID),
				zap.Error(err))
			return nil, err
		}
		interestRate = product.InterestRate
	}

	loan := &domain.Loan{
		UserID:       app.UserID,
		ProductID:    app.ProductID,
		Amount:       app.Amount,
		Purpose:      strings.TrimSpace(app.Purpose),
		Description:  app.Description,
		TermMonths:   app.TermMonths,
		InterestRate: interestRate,
		Status:       domain.StatusPending,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Save(ctx, loan); err != nil {
		zap.L().Error("can't save loan: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("loan application filed", zap.Int("loan_id", loan.ID), zap.Int("user_id", loan.UserID))
	return loan, nil
}

func checkEligibility(product *domain.LoanProduct, app Application, savingsBalance decimal.Decimal) error {
	if app.Amount.GreaterThan(product.MaxAmount) {
		return domain.ErrLoanAmountExceedsLimit
	}
	if app.TermMonths > product.MaxTerm {
		return domain.ErrLoanTermExceedsLimit
	}
	if product.MinSavingsPercentage != nil {
		required := app.Amount.Mul(*product.MinSavingsPercentage).Div(hundred)
		if savingsBalance.LessThan(required) {
			return domain.ErrInsufficientCollateral
		}
	}
	return nil
}

// ApproveLoan only changes the status; no funds move.
func (s *Service) ApproveLoan(ctx context.Context, actor domain.Actor, loanID int) (*domain.Loan, error) {
	return s.decide(ctx, actor, loanID, domain.StatusApproved)
}

func (s *Service) RejectLoan(ctx context.Context, actor domain.Actor, loanID int) (*domain.Loan, error) {
	return s.decide(ctx, actor, loanID, domain.StatusRejected)
}

func (s *Service) decide(ctx context.Context, actor domain.Actor, loanID int, status domain.Status) (*domain.Loan, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var decided *domain.Loan
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		loan, err := s.repo.FindForUpdate(ctx, loanID)
		if err != nil {
			zap.L().Error("failed to get loan", zap.Error(err))
			return err
		}
		if loan == nil {
			return fmt.Errorf("loan %d: %w", loanID, domain.ErrNotFound)
		}
		if loan.Status != domain.StatusPending {
			return fmt.Errorf("loan %d is %s: %w", loanID, loan.Status, domain.ErrAlreadyProcessed)
		}
		decided, err = s.repo.UpdateStatus(ctx, loan.ID, status, s.now())
		if err != nil {
			zap.L().Error("failed to update loan status", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("loan processed",
		zap.Int("loan_id", loanID),
		zap.String("status", string(status)),
		zap.Int("admin_id", actor.UserID))
	return decided, nil
}

func (s *Service) GetLoan(ctx context.Context, actor domain.Actor, loanID int) (*domain.Loan, error) {
	loan, err := s.repo.FindByID(ctx, loanID)
	if err != nil {
		zap.L().Error("failed to get loan", zap.Error(err))
		return nil, err
	}
	if loan == nil {
		return nil, fmt.Errorf("loan %d: %w", loanID, domain.ErrNotFound)
	}
	if err := domain.Authorize(actor, loan.UserID); err != nil {
		return nil, err
	}
	return loan, nil
}

func (s *Service) GetLoans(ctx context.Context, actor domain.Actor, userID int) ([]domain.Loan, error) {
	if err := domain.Authorize(actor, userID); err != nil {
		return nil, err
	}
	loans, err := s.repo.FindLoansByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get loans", zap.Error(err))
		return nil, err
	}
	return loans, nil
}

func (s *Service) GetPendingLoans(ctx context.Context, actor domain.Actor) ([]domain.Loan, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}
	loans, err := s.repo.FindLoansByStatus(ctx, domain.StatusPending)
	if err != nil {
		zap.L().Error("failed to get pending loans", zap.Error(err))
		return nil, err
	}
	return loans, nil
}

// Repay records a repayment against an approved loan. The loan status and
// the member's savings are left untouched.
func (s *Service) Repay(ctx context.Context, actor domain.Actor, loanID int, amount decimal.Decimal, method domain.Method, notes string) (*domain.Repayment, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	loan, err := s.GetLoan(ctx, actor, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status != domain.StatusApproved {
		return nil, domain.ErrLoanNotApproved
	}

	repayment, err := s.repaymentRepo.Create(ctx, &domain.Repayment{
		LoanID:    loan.ID,
		Amount:    amount,
		Method:    method,
		Notes:     notes,
		Reference: uuid.NewString(),
		CreatedAt: s.now(),
	})
	if err != nil {
		zap.L().Error("failed to create repayment", zap.Error(err))
		return nil, err
	}
	return repayment, nil
}

func (s *Service) GetRepayments(ctx context.Context, actor domain.Actor, loanID int) ([]domain.Repayment, error) {
	if _, err := s.GetLoan(ctx, actor, loanID); err != nil {
		return nil, err
	}
	repayments, err := s.repaymentRepo.ListByLoanID(ctx, loanID)
	if err != nil {
		zap.L().Error("failed to get repayments", zap.Error(err))
		return nil, err
	}
	return repayments, nil
}

func (s *Service) CreateProduct(ctx context.Context, actor domain.Actor, product *domain.LoanProduct) (*domain.LoanProduct, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if !product.MaxAmount.IsPositive() || product.InterestRate.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if product.MinSavingsPercentage != nil && product.MinSavingsPercentage.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if product.MaxTerm <= 0 {
		return nil, domain.ErrInvalidTerm
	}
	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		if !errors.Is(err, domain.ErrProductExists) {
			zap.L().Error("failed to create loan product", zap.Error(err))
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) GetProduct(ctx context.Context, productID int) (*domain.LoanProduct, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		zap.L().Error("failed to get loan product", zap.Error(err))
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("loan product %d: %w", productID, domain.ErrNotFound)
	}
	return product, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.LoanProduct, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list loan products", zap.Error(err))
		return nil, err
	}
	return products, nil
}
