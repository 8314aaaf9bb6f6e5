package savingsservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/pg"
	"github.com/GlebRadaev/sacco/pkg/validate"
)

//go:generate mockgen -source=savingsservice.go -destination=mock_repo.go -package=savingsservice

type SavingsRepo interface {
	Create(ctx context.Context, userID int, accountNumber string) (*domain.Savings, error)
	GetByID(ctx context.Context, id int) (*domain.Savings, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Savings, error)
	GetByUserID(ctx context.Context, userID int) (*domain.Savings, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.Savings, error)
	UpdateBalance(ctx context.Context, id int, balance decimal.Decimal) (*domain.Savings, error)
	SetProduct(ctx context.Context, id, productID int) (*domain.Savings, error)
}

type DepositRepo interface {
	Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error)
	ListBySavingsID(ctx context.Context, savingsID int) ([]domain.Deposit, error)
}

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, id int, status domain.Status, processedAt time.Time) (*domain.Withdrawal, error)
	GetWithdrawalsBySavingsID(ctx context.Context, savingsID int) ([]domain.Withdrawal, error)
	GetWithdrawalsByStatus(ctx context.Context, status domain.Status) ([]domain.Withdrawal, error)
}

type ProductRepo interface {
	Create(ctx context.Context, product *domain.SavingsProduct) (*domain.SavingsProduct, error)
	GetByID(ctx context.Context, id int) (*domain.SavingsProduct, error)
	List(ctx context.Context) ([]domain.SavingsProduct, error)
}

type Service struct {
	savingsRepo    SavingsRepo
	depositRepo    DepositRepo
	withdrawalRepo WithdrawalRepo
	productRepo    ProductRepo
	txManager      pg.TXManager
	now            func() time.Time
}

func New(savingsRepo SavingsRepo, depositRepo DepositRepo, withdrawalRepo WithdrawalRepo, productRepo ProductRepo, txManager pg.TXManager) *Service {
	return &Service{
		savingsRepo:    savingsRepo,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		productRepo:    productRepo,
		txManager:      txManager,
		now:            time.Now,
	}
}

// CreateAccount opens the empty savings account every member owns.
func (s *Service) CreateAccount(ctx context.Context, userID int) (*domain.Savings, error) {
	savings, err := s.savingsRepo.Create(ctx, userID, validate.AccountNumber(userID))
	if err != nil {
		zap.L().Error("failed to create savings account", zap.Error(err))
		return nil, err
	}
	return savings, nil
}

func (s *Service) GetSavings(ctx context.Context, actor domain.Actor, userID int) (*domain.Savings, error) {
	if err := domain.Authorize(actor, userID); err != nil {
		return nil, err
	}
	savings, err := s.savingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get savings", zap.Error(err))
		return nil, err
	}
	if savings == nil {
		return nil, domain.ErrNotFound
	}
	return savings, nil
}

func (s *Service) GetSavingsByAccountNumber(ctx context.Context, actor domain.Actor, accountNumber string) (*domain.Savings, error) {
	if !validate.IsLuna(accountNumber) {
		return nil, domain.ErrInvalidAccountNumber
	}
	savings, err := s.savingsRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		zap.L().Error("failed to get savings by account number", zap.Error(err))
		return nil, err
	}
	if savings == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.Authorize(actor, savings.UserID); err != nil {
		return nil, err
	}
	return savings, nil
}

// Deposit records the deposit and credits the account in one transaction.
func (s *Service) Deposit(ctx context.Context, actor domain.Actor, savingsID int, amount decimal.Decimal, method domain.Method, notes string) (*domain.Deposit, error) {
	if !amount.IsPositive() || amount.GreaterThan(domain.MaxAmount) {
		return nil, domain.ErrInvalidAmount
	}

	var deposit *domain.Deposit
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		savings, err := s.lockSavings(ctx, actor, savingsID)
		if err != nil {
			return err
		}
		balance := savings.Balance.Add(amount)
		if balance.GreaterThan(domain.MaxAmount) {
			return domain.ErrInvalidAmount
		}

		deposit, err = s.depositRepo.Create(ctx, &domain.Deposit{
			SavingsID: savings.ID,
			Amount:    amount,
			Method:    method,
			Notes:     notes,
			Reference: uuid.NewString(),
			CreatedAt: s.now(),
		})
		if err != nil {
			zap.L().Error("failed to create deposit record", zap.Error(err))
			return err
		}

		if _, err := s.savingsRepo.UpdateBalance(ctx, savings.ID, balance); err != nil {
			zap.L().Error("failed to update savings balance", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("deposit accepted",
		zap.Int("savings_id", savingsID),
		zap.String("amount", domain.FormatAmount(amount)),
		zap.String("reference", deposit.Reference))
	return deposit, nil
}

func (s *Service) ListDeposits(ctx context.Context, actor domain.Actor, savingsID int) ([]domain.Deposit, error) {
	if _, err := s.ownedSavings(ctx, actor, savingsID); err != nil {
		return nil, err
	}
	deposits, err := s.depositRepo.ListBySavingsID(ctx, savingsID)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

// CreateWithdrawal files a PENDING withdrawal request. Members cannot request
// more than their current balance; admins may, and the approval step still
// enforces sufficiency.
func (s *Service) CreateWithdrawal(ctx context.Context, actor domain.Actor, savingsID int, amount decimal.Decimal, method domain.Method, reason string) (*domain.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	savings, err := s.ownedSavings(ctx, actor, savingsID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && amount.GreaterThan(savings.Balance) {
		zap.L().Info("withdrawal request exceeds balance",
			zap.Int("savings_id", savingsID),
			zap.String("amount", domain.FormatAmount(amount)),
			zap.String("balance", domain.FormatAmount(savings.Balance)))
		return nil, domain.ErrInsufficientBalance
	}

	withdrawal := &domain.Withdrawal{
		SavingsID: savings.ID,
		Amount:    amount,
		Method:    method,
		Reason:    reason,
		Status:    domain.StatusPending,
		Reference: uuid.NewString(),
		CreatedAt: s.now(),
	}

	withdrawal, err = s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		zap.L().Error("failed to create withdrawal record", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

// ApproveWithdrawal re-checks the balance at approval time. On insufficient
// funds the withdrawal stays PENDING.
func (s *Service) ApproveWithdrawal(ctx context.Context, actor domain.Actor, withdrawalID int) (*domain.Withdrawal, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var approved *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		withdrawal, err := s.lockPendingWithdrawal(ctx, withdrawalID)
		if err != nil {
			return err
		}

		savings, err := s.savingsRepo.GetByIDForUpdate(ctx, withdrawal.SavingsID)
		if err != nil {
			zap.L().Error("failed to get savings", zap.Error(err))
			return err
		}
		if savings == nil {
			return fmt.Errorf("savings %d: %w", withdrawal.SavingsID, domain.ErrNotFound)
		}

		if withdrawal.Amount.GreaterThan(savings.Balance) {
			return domain.ErrInsufficientBalance
		}

		if _, err := s.savingsRepo.UpdateBalance(ctx, savings.ID, savings.Balance.Sub(withdrawal.Amount)); err != nil {
			zap.L().Error("failed to update savings balance", zap.Error(err))
			return err
		}

		approved, err = s.withdrawalRepo.UpdateStatus(ctx, withdrawal.ID, domain.StatusApproved, s.now())
		if err != nil {
			zap.L().Error("failed to approve withdrawal", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("withdrawal approved", zap.Int("withdrawal_id", withdrawalID), zap.Int("admin_id", actor.UserID))
	return approved, nil
}

func (s *Service) RejectWithdrawal(ctx context.Context, actor domain.Actor, withdrawalID int) (*domain.Withdrawal, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var rejected *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		withdrawal, err := s.lockPendingWithdrawal(ctx, withdrawalID)
		if err != nil {
			return err
		}
		rejected, err = s.withdrawalRepo.UpdateStatus(ctx, withdrawal.ID, domain.StatusRejected, s.now())
		if err != nil {
			zap.L().Error("failed to reject withdrawal", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("withdrawal rejected", zap.Int("withdrawal_id", withdrawalID), zap.Int("admin_id", actor.UserID))
	return rejected, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, actor domain.Actor, savingsID int) ([]domain.Withdrawal, error) {
	if _, err := s.ownedSavings(ctx, actor, savingsID); err != nil {
		return nil, err
	}
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsBySavingsID(ctx, savingsID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) GetPendingWithdrawals(ctx context.Context, actor domain.Actor) ([]domain.Withdrawal, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByStatus(ctx, domain.StatusPending)
	if err != nil {
		zap.L().Error("failed to fetch pending withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) CreateProduct(ctx context.Context, actor domain.Actor, product *domain.SavingsProduct) (*domain.SavingsProduct, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if product.InterestRate.IsNegative() || product.MinimumBalance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if product.TermMonths < 0 {
		return nil, domain.ErrInvalidTerm
	}
	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		if !errors.Is(err, domain.ErrProductExists) {
			zap.L().Error("failed to create savings product", zap.Error(err))
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.SavingsProduct, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list savings products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *Service) AssignProduct(ctx context.Context, actor domain.Actor, savingsID, productID int) (*domain.Savings, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		zap.L().Error("failed to get savings product", zap.Error(err))
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("savings product %d: %w", productID, domain.ErrNotFound)
	}
	savings, err := s.savingsRepo.SetProduct(ctx, savingsID, productID)
	if err != nil {
		zap.L().Error("failed to assign savings product", zap.Error(err))
		return nil, err
	}
	if savings == nil {
		return nil, fmt.Errorf("savings %d: %w", savingsID, domain.ErrNotFound)
	}
	return savings, nil
}

func (s *Service) ownedSavings(ctx context.Context, actor domain.Actor, savingsID int) (*domain.Savings, error) {
	savings, err := s.savingsRepo.GetByID(ctx, savingsID)
	if err != nil {
		zap.L().Error("failed to get savings", zap.Error(err))
		return nil, err
	}
	if savings == nil {
		return nil, fmt.Errorf("savings %d: %w", savingsID, domain.ErrNotFound)
	}
	if err := domain.Authorize(actor, savings.UserID); err != nil {
		return nil, err
	}
	return savings, nil
}

func (s *Service) lockSavings(ctx context.Context, actor domain.Actor, savingsID int) (*domain.Savings, error) {
	savings, err := s.savingsRepo.GetByIDForUpdate(ctx, savingsID)
	if err != nil {
		zap.L().Error("failed to lock savings", zap.Error(err))
		return nil, err
	}
	if savings == nil {
		return nil, fmt.Errorf("savings %d: %w", savingsID, domain.ErrNotFound)
	}
	if err := domain.Authorize(actor, savings.UserID); err != nil {
		return nil, err
	}
	return savings, nil
}

func (s *Service) lockPendingWithdrawal(ctx context.Context, withdrawalID int) (*domain.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.GetForUpdate(ctx, withdrawalID)
	if err != nil {
		zap.L().Error("failed to get withdrawal", zap.Error(err))
		return nil, err
	}
	if withdrawal == nil {
		return nil, fmt.Errorf("withdrawal %d: %w", withdrawalID, domain.ErrNotFound)
	}
	if withdrawal.Status != domain.StatusPending {
		return nil, fmt.Errorf("withdrawal %d is %s: %w", withdrawalID, withdrawal.Status, domain.ErrAlreadyProcessed)
	}
	return withdrawal, nil
}
