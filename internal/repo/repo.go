package repo

import (
	"github.com/GlebRadaev/sacco/internal/pg"
	budgetrepo "github.com/GlebRadaev/sacco/internal/repo/budget-repo"
	depositrepo "github.com/GlebRadaev/sacco/internal/repo/deposit-repo"
	loanrepo "github.com/GlebRadaev/sacco/internal/repo/loan-repo"
	productrepo "github.com/GlebRadaev/sacco/internal/repo/product-repo"
	repaymentrepo "github.com/GlebRadaev/sacco/internal/repo/repayment-repo"
	savingsrepo "github.com/GlebRadaev/sacco/internal/repo/savings-repo"
	userrepo "github.com/GlebRadaev/sacco/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/sacco/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo           *userrepo.Repository
	SavingsRepo        *savingsrepo.Repository
	DepositRepo        *depositrepo.Repository
	Withdrawal         *withdrawalrepo.Repository
	SavingsProductRepo *productrepo.SavingsRepository
	LoanProductRepo    *productrepo.LoanRepository
	LoanRepo           *loanrepo.Repository
	RepaymentRepo      *repaymentrepo.Repository
	BudgetRepo         *budgetrepo.Repository
	TxManager          pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:           userrepo.New(conn),
		SavingsRepo:        savingsrepo.New(conn),
		DepositRepo:        depositrepo.New(conn),
		Withdrawal:         withdrawalrepo.New(conn),
		SavingsProductRepo: productrepo.NewSavings(conn),
		LoanProductRepo:    productrepo.NewLoan(conn),
		LoanRepo:           loanrepo.New(conn),
		RepaymentRepo:      repaymentrepo.New(conn),
		BudgetRepo:         budgetrepo.New(conn),
		TxManager:          txManager,
	}
}
