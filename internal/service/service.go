package service

import (
	"context"

	"github.com/GlebRadaev/sacco/internal/batch"
	"github.com/GlebRadaev/sacco/internal/config"
	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/handlers/admin"
	"github.com/GlebRadaev/sacco/internal/handlers/auth"
	"github.com/GlebRadaev/sacco/internal/handlers/budget"
	"github.com/GlebRadaev/sacco/internal/handlers/loans"
	"github.com/GlebRadaev/sacco/internal/handlers/members"
	"github.com/GlebRadaev/sacco/internal/handlers/savings"
	"github.com/GlebRadaev/sacco/internal/repo"
	"github.com/GlebRadaev/sacco/internal/service/authservice"
	"github.com/GlebRadaev/sacco/internal/service/budgetservice"
	"github.com/GlebRadaev/sacco/internal/service/loanservice"
	"github.com/GlebRadaev/sacco/internal/service/memberservice"
	"github.com/GlebRadaev/sacco/internal/service/reportservice"
	"github.com/GlebRadaev/sacco/internal/service/savingsservice"

	pkgauth "github.com/GlebRadaev/sacco/pkg/auth"
)

// AuthService is the auth handler's surface plus the startup admin bootstrap.
type AuthService interface {
	auth.Service
	EnsureAdmin(ctx context.Context, login, password string) (*domain.User, error)
}

type Services struct {
	AuthService    AuthService
	MemberService  members.Service
	SavingsService savings.Service
	LoanService    loans.Service
	BudgetService  budget.Service
	ReportService  admin.ReportService
	BatchService   admin.BatchService
	Sessions       pkgauth.SessionValidator
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	savingsService := savingsservice.New(repo.SavingsRepo, repo.DepositRepo, repo.Withdrawal, repo.SavingsProductRepo, repo.TxManager)
	authService := authservice.New(repo.UserRepo, savingsService, &pkgauth.HashService{}, jwtService, repo.TxManager, cfg.TokenTTL)
	memberService := memberservice.New(repo.UserRepo)
	loanService := loanservice.New(repo.LoanRepo, repo.LoanProductRepo, repo.RepaymentRepo, repo.SavingsRepo, repo.TxManager)
	budgetService := budgetservice.New(repo.BudgetRepo, repo.SavingsRepo, repo.LoanRepo)
	reportService := reportservice.New(repo.UserRepo, repo.SavingsRepo, repo.Withdrawal, repo.LoanRepo)

	return &Services{
		AuthService:    authService,
		MemberService:  memberService,
		SavingsService: savingsService,
		LoanService:    loanService,
		BudgetService:  budgetService,
		ReportService:  reportService,
		BatchService:   batch.New(memberService, budgetService, cfg.BatchWorkers),
		Sessions:       authService,
	}
}
