package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/sacco/docs"
	adminhandlers "github.com/GlebRadaev/sacco/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/sacco/internal/handlers/auth"
	budgethandlers "github.com/GlebRadaev/sacco/internal/handlers/budget"
	loanhandlers "github.com/GlebRadaev/sacco/internal/handlers/loans"
	memberhandlers "github.com/GlebRadaev/sacco/internal/handlers/members"
	savingshandlers "github.com/GlebRadaev/sacco/internal/handlers/savings"
	"github.com/GlebRadaev/sacco/internal/service"
	"github.com/GlebRadaev/sacco/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	ChangeRole(w http.ResponseWriter, r *http.Request)
	DeleteMember(w http.ResponseWriter, r *http.Request)
}

type SavingsHandler interface {
	GetUserSavings(w http.ResponseWriter, r *http.Request)
	GetByAccountNumber(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	ListDeposits(w http.ResponseWriter, r *http.Request)
	CreateWithdrawal(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ListPendingWithdrawals(w http.ResponseWriter, r *http.Request)
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
	AssignProduct(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	GetLoan(w http.ResponseWriter, r *http.Request)
	ListUserLoans(w http.ResponseWriter, r *http.Request)
	ListPendingLoans(w http.ResponseWriter, r *http.Request)
	ApproveLoan(w http.ResponseWriter, r *http.Request)
	RejectLoan(w http.ResponseWriter, r *http.Request)
	Repay(w http.ResponseWriter, r *http.Request)
	ListRepayments(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	GetProduct(w http.ResponseWriter, r *http.Request)
	CreateProduct(w http.ResponseWriter, r *http.Request)
}

type BudgetHandler interface {
	ListCategories(w http.ResponseWriter, r *http.Request)
	CreateCategory(w http.ResponseWriter, r *http.Request)
	UpdateCategory(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)
	GenerateRecommendations(w http.ResponseWriter, r *http.Request)
	ListRecommendations(w http.ResponseWriter, r *http.Request)
	DeleteRecommendation(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	GenerateAllRecommendations(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	MemberHandler  MemberHandler
	SavingsHandler SavingsHandler
	LoanHandler    LoanHandler
	BudgetHandler  BudgetHandler
	AdminHandler   AdminHandler
	Sessions       auth.SessionValidator
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		MemberHandler:  memberhandlers.New(s.MemberService),
		SavingsHandler: savingshandlers.New(s.SavingsService),
		LoanHandler:    loanhandlers.New(s.LoanService),
		BudgetHandler:  budgethandlers.New(s.BudgetService),
		AdminHandler:   adminhandlers.New(s.ReportService, s.BatchService),
		Sessions:       s.Sessions,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.Sessions))
			r.Get("/user/me", h.MemberHandler.Me)

			r.Route("/users/{userID}", func(r chi.Router) {
				r.Get("/savings", h.SavingsHandler.GetUserSavings)
				r.Get("/loans", h.LoanHandler.ListUserLoans)
				r.Get("/budget-categories", h.BudgetHandler.ListCategories)
				r.Post("/budget-categories", h.BudgetHandler.CreateCategory)
				r.Get("/recommendations", h.BudgetHandler.ListRecommendations)
				r.Post("/recommendations", h.BudgetHandler.GenerateRecommendations)
			})

			r.Route("/savings", func(r chi.Router) {
				r.Get("/accounts/{accountNumber}", h.SavingsHandler.GetByAccountNumber)
				r.Route("/{savingsID}", func(r chi.Router) {
					r.Get("/deposits", h.SavingsHandler.ListDeposits)
					r.Post("/deposits", h.SavingsHandler.Deposit)
					r.Get("/withdrawals", h.SavingsHandler.ListWithdrawals)
					r.Post("/withdrawals", h.SavingsHandler.CreateWithdrawal)
					r.With(auth.AdminOnly).Put("/product", h.SavingsHandler.AssignProduct)
				})
			})
			r.Get("/savings-products", h.SavingsHandler.ListProducts)
			r.With(auth.AdminOnly).Post("/savings-products", h.SavingsHandler.CreateProduct)

			r.Route("/withdrawals/{withdrawalID}", func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Post("/approve", h.SavingsHandler.ApproveWithdrawal)
				r.Post("/reject", h.SavingsHandler.RejectWithdrawal)
			})

			r.Route("/loan-products", func(r chi.Router) {
				r.Get("/", h.LoanHandler.ListProducts)
				r.Get("/{productID}", h.LoanHandler.GetProduct)
				r.With(auth.AdminOnly).Post("/", h.LoanHandler.CreateProduct)
			})

			r.Route("/loans", func(r chi.Router) {
				r.Post("/", h.LoanHandler.Apply)
				r.Route("/{loanID}", func(r chi.Router) {
					r.Get("/", h.LoanHandler.GetLoan)
					r.With(auth.AdminOnly).Post("/approve", h.LoanHandler.ApproveLoan)
					r.With(auth.AdminOnly).Post("/reject", h.LoanHandler.RejectLoan)
					r.Get("/repayments", h.LoanHandler.ListRepayments)
					r.Post("/repayments", h.LoanHandler.Repay)
				})
			})

			r.Put("/budget-categories/{categoryID}", h.BudgetHandler.UpdateCategory)
			r.Delete("/budget-categories/{categoryID}", h.BudgetHandler.DeleteCategory)
			r.Delete("/recommendations/{recommendationID}", h.BudgetHandler.DeleteRecommendation)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Get("/members", h.MemberHandler.ListMembers)
				r.Patch("/members/{userID}/role", h.MemberHandler.ChangeRole)
				r.Delete("/members/{userID}", h.MemberHandler.DeleteMember)
				r.Get("/withdrawals/pending", h.SavingsHandler.ListPendingWithdrawals)
				r.Get("/loans/pending", h.LoanHandler.ListPendingLoans)
				r.Get("/summary", h.AdminHandler.Summary)
				r.Post("/recommendations", h.AdminHandler.GenerateAllRecommendations)
			})
		})
	})

	return r
}
