package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/pg"
	"github.com/GlebRadaev/sacco/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_repo.go -package=authservice

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id int, role domain.Role) (*domain.User, error)
}

type AccountOpener interface {
	CreateAccount(ctx context.Context, userID int) (*domain.Savings, error)
}

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	userRepo    Repo
	accounts    AccountOpener
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	txManager   pg.TXManager
	tokenTTL    time.Duration
}

func New(repo Repo, accounts AccountOpener, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, txManager pg.TXManager, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		accounts:    accounts,
		hashService: hashService,
		jwtService:  jwtService,
		txManager:   txManager,
		tokenTTL:    tokenTTL,
	}
}

// Register creates a MEMBER together with their empty savings account.
func (s *Service) Register(ctx context.Context, login, password, fullName, email string) (*domain.User, error) {
	return s.register(ctx, &domain.User{
		Login:    login,
		FullName: fullName,
		Email:    email,
		Role:     domain.RoleMember,
	}, password)
}

func (s *Service) register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, user.Login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", user.Login))
		return nil, domain.ErrUserExists
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user.PasswordHash = hashedPassword

	var newUser *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.userRepo.Create(ctx, user)
		if err != nil {
			zap.L().Error("can't create user: ", zap.Error(err))
			return err
		}
		newUser = created
		if _, err := s.accounts.CreateAccount(ctx, newUser.ID); err != nil {
			zap.L().Error("can't create savings account: ", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", user.Login), zap.String("role", string(user.Role)))
	return newUser, nil
}

// EnsureAdmin makes sure an ADMIN with the given login exists, promoting an
// existing member if needed. The password of an existing user is left as is.
func (s *Service) EnsureAdmin(ctx context.Context, login, password string) (*domain.User, error) {
	existing, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existing == nil {
		return s.register(ctx, &domain.User{Login: login, FullName: "Administrator", Role: domain.RoleAdmin}, password)
	}
	if existing.Role == domain.RoleAdmin {
		return existing, nil
	}
	promoted, err := s.userRepo.UpdateRole(ctx, existing.ID, domain.RoleAdmin)
	if err != nil {
		zap.L().Error("can't promote user: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user promoted to admin", zap.String("login", login))
	return promoted, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, string(user.Role), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// ValidateSession checks the token signature and expiry, then reloads the
// user so a role change or removal takes effect on the next request.
func (s *Service) ValidateSession(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidSession, err)
	}
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		zap.L().Error("failed to load session user", zap.Int("user_id", claims.UserID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d no longer exists", auth.ErrInvalidSession, claims.UserID)
	}
	if string(user.Role) != claims.Role {
		zap.L().Info("session role differs from token",
			zap.Int("user_id", user.ID),
			zap.String("token_role", claims.Role),
			zap.String("role", string(user.Role)))
	}
	claims.Role = string(user.Role)
	return claims, nil
}
