package memberservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/sacco/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=memberservice.go -destination=mock_repo.go -package=memberservice

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id int) (bool, error)
}

var ErrSelfDelete = errors.New("admins cannot delete themselves")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetMember(ctx context.Context, actor domain.Actor, userID int) (*domain.User, error) {
	if err := domain.Authorize(actor, userID); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get member", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("member %d: %w", userID, domain.ErrNotFound)
	}
	return user, nil
}

func (s *Service) ListMembers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list members", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// ListByRole is used by batch jobs that run on behalf of the system.
func (s *Service) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	users, err := s.repo.ListByRole(ctx, role)
	if err != nil {
		zap.L().Error("failed to list members by role", zap.String("role", string(role)), zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) ChangeRole(ctx context.Context, actor domain.Actor, userID int, role domain.Role) (*domain.User, error) {
	if err := domain.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if role != domain.RoleMember && role != domain.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}
	user, err := s.repo.UpdateRole(ctx, userID, role)
	if err != nil {
		zap.L().Error("failed to change role", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("member %d: %w", userID, domain.ErrNotFound)
	}
	zap.L().Info("member role changed",
		zap.Int("user_id", userID),
		zap.String("role", string(role)),
		zap.Int("admin_id", actor.UserID))
	return user, nil
}

func (s *Service) DeleteMember(ctx context.Context, actor domain.Actor, userID int) error {
	if err := domain.RequireAdmin(actor); err != nil {
		return err
	}
	if actor.UserID == userID {
		return ErrSelfDelete
	}
	deleted, err := s.repo.Delete(ctx, userID)
	if err != nil {
		zap.L().Error("failed to delete member", zap.Error(err))
		return err
	}
	if !deleted {
		return fmt.Errorf("member %d: %w", userID, domain.ErrNotFound)
	}
	zap.L().Info("member deleted", zap.Int("user_id", userID), zap.Int("admin_id", actor.UserID))
	return nil
}
