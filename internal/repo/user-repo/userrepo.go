package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/GlebRadaev/sacco/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const userColumns = `id, login, password_hash, full_name, email, role, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.FullName, &user.Email, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE login = $1", login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err), zap.Int("user_id", id))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, full_name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.FullName, user.Email, string(user.Role)).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pg.UniqueViolation {
			return nil, domain.ErrUserExists
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	return repo.queryUsers(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
}

func (repo *Repository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return repo.queryUsers(ctx, "SELECT "+userColumns+" FROM users WHERE role = $1 ORDER BY id", string(role))
}

func (repo *Repository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("failed to scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (repo *Repository) UpdateRole(ctx context.Context, id int, role domain.Role) (*domain.User, error) {
	query := `
		UPDATE users
		SET role = $1
		WHERE id = $2
		RETURNING ` + userColumns
	user, err := scanUser(repo.db.QueryRow(ctx, query, string(role), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update user role", zap.Error(err), zap.Int("user_id", id))
		return nil, err
	}
	return user, nil
}

// Delete removes the user; savings, loans and budget rows go with it via cascades.
func (repo *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err), zap.Int("user_id", id))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (repo *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE role = $1", string(domain.RoleMember)).Scan(&count); err != nil {
		zap.L().Error("can't count members", zap.Error(err))
		return 0, err
	}
	return count, nil
}
