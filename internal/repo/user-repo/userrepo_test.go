package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var (
	createdAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	userCols  = []string{"id", "login", "password_hash", "full_name", "email", "role", "created_at"}
)

func userRows(users ...domain.User) *pgxmock.Rows {
	rows := pgxmock.NewRows(userCols)
	for _, u := range users {
		rows.AddRow(u.ID, u.Login, u.PasswordHash, u.FullName, u.Email, u.Role, u.CreatedAt)
	}
	return rows
}

var testUser = domain.User{
	ID:           1,
	Login:        "test_user",
	PasswordHash: "hashed_password",
	FullName:     "Test User",
	Email:        "test@example.com",
	Role:         domain.RoleMember,
	CreatedAt:    createdAt,
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "test_user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE login = $1")).
					WithArgs("test_user").
					WillReturnRows(userRows(testUser))
			},
			expectErr: false,
			result:    &testUser,
		},
		{
			name:  "User not found",
			login: "non_existing_user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE login = $1")).
					WithArgs("non_existing_user").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			login: "test_user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE login = $1")).
					WithArgs("test_user").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(userRows(testUser))
	user, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, &testUser, user)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(2).
		WillReturnError(pgx.ErrNoRows)
	user, err = repo.FindByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		user        *domain.User
		mockSetup   func()
		expectedErr error
		result      *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Login:        "new_user",
				PasswordHash: "hashed_password",
				FullName:     "New User",
				Role:         domain.RoleMember,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash, full_name, email, role)")).
					WithArgs("new_user", "hashed_password", "New User", "", "MEMBER").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))
			},
			result: &domain.User{
				ID:           1,
				Login:        "new_user",
				PasswordHash: "hashed_password",
				FullName:     "New User",
				Role:         domain.RoleMember,
				CreatedAt:    createdAt,
			},
		},
		{
			name: "Login taken",
			user: &domain.User{Login: "dup", PasswordHash: "h", Role: domain.RoleMember},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("dup", "h", "", "", "MEMBER").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: domain.ErrUserExists,
		},
		{
			name: "Database error",
			user: &domain.User{Login: "new_user", PasswordHash: "hashed_password", Role: domain.RoleMember},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("new_user", "hashed_password", "", "", "MEMBER").
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	admin := testUser
	admin.ID, admin.Login, admin.Role = 2, "root", domain.RoleAdmin

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id")).
		WillReturnRows(userRows(testUser, admin))
	users, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.User{testUser, admin}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByRole(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUsers []domain.User
		expectedError error
	}{
		{
			name: "Members only",
			prepareMock: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE role = $1 ORDER BY id")).
					WithArgs("MEMBER").
					WillReturnRows(userRows(testUser))
			},
			expectedUsers: []domain.User{testUser},
		},
		{
			name: "No members",
			prepareMock: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE role = $1 ORDER BY id")).
					WithArgs("MEMBER").
					WillReturnRows(userRows())
			},
			expectedUsers: nil,
		},
		{
			name: "Query fails",
			prepareMock: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE role = $1 ORDER BY id")).
					WithArgs("MEMBER").
					WillReturnError(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			users, err := repo.ListByRole(context.Background(), domain.RoleMember)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUsers, users)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateRole(t *testing.T) {
	repo, mock := NewMock(t)
	promoted := testUser
	promoted.Role = domain.RoleAdmin

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WithArgs("ADMIN", 1).
		WillReturnRows(userRows(promoted))
	user, err := repo.UpdateRole(context.Background(), 1, domain.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WithArgs("ADMIN", 9).
		WillReturnError(pgx.ErrNoRows)
	user, err = repo.UpdateRole(context.Background(), 9, domain.RoleAdmin)
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteAndCount(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	deleted, err := repo.Delete(context.Background(), 7)
	assert.NoError(t, err)
	assert.True(t, deleted)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(8).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err = repo.Delete(context.Background(), 8)
	assert.NoError(t, err)
	assert.False(t, deleted)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE role = $1")).
		WithArgs("MEMBER").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))
	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
