package memberservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/sacco/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var (
	member = domain.Actor{UserID: 7, Role: domain.RoleMember}
	admin  = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestGetMember(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		actor         domain.Actor
		userID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Member reads self",
			actor:  member,
			userID: 7,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.User{ID: 7, Role: domain.RoleMember}, nil)
			},
		},
		{
			name:          "Member reads someone else",
			actor:         member,
			userID:        9,
			prepareMock:   func() {},
			expectedError: domain.ErrForbidden,
		},
		{
			name:   "Admin reads missing user",
			actor:  admin,
			userID: 9,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.GetMember(context.Background(), tt.actor, tt.userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.userID, user.ID)
		})
	}
}

func TestListMembers(t *testing.T) {
	service, repo := NewMock(t)
	users := []domain.User{
		{ID: 1, Role: domain.RoleAdmin},
		{ID: 7, Role: domain.RoleMember},
		{ID: 8, Role: domain.RoleMember},
	}

	_, err := service.ListMembers(context.Background(), member)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	repo.EXPECT().List(gomock.Any()).Return(users, nil)
	all, err := service.ListMembers(context.Background(), admin)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	repo.EXPECT().ListByRole(gomock.Any(), domain.RoleMember).Return(users[1:], nil)
	members, err := service.ListByRole(context.Background(), domain.RoleMember)
	assert.NoError(t, err)
	assert.Equal(t, users[1:], members)

	repo.EXPECT().ListByRole(gomock.Any(), domain.RoleMember).Return(nil, errors.New("db error"))
	_, err = service.ListByRole(context.Background(), domain.RoleMember)
	assert.EqualError(t, err, "db error")
}

func TestChangeRole(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		actor         domain.Actor
		role          domain.Role
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Promote member",
			actor: admin,
			role:  domain.RoleAdmin,
			prepareMock: func() {
				repo.EXPECT().UpdateRole(gomock.Any(), 7, domain.RoleAdmin).Return(&domain.User{ID: 7, Role: domain.RoleAdmin}, nil)
			},
		},
		{
			name:          "Unknown role",
			actor:         admin,
			role:          domain.Role("OWNER"),
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidRole,
		},
		{
			name:          "Member cannot change roles",
			actor:         member,
			role:          domain.RoleAdmin,
			prepareMock:   func() {},
			expectedError: domain.ErrForbidden,
		},
		{
			name:  "Missing user",
			actor: admin,
			role:  domain.RoleMember,
			prepareMock: func() {
				repo.EXPECT().UpdateRole(gomock.Any(), 7, domain.RoleMember).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.ChangeRole(context.Background(), tt.actor, 7, tt.role)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.role, user.Role)
		})
	}
}

func TestDeleteMember(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		actor         domain.Actor
		userID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Admin deletes member",
			actor:  admin,
			userID: 7,
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), 7).Return(true, nil)
			},
		},
		{
			name:          "Admin cannot delete self",
			actor:         admin,
			userID:        1,
			prepareMock:   func() {},
			expectedError: ErrSelfDelete,
		},
		{
			name:   "Nothing deleted",
			actor:  admin,
			userID: 7,
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), 7).Return(false, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "Member cannot delete",
			actor:         member,
			userID:        7,
			prepareMock:   func() {},
			expectedError: domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.DeleteMember(context.Background(), tt.actor, tt.userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
