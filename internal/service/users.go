package service

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"maets/internal/domain"
	"maets/internal/store"
)

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users      []Account `json:"users"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	Total      int64     `json:"total"`
	TotalPages int       `json:"total_pages"`
}

// UserService backs the admin user endpoints.
type UserService struct {
	users UserRepository
	roles RoleRepository
}

// NewUserService returns a UserService.
func NewUserService(users UserRepository, roles RoleRepository) *UserService {
	return &UserService{users: users, roles: roles}
}

// ListUsers returns a page of accounts ordered by id. page starts at 1.
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) (*UserPage, error) {
	users, total, err := s.users.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, internal("list users", err)
	}
	accounts := make([]Account, 0, len(users))
	for _, u := range users {
		rows, err := s.roles.RolesOf(ctx, u.ID)
		if err != nil {
			return nil, internal("load roles", err)
		}
		accounts = append(accounts, Account{ID: u.ID, Email: u.Email, Roles: domain.NewRoleSet(rows).Names()})
	}
	return &UserPage{
		Users:      accounts,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (int(total) + pageSize - 1) / pageSize,
	}, nil
}

// DeleteUser removes a user with their role assignments and ownerships.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return oops.Code(CodeNotFound).With("user_id", id).Errorf("User not found")
	}
	if err != nil {
		return internal("delete user", err)
	}
	logrus.WithField("user_id", id).Info("User deleted")
	return nil
}

// GrantAdmin gives the admin role to the account with the given email. Granting it twice is a no-op.
func (s *UserService) GrantAdmin(ctx context.Context, email string) (*Account, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, oops.Code(CodeNotFound).With("email", email).Errorf("User not found")
	}
	if err != nil {
		return nil, internal("find user", err)
	}
	roles, err := s.roles.FindByNames(ctx, []string{string(domain.RoleAdmin)})
	if err != nil {
		return nil, internal("find admin role", err)
	}
	if len(roles) == 0 {
		return nil, internal("find admin role", errors.New("admin role is not seeded"))
	}
	if err := s.roles.Assign(ctx, user.ID, roles[0].ID); err != nil {
		return nil, internal("assign admin role", err)
	}
	rows, err := s.roles.RolesOf(ctx, user.ID)
	if err != nil {
		return nil, internal("load roles", err)
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("Admin role granted")
	return &Account{ID: user.ID, Email: user.Email, Roles: domain.NewRoleSet(rows).Names()}, nil
}
