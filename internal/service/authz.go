package service

import (
	"context"

	"github.com/samber/oops"

	"maets/internal/domain"
)

// Authorizer decides role-gated access. Roles are read from the role store on
// every call, so a revoked role takes effect on the next request.
type Authorizer struct {
	roles RoleRepository
}

// NewAuthorizer returns an Authorizer reading roles from roles.
func NewAuthorizer(roles RoleRepository) *Authorizer {
	return &Authorizer{roles: roles}
}

// Roles returns the role set of a user.
func (a *Authorizer) Roles(ctx context.Context, userID uint) (domain.RoleSet, error) {
	rows, err := a.roles.RolesOf(ctx, userID)
	if err != nil {
		return nil, internal("load roles", err)
	}
	return domain.NewRoleSet(rows), nil
}

// RequireAdmin fails with FORBIDDEN unless the user holds the admin role.
func (a *Authorizer) RequireAdmin(ctx context.Context, userID uint) error {
	set, err := a.Roles(ctx, userID)
	if err != nil {
		return err
	}
	if !set.IsAdmin() {
		return oops.Code(CodeForbidden).With("user_id", userID).Errorf("Access denied: Admins only.")
	}
	return nil
}
