package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	account, err := f.auth.Register(ctx, "a@x.com", "pw", nil)
	require.NoError(t, err)
	assert.NotZero(t, account.ID)
	assert.Equal(t, "a@x.com", account.Email)
	assert.Equal(t, []string{"user"}, account.Roles)

	stored, err := f.users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", stored.PasswordHash)
}

func TestRegisterIgnoresUnknownRoles(t *testing.T) {
	f := newFixture(t)

	account, err := f.auth.Register(context.Background(), "root@x.com", "pw", []string{"admin", "wizard", "user"})
	require.NoError(t, err)
	assert.Equal(t, []string{"user", "admin"}, account.Roles)

	roles, err := f.authz.Roles(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, roles.IsAdmin())
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name, email, password string
	}{
		{"missing email", "", "pw"},
		{"blank email", "   ", "pw"},
		{"missing password", "a@x.com", ""},
		{"malformed email", "not-an-email", "pw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.Register(context.Background(), tt.email, tt.password, nil)
			requireCode(t, err, CodeValidation)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.register(t, "a@x.com")

	_, err := f.auth.Register(context.Background(), "a@x.com", "other", nil)
	requireCode(t, err, CodeConflict)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	account := f.register(t, "a@x.com")

	session, err := f.auth.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, account.ID, session.User.ID)
	assert.Equal(t, []string{"user"}, session.User.Roles)

	claims, err := f.auth.VerifyToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.ID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestLoginDoesNotRevealAccounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "a@x.com")

	_, wrongPassword := f.auth.Login(ctx, "a@x.com", "nope")
	_, unknownEmail := f.auth.Login(ctx, "ghost@x.com", "pw")

	requireCode(t, wrongPassword, CodeInvalidCredentials)
	requireCode(t, unknownEmail, CodeInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Login(context.Background(), "", "pw")
	requireCode(t, err, CodeValidation)
	_, err = f.auth.Login(context.Background(), "a@x.com", "")
	requireCode(t, err, CodeValidation)
}

func TestVerifyToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.VerifyToken("")
	requireCode(t, err, CodeUnauthenticated)
	_, err = f.auth.VerifyToken("garbage")
	requireCode(t, err, CodeUnauthenticated)

	other := NewAuthService(f.users, f.roles, "another-secret", 0)
	f.register(t, "a@x.com")
	session, err := f.auth.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	_, err = other.VerifyToken(session.Token)
	requireCode(t, err, CodeUnauthenticated)
}

func TestRequireAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.register(t, "a@x.com")
	admin := f.register(t, "root@x.com", "admin")

	requireCode(t, f.authz.RequireAdmin(ctx, user.ID), CodeForbidden)
	assert.NoError(t, f.authz.RequireAdmin(ctx, admin.ID))
	requireCode(t, f.authz.RequireAdmin(ctx, 9999), CodeForbidden)
}
