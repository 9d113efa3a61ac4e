package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"maets/internal/domain"
	"maets/internal/store"
	"maets/internal/utils"
)

// Account is the public view of a user.
type Account struct {
	ID    uint     `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// Session is returned by a successful login.
type Session struct {
	Token string  `json:"token"`
	User  Account `json:"user"`
}

// AuthService registers users, checks credentials and issues session tokens.
type AuthService struct {
	users  UserRepository
	roles  RoleRepository
	secret string
	ttl    time.Duration
}

// NewAuthService returns an AuthService signing tokens with secret that live for ttl.
func NewAuthService(users UserRepository, roles RoleRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, roles: roles, secret: secret, ttl: ttl}
}

// Register creates a user with the named roles. Unknown role names are ignored
// and an empty list means the "user" role.
func (s *AuthService) Register(ctx context.Context, email, password string, roles []string) (*Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, oops.Code(CodeValidation).Errorf("email & password required")
	}
	if !validEmail(email) {
		return nil, oops.Code(CodeValidation).With("email", email).Errorf("invalid email")
	}
	if len(roles) == 0 {
		roles = []string{string(domain.RoleUser)}
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, oops.Code(CodeConflict).Errorf("Email already in use")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, internal("find user by email", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, internal("hash password", err)
	}
	roleRows, err := s.roles.FindByNames(ctx, roles)
	if err != nil {
		return nil, internal("resolve roles", err)
	}
	roleIDs := make([]uint, 0, len(roleRows))
	for _, r := range roleRows {
		roleIDs = append(roleIDs, r.ID)
	}

	user := domain.User{Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, &user, roleIDs); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, oops.Code(CodeConflict).Errorf("Email already in use")
		}
		return nil, internal("create user", err)
	}

	account := &Account{ID: user.ID, Email: user.Email, Roles: domain.NewRoleSet(roleRows).Names()}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"roles":   account.Roles,
	}).Info("User registered")
	return account, nil
}

// Login checks the credentials and issues a session token. Unknown emails and
// wrong passwords fail with the same INVALID_CREDENTIALS error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, oops.Code(CodeValidation).Errorf("email & password required")
	}
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errInvalidCredentials()
	}
	if err != nil {
		return nil, internal("find user by email", err)
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, errInvalidCredentials()
	}

	roleRows, err := s.roles.RolesOf(ctx, user.ID)
	if err != nil {
		return nil, internal("load roles", err)
	}
	token, err := utils.GenerateJWT(user.ID, user.Email, s.secret, s.ttl)
	if err != nil {
		return nil, internal("sign token", err)
	}
	return &Session{
		Token: token,
		User:  Account{ID: user.ID, Email: user.Email, Roles: domain.NewRoleSet(roleRows).Names()},
	}, nil
}

// VerifyToken validates a session token and returns its claims.
func (s *AuthService) VerifyToken(token string) (*utils.Claims, error) {
	if token == "" {
		return nil, oops.Code(CodeUnauthenticated).Errorf("Missing token")
	}
	claims, err := utils.ParseJWT(token, s.secret)
	if err != nil {
		return nil, oops.Code(CodeUnauthenticated).With("reason", err.Error()).Errorf("Invalid token")
	}
	return claims, nil
}

func errInvalidCredentials() error {
	return oops.Code(CodeInvalidCredentials).Errorf("invalid_credentials")
}
