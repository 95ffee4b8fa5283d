// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/internal/platform/ctxutil"
	"github.com/ianbriton/blogapi/internal/platform/sec"
	"github.com/ianbriton/blogapi/internal/platform/validate"
	"github.com/ianbriton/blogapi/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer signs a claim list into a session token.
type TokenIssuer interface {
	Issue(claims sec.Claims) (string, time.Time, error)
}

// Revoker records a token as no longer acceptable.
type Revoker interface {
	Revoke(token string, expiresAt time.Time)
}

// Service implements the session use cases.
type Service struct {
	users          UserRepository
	issuer         TokenIssuer
	revoker        Revoker
	bootstrapOwner string
}

// NewService constructs a new [Service].
//
// When bootstrapOwner is non-empty, the account registered under that
// username (compared without case) receives every role so that a fresh deployment has an Owner.
func NewService(users UserRepository, issuer TokenIssuer, revoker Revoker, bootstrapOwner string) *Service {
	return &Service{
		users:          users,
		issuer:         issuer,
		revoker:        revoker,
		bootstrapOwner: bootstrapOwner,
	}
}

// # Role Seeding

/*
SeedRoles ensures the User, Admin and Owner roles exist.

It reports false when all three were already present, true when it had to
create at least one. Calling it repeatedly is safe.
*/
func (service *Service) SeedRoles(ctx context.Context) (bool, error) {
	missing := false
	for _, target := range sec.AllRoles() {
		exists, err := service.users.RoleExists(ctx, target)
		if err != nil {
			return false, err
		}
		if !exists {
			missing = true
		}
	}

	if !missing {
		return false, nil
	}

	for _, target := range sec.AllRoles() {
		if err := service.users.CreateRole(ctx, target); err != nil {
			return false, err
		}
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "roles_seeded")
	return true, nil
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new principal.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register creates an account holding the User role.

Errors:
  - BAD_REQUEST "User already exists" when the username is taken.
  - VALIDATION_ERROR "User creation failed" listing every failed rule.
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if err := (&validate.Validator{}).Required(FieldUsername, input.Username).ErrWithMessage(MsgUserCreateFailed); err != nil {
		return nil, err
	}

	_, err := service.users.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, apperr.BadRequest(MsgUserExists)
	}
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		return nil, err
	}

	validator := &validate.Validator{}
	validator.MinLen(FieldUsername, input.Username, MinUsernameLength).
		MaxLen(FieldUsername, input.Username, MaxUsernameLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Password(FieldPassword, input.Password)

	if err := validator.ErrWithMessage(MsgUserCreateFailed); err != nil {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	roles := []sec.Role{sec.RoleUser}
	if service.bootstrapOwner != "" && NormalizeUsername(input.Username) == NormalizeUsername(service.bootstrapOwner) {
		roles = sec.AllRoles()
	}

	if err := service.users.Create(ctx, user, roles...); err != nil {
		// Lost a race with a concurrent registration of the same name.
		if apperr.IsCode(err, apperr.CodeConflict) {
			return nil, apperr.BadRequest(MsgUserExists)
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_registered",
		slog.String("user_id", user.ID),
		slog.Int("roles", len(roles)),
	)

	return user, nil
}

// # Authentication Flow

/*
Login verifies credentials and issues a session token carrying the account's
current roles.

Unknown usernames and wrong passwords both fail with the same 401 message.
*/
func (service *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := service.users.FindByUsername(ctx, username)
	if err != nil {
		if !apperr.IsCode(err, apperr.CodeNotFound) {
			return nil, err
		}
		sec.BurnPasswordCheck(password)
		return nil, apperr.Unauthorized(MsgInvalidCredential)
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized(MsgInvalidCredential)
	}

	roles, err := service.users.RolesOf(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	claims := make(sec.Claims, 0, 3+len(roles))
	claims = append(claims,
		sec.Claim{Name: sec.ClaimName, Value: user.Username},
		sec.Claim{Name: sec.ClaimNameID, Value: user.ID},
		sec.Claim{Name: sec.ClaimTokenID, Value: uuid.NewRandom()},
	)
	for _, held := range roles {
		claims = append(claims, sec.Claim{Name: sec.ClaimRole, Value: held})
	}

	token, expiresAt, err := service.issuer.Issue(claims)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_logged_in",
		slog.String("user_id", user.ID),
		slog.Time("expires_at", expiresAt),
	)

	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

/*
Logout revokes the raw token for the rest of the process lifetime.

It does not check the token: revoking garbage or an expired token succeeds and
has no further effect.
*/
func (service *Service) Logout(ctx context.Context, token string) {
	service.revoker.Revoke(token, sec.UnverifiedExpiry(token))

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_logged_out",
		slog.Time("logout_at", time.Now().UTC()),
	)
}

// # Role Elevation

/*
GrantRole adds role to the named account.

Tokens issued before the grant keep their old role claims; the new role shows
up on the next login. A missing account fails with BAD_REQUEST "Invalid User name".
*/
func (service *Service) GrantRole(ctx context.Context, username string, target sec.Role) error {
	user, err := service.users.FindByUsername(ctx, username)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeNotFound) {
			return apperr.BadRequest(MsgInvalidUserName)
		}
		return err
	}

	if err := service.users.AddToRole(ctx, user.ID, target); err != nil {
		return fmt.Errorf("auth_service_grant_role_failed: %w", err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "role_granted",
		slog.String("user_id", user.ID),
		slog.String("role", target.String()),
	)
	return nil
}
