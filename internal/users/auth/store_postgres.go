// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ianbriton/blogapi/internal/platform/database/schema"
	"github.com/ianbriton/blogapi/internal/platform/dberr"
	"github.com/ianbriton/blogapi/internal/platform/postgres"
	"github.com/ianbriton/blogapi/internal/platform/sec"
)

var (
	tblAccount     = schema.UserAccount
	tblRole        = schema.UserRole
	tblAccountRole = schema.UserAccountRole
)

// Queries are assembled once from the schema definitions.
var (
	queryFindByUsername = fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		tblAccount.ID, tblAccount.Username, tblAccount.Email, tblAccount.Password, tblAccount.CreatedAt,
		tblAccount.Table,
		tblAccount.NormalizedUsername,
	)

	queryInsertAccount = fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		tblAccount.Table,
		tblAccount.ID, tblAccount.Username, tblAccount.NormalizedUsername,
		tblAccount.Email, tblAccount.Password, tblAccount.CreatedAt,
	)

	// The role row is upserted so that a grant never depends on seed order.
	queryAddToRole = fmt.Sprintf(`
		WITH r AS (
			INSERT INTO %[1]s (%[2]s) VALUES ($2)
			ON CONFLICT (%[2]s) DO UPDATE SET %[2]s = EXCLUDED.%[2]s
			RETURNING %[3]s
		)
		INSERT INTO %[4]s (%[5]s, %[6]s)
		SELECT $1, %[3]s FROM r
		ON CONFLICT DO NOTHING`,
		tblRole.Table, tblRole.Name, tblRole.ID,
		tblAccountRole.Table, tblAccountRole.AccountID, tblAccountRole.RoleID,
	)

	queryRolesOf = fmt.Sprintf(`
		SELECT r.%s
		FROM %s r
		JOIN %s ar ON ar.%s = r.%s
		WHERE ar.%s = $1
		ORDER BY r.%s`,
		tblRole.Name,
		tblRole.Table,
		tblAccountRole.Table, tblAccountRole.RoleID, tblRole.ID,
		tblAccountRole.AccountID,
		tblRole.Name,
	)

	queryRoleExists = fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, tblRole.Table, tblRole.Name)

	queryCreateRole = fmt.Sprintf(`INSERT INTO %[1]s (%[2]s) VALUES ($1) ON CONFLICT (%[2]s) DO NOTHING`, tblRole.Table, tblRole.Name)
)

// # User Repository

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	db postgres.DB
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(db postgres.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// FindByUsername retrieves an account by username, ignoring case.
func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(ctx, queryFindByUsername, NormalizeUsername(username)).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return user, nil
}

// Create inserts the account and its initial role memberships atomically.
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User, roles ...sec.Role) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return postgres.WithTx(ctx, repository.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, queryInsertAccount,
			user.ID,
			user.Username,
			NormalizeUsername(user.Username),
			user.Email,
			user.PasswordHash,
			user.CreatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "User")
		}

		for _, granted := range roles {
			if _, err := tx.Exec(ctx, queryAddToRole, user.ID, granted.String()); err != nil {
				return dberr.Wrap(err, "Role")
			}
		}
		return nil
	})
}

// RolesOf lists the role names held by an account.
func (repository *PostgresUserRepository) RolesOf(ctx context.Context, userID string) ([]string, error) {
	rows, err := repository.db.Query(ctx, queryRolesOf, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "Role")
	}

	roles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, dberr.Wrap(err, "Role")
	}
	return roles, nil
}

// AddToRole grants a role; repeated grants are ignored.
func (repository *PostgresUserRepository) AddToRole(ctx context.Context, userID string, granted sec.Role) error {
	if _, err := repository.db.Exec(ctx, queryAddToRole, userID, granted.String()); err != nil {
		return dberr.Wrap(err, "Role")
	}
	return nil
}

// RoleExists reports whether the role row is present.
func (repository *PostgresUserRepository) RoleExists(ctx context.Context, target sec.Role) (bool, error) {
	var exists bool
	if err := repository.db.QueryRow(ctx, queryRoleExists, target.String()).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Role")
	}
	return exists, nil
}

// CreateRole inserts the role row if it does not exist yet.
func (repository *PostgresUserRepository) CreateRole(ctx context.Context, target sec.Role) error {
	if _, err := repository.db.Exec(ctx, queryCreateRole, target.String()); err != nil {
		return dberr.Wrap(err, "Role")
	}
	return nil
}
