package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"curateurs-backoffice/internal/domain"
)

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create inserts the user with its optional credential account and verification
// token in one transaction.
func (r *PostgresUserRepository) Create(ctx context.Context, u *domain.User, acc *domain.Account, v *domain.Verification) error {
	perms, err := encodePermissions(u.Permissions)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrapErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO "user" (id, name, email, email_verified, image, created_at, updated_at, role, permissions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::roles, $9)
	`, u.ID, u.Name, u.Email, u.EmailVerified, u.Image, u.CreatedAt, u.UpdatedAt, string(u.Role), perms)
	if err != nil {
		return wrapErr("insert user", err)
	}

	if acc != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO account (id, account_id, provider_id, user_id, password, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, acc.ID, acc.AccountID, acc.ProviderID, acc.UserID, acc.Password, acc.CreatedAt, acc.UpdatedAt)
		if err != nil {
			return wrapErr("insert account", err)
		}
	}

	if v != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO verification (id, identifier, value, expires_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, v.ID, v.Identifier, v.Value, v.ExpiresAt, v.CreatedAt, v.UpdatedAt)
		if err != nil {
			return wrapErr("insert verification", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return wrapErr("commit transaction", err)
	}
	return nil
}

// Update replaces name, email, role and permissions.
func (r *PostgresUserRepository) Update(ctx context.Context, u *domain.User) (int64, error) {
	perms, err := encodePermissions(u.Permissions)
	if err != nil {
		return 0, err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE "user"
		SET name = $2, email = $3, role = $4::roles, permissions = $5, updated_at = $6
		WHERE id = $1
	`, u.ID, u.Name, u.Email, string(u.Role), perms, u.UpdatedAt)
	if err != nil {
		return 0, wrapErr("update user", err)
	}
	return tag.RowsAffected(), nil
}

// Delete hard-deletes a user. Sessions and accounts cascade.
func (r *PostgresUserRepository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM "user" WHERE id = $1`, id)
	if err != nil {
		return 0, wrapErr("delete user", err)
	}
	return tag.RowsAffected(), nil
}

// ListAll returns every user.
func (r *PostgresUserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, email_verified, image, created_at, updated_at, role::text, permissions
		FROM "user"
		ORDER BY created_at
	`)
	if err != nil {
		return nil, wrapErr("list users", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		var role string
		var perms []byte
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.EmailVerified, &u.Image,
			&u.CreatedAt, &u.UpdatedAt, &role, &perms); err != nil {
			return nil, wrapErr("scan user", err)
		}
		u.Role = domain.Role(role)
		if len(perms) > 0 {
			if err := json.Unmarshal(perms, &u.Permissions); err != nil {
				return nil, fmt.Errorf("decode permissions for user %s: %w: %v", u.ID, domain.ErrPersistence, err)
			}
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate users", err)
	}
	return users, nil
}

func encodePermissions(perms []string) ([]byte, error) {
	if perms == nil {
		perms = []string{}
	}
	raw, err := json.Marshal(perms)
	if err != nil {
		return nil, fmt.Errorf("encode permissions: %w: %v", domain.ErrValidation, err)
	}
	return raw, nil
}
