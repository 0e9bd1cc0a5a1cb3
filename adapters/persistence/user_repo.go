package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbase/talentbase/internal/domain/user"
	"github.com/talentbase/talentbase/pkg/apperror"
)

type postgresUserRepo struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepo(db *pgxpool.Pool) user.Repository {
	return &postgresUserRepo{db: db}
}

const userColumns = "id, name, email, avatar, role, password_hash"

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Avatar,
		&u.Role,
		&u.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperror.NewInternal("failed to scan user row", err)
	}
	return u, nil
}

func (r *postgresUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *postgresUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *postgresUserRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, apperror.NewInternal("failed to count users", err)
	}
	return count, nil
}

func (r *postgresUserRepo) Save(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, name, email, avatar, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, u.ID, u.Name, u.Email, u.Avatar, u.Role, u.PasswordHash)
	if err != nil {
		return apperror.NewInternal("failed to insert user", err)
	}
	return nil
}

func (r *postgresUserRepo) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET avatar = $1 WHERE id = $2`, avatarURL, id)
	if err != nil {
		return apperror.NewInternal("failed to update avatar", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
