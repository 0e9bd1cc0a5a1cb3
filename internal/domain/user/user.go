package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

const (
	RoleSystem = "system"
	RoleAdmin  = "admin"
	RoleUser   = "user"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
}

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, u *User) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
