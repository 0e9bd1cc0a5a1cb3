package activitylog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLogNotFound = errors.New("log not found")

// Log is one append-only activity entry authored by (or on behalf of)
// a user.
type Log struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Text   string    `json:"text"`
	Type   string    `json:"type"`
	Date   time.Time `json:"date"`
}

// View is a Log joined with the owning user's name and email, matching
// what the directory UI lists.
type View struct {
	Log
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

type ListFilter struct {
	UserID uuid.UUID // uuid.Nil = all users
	Type   string    // "" = all types
}

type Repository interface {
	FindAll(ctx context.Context, filter ListFilter) ([]View, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Log, error)
	Save(ctx context.Context, l *Log) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
