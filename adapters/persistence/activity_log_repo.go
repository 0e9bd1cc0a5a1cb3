package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentbase/talentbase/internal/domain/activitylog"
	"github.com/talentbase/talentbase/pkg/apperror"
)

type postgresActivityLogRepo struct {
	db *pgxpool.Pool
}

func NewPostgresActivityLogRepo(db *pgxpool.Pool) activitylog.Repository {
	return &postgresActivityLogRepo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresActivityLogRepo) FindAll(ctx context.Context, filter activitylog.ListFilter) ([]activitylog.View, error) {
	builder := psql.
		Select("l.id", "l.user_id", "l.text", "l.type", "l.date", "u.name", "u.email").
		From("activity_logs l").
		Join("users u ON u.id = l.user_id").
		OrderBy("l.date DESC")

	if filter.UserID != uuid.Nil {
		builder = builder.Where(sq.Eq{"l.user_id": filter.UserID})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"l.type": filter.Type})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build activity log query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query activity logs", err)
	}
	defer rows.Close()

	views := make([]activitylog.View, 0)
	for rows.Next() {
		var v activitylog.View
		err := rows.Scan(&v.ID, &v.UserID, &v.Text, &v.Type, &v.Date, &v.UserName, &v.UserEmail)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan activity log row", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *postgresActivityLogRepo) FindByID(ctx context.Context, id uuid.UUID) (*activitylog.Log, error) {
	query := `SELECT id, user_id, text, type, date FROM activity_logs WHERE id = $1`

	l := &activitylog.Log{}
	err := r.db.QueryRow(ctx, query, id).Scan(&l.ID, &l.UserID, &l.Text, &l.Type, &l.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, activitylog.ErrLogNotFound
		}
		return nil, apperror.NewInternal("failed to query activity log", err)
	}
	return l, nil
}

func (r *postgresActivityLogRepo) Save(ctx context.Context, l *activitylog.Log) error {
	query := `
		INSERT INTO activity_logs (id, user_id, text, type, date)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, l.ID, l.UserID, l.Text, l.Type, l.Date)
	if err != nil {
		return apperror.NewInternal("failed to insert activity log", err)
	}
	return nil
}

func (r *postgresActivityLogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM activity_logs WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete activity log", err)
	}
	if tag.RowsAffected() == 0 {
		return activitylog.ErrLogNotFound
	}
	return nil
}

func (r *postgresActivityLogRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM activity_logs WHERE user_id = $1`, userID)
	if err != nil {
		return apperror.NewInternal("failed to delete activity logs for user", err)
	}
	return nil
}
