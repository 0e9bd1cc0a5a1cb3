package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/talentbase/talentbase/internal/domain/directory"
	"github.com/talentbase/talentbase/internal/domain/profile"
	"github.com/talentbase/talentbase/pkg/apperror"
	"github.com/talentbase/talentbase/pkg/logger"
)

// postgresDirectoryRepo builds the directory snapshot: every profile
// joined with its owner's name and avatar, in insertion order.
type postgresDirectoryRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresDirectoryRepo(db *pgxpool.Pool, log logger.Logger) directory.Repository {
	return &postgresDirectoryRepo{db: db, logger: log}
}

func (r *postgresDirectoryRepo) Snapshot(ctx context.Context) ([]directory.Entry, error) {
	query := `
		SELECT
			p.id, p.user_id, p.status, p.company, p.website, p.address, p.bio, p.github_username,
			p.skills, p.experience, p.education, p.social,
			p.is_favorite, p.is_interviewed, p.stars, p.worked, p.note,
			p.distance, p.location, p.created_at, p.updated_at,
			u.name, u.avatar
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query directory snapshot", err)
	}
	defer rows.Close()

	entries := make([]directory.Entry, 0)
	for rows.Next() {
		e, err := r.scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *postgresDirectoryRepo) scanEntry(row pgx.Row) (directory.Entry, error) {
	var (
		e profile.Profile

		skillsBytes, experienceBytes, educationBytes, socialBytes, locationBytes []byte

		userName, avatar string
	)

	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Status,
		&e.Company,
		&e.Website,
		&e.Address,
		&e.Bio,
		&e.GithubUsername,
		&skillsBytes,
		&experienceBytes,
		&educationBytes,
		&socialBytes,
		&e.IsFavorite,
		&e.IsInterviewed,
		&e.Stars,
		&e.Worked,
		&e.Note,
		&e.Distance,
		&locationBytes,
		&e.CreatedAt,
		&e.UpdatedAt,
		&userName,
		&avatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return directory.Entry{}, profile.ErrProfileNotFound
		}
		return directory.Entry{}, apperror.NewInternal("failed to scan directory row", err)
	}

	if err := json.Unmarshal(skillsBytes, &e.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal skills", zap.String("profile_id", e.ID.String()), zap.Error(err))
		e.Skills = []string{}
	}
	if err := json.Unmarshal(experienceBytes, &e.Experience); err != nil {
		e.Experience = []profile.ExperienceEntry{}
	}
	if err := json.Unmarshal(educationBytes, &e.Education); err != nil {
		e.Education = []profile.EducationEntry{}
	}
	if socialBytes != nil {
		_ = json.Unmarshal(socialBytes, &e.Social)
	}
	if locationBytes != nil {
		loc := &profile.Location{}
		if err := json.Unmarshal(locationBytes, loc); err == nil {
			e.Location = loc
		}
	}

	return directory.Entry{Profile: e, UserName: userName, Avatar: avatar}, nil
}
