package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/talentbase/talentbase/internal/domain/profile"
	"github.com/talentbase/talentbase/pkg/apperror"
	"github.com/talentbase/talentbase/pkg/logger"
)

// postgresProfileRepo stores profiles in one row per user. The nested
// document pieces (skills, experience, education, social, location) go
// into jsonb columns; the flat filterable fields stay relational.
type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, log logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: log}
}

const profileColumns = `
	id, user_id, status, company, website, address, bio, github_username,
	skills, experience, education, social,
	is_favorite, is_interviewed, stars, worked, note,
	distance, location, created_at, updated_at`

func (r *postgresProfileRepo) scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	var skillsBytes, experienceBytes, educationBytes, socialBytes, locationBytes []byte

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Status,
		&p.Company,
		&p.Website,
		&p.Address,
		&p.Bio,
		&p.GithubUsername,
		&skillsBytes,
		&experienceBytes,
		&educationBytes,
		&socialBytes,
		&p.IsFavorite,
		&p.IsInterviewed,
		&p.Stars,
		&p.Worked,
		&p.Note,
		&p.Distance,
		&locationBytes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}

	if err := json.Unmarshal(skillsBytes, &p.Skills); err != nil {
		r.logger.Warn("Failed to unmarshal skills", zap.String("profile_id", p.ID.String()), zap.Error(err))
		p.Skills = []string{}
	}
	if err := json.Unmarshal(experienceBytes, &p.Experience); err != nil {
		r.logger.Warn("Failed to unmarshal experience", zap.String("profile_id", p.ID.String()), zap.Error(err))
		p.Experience = []profile.ExperienceEntry{}
	}
	if err := json.Unmarshal(educationBytes, &p.Education); err != nil {
		r.logger.Warn("Failed to unmarshal education", zap.String("profile_id", p.ID.String()), zap.Error(err))
		p.Education = []profile.EducationEntry{}
	}
	if socialBytes != nil {
		if err := json.Unmarshal(socialBytes, &p.Social); err != nil {
			r.logger.Warn("Failed to unmarshal social", zap.String("profile_id", p.ID.String()), zap.Error(err))
			p.Social = nil
		}
	}
	if locationBytes != nil {
		loc := &profile.Location{}
		if err := json.Unmarshal(locationBytes, loc); err == nil {
			p.Location = loc
		}
	}

	return p, nil
}

func (r *postgresProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, id))
}

func (r *postgresProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return r.scanProfile(r.db.QueryRow(ctx, query, userID))
}

func (r *postgresProfileRepo) FindAll(ctx context.Context) ([]*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query profiles", err)
	}
	defer rows.Close()

	profiles := make([]*profile.Profile, 0)
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	skillsBytes, err := json.Marshal(p.Skills)
	if err != nil {
		return apperror.NewInternal("failed to marshal skills", err)
	}
	experienceBytes, err := json.Marshal(p.Experience)
	if err != nil {
		return apperror.NewInternal("failed to marshal experience", err)
	}
	educationBytes, err := json.Marshal(p.Education)
	if err != nil {
		return apperror.NewInternal("failed to marshal education", err)
	}
	var socialBytes []byte
	if p.Social != nil {
		if socialBytes, err = json.Marshal(p.Social); err != nil {
			return apperror.NewInternal("failed to marshal social", err)
		}
	}
	var locationBytes []byte
	if p.Location != nil {
		if locationBytes, err = json.Marshal(p.Location); err != nil {
			return apperror.NewInternal("failed to marshal location", err)
		}
	}

	query := `
		INSERT INTO profiles (
			id, user_id, status, company, website, address, bio, github_username,
			skills, experience, education, social,
			is_favorite, is_interviewed, stars, worked, note,
			distance, location, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (user_id) DO UPDATE SET
			status = EXCLUDED.status,
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			address = EXCLUDED.address,
			bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username,
			skills = EXCLUDED.skills,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			social = EXCLUDED.social,
			is_favorite = EXCLUDED.is_favorite,
			is_interviewed = EXCLUDED.is_interviewed,
			stars = EXCLUDED.stars,
			worked = EXCLUDED.worked,
			note = EXCLUDED.note,
			distance = EXCLUDED.distance,
			location = EXCLUDED.location,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query,
		p.ID,
		p.UserID,
		p.Status,
		p.Company,
		p.Website,
		p.Address,
		p.Bio,
		p.GithubUsername,
		skillsBytes,
		experienceBytes,
		educationBytes,
		socialBytes,
		p.IsFavorite,
		p.IsInterviewed,
		p.Stars,
		p.Worked,
		p.Note,
		p.Distance,
		locationBytes,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}

func (r *postgresProfileRepo) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return apperror.NewInternal("failed to delete profile", err)
	}
	if tag.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}
