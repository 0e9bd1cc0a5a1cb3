package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentbase/talentbase/adapters/event"
	"github.com/talentbase/talentbase/internal/application/service"
	"github.com/talentbase/talentbase/internal/domain/directory"
	"github.com/talentbase/talentbase/internal/domain/profile"
	"github.com/talentbase/talentbase/pkg/apperror"
	"github.com/talentbase/talentbase/pkg/logger"
)

// HomePoint is the reference location candidate distances are measured
// from, taken from configuration at wiring time.
type HomePoint struct {
	Lat float64
	Lng float64
}

type ProfileUseCase struct {
	profileRepo profile.Repository
	geocoder    service.Geocoder
	publisher   event.Publisher
	cache       directory.SnapshotCache
	home        HomePoint
	logger      logger.Logger
}

func NewProfileUseCase(
	repo profile.Repository,
	geocoder service.Geocoder,
	publisher event.Publisher,
	cache directory.SnapshotCache,
	home HomePoint,
	log logger.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		geocoder:    geocoder,
		publisher:   publisher,
		cache:       cache,
		home:        home,
		logger:      log,
	}
}

func (uc *ProfileUseCase) ExecuteGetMyProfile(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", userID.String())
		}
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) ExecuteGetByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	return uc.ExecuteGetMyProfile(ctx, userID)
}

type UpsertProfileInput struct {
	UserID         uuid.UUID
	Status         string
	Skills         string // raw comma-separated form
	Company        string
	Website        string
	Address        string
	Bio            string
	GithubUsername string
	Social         map[string]string
}

// ExecuteUpsertProfile creates the user's profile on first submission
// and updates it in place afterwards. Admin annotations and the
// creation timestamp survive resubmissions untouched.
func (uc *ProfileUseCase) ExecuteUpsertProfile(ctx context.Context, input UpsertProfileInput) (*profile.Profile, error) {
	now := time.Now().UTC()

	p := &profile.Profile{
		ID:             uuid.New(),
		UserID:         input.UserID,
		Status:         input.Status,
		Company:        input.Company,
		Website:        input.Website,
		Address:        input.Address,
		Bio:            input.Bio,
		GithubUsername: input.GithubUsername,
		Skills:         splitSkills(input.Skills),
		Experience:     []profile.ExperienceEntry{},
		Education:      []profile.EducationEntry{},
		Social:         input.Social,
		IsFavorite:     profile.FlagNo,
		IsInterviewed:  profile.FlagNo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	eventType := event.ProfileEventTypeCreated
	existing, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	switch {
	case err == nil:
		eventType = event.ProfileEventTypeUpdated
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		p.Experience = existing.Experience
		p.Education = existing.Education
		p.IsFavorite = existing.IsFavorite
		p.IsInterviewed = existing.IsInterviewed
		p.Stars = existing.Stars
		p.Worked = existing.Worked
		p.Note = existing.Note
	case errors.Is(err, profile.ErrProfileNotFound):
		// first submission
	default:
		return nil, err
	}

	if fields := validateProfile(p); len(fields) > 0 {
		return nil, apperror.NewValidation(fields)
	}

	uc.geocodeAddress(ctx, p)

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.afterWrite(p, eventType, "", "")
	return p, nil
}

// geocodeAddress resolves the address into location + distance from
// home. Geocoding failures are non-fatal: the profile saves with an
// unset location and distance 0.
func (uc *ProfileUseCase) geocodeAddress(ctx context.Context, p *profile.Profile) {
	if p.Address == "" {
		return
	}

	res, err := uc.geocoder.Geocode(ctx, p.Address)
	if err != nil {
		uc.logger.Warn("Geocoding failed, saving profile without location",
			zap.String("profile_id", p.ID.String()), zap.Error(err))
		return
	}

	p.Location = &profile.Location{
		Lat:              res.Lat,
		Lng:              res.Lng,
		FormattedAddress: res.FormattedAddress,
	}
	p.Distance = service.DistanceMeters(uc.home.Lat, uc.home.Lng, res.Lat, res.Lng)
}

// afterWrite invalidates the directory snapshot and publishes the
// lifecycle event. Both are best effort; the write already succeeded.
func (uc *ProfileUseCase) afterWrite(p *profile.Profile, t event.ProfileEventType, field, detail string) {
	ctx := context.Background()

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate directory snapshot", zap.Error(err))
	}

	go func() {
		err := uc.publisher.PublishProfileEvent(ctx, event.ProfileEventPayload{
			EventType: t,
			ProfileID: p.ID,
			UserID:    p.UserID,
			Field:     field,
			Detail:    detail,
		})
		if err != nil {
			uc.logger.Error("Failed to publish profile event", err,
				zap.String("profile_id", p.ID.String()),
				zap.String("event_type", string(t)))
		}
	}()
}

// validateProfile collects field-level messages, mirroring the errors
// array the directory frontend renders.
func validateProfile(p *profile.Profile) []apperror.FieldError {
	var fields []apperror.FieldError
	if p.Status == "" {
		fields = append(fields, apperror.FieldError{Field: "status", Message: "Status is required"})
	}
	if len(p.Skills) == 0 {
		fields = append(fields, apperror.FieldError{Field: "skills", Message: "Skills is required"})
	}
	return fields
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
