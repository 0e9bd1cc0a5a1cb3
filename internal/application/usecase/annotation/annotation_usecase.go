package annotation

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentbase/talentbase/adapters/event"
	"github.com/talentbase/talentbase/internal/domain/directory"
	"github.com/talentbase/talentbase/internal/domain/profile"
	"github.com/talentbase/talentbase/pkg/apperror"
	"github.com/talentbase/talentbase/pkg/logger"
)

// AnnotationUseCase mutates the moderation fields of a single stored
// profile. Every operation is an independent read-modify-write with no
// version check: the last write wins, and only the mutated field's new
// value is returned to the caller.
//
// Stars, worked and note are persisted without range/enum/length
// validation, and no admin-role check is enforced beyond
// authentication. Both match the observed behavior of the system being
// replaced; hardening either is a deliberate product decision left to
// the operator.
type AnnotationUseCase struct {
	profileRepo profile.Repository
	publisher   event.Publisher
	cache       directory.SnapshotCache
	logger      logger.Logger
}

func NewAnnotationUseCase(
	repo profile.Repository,
	publisher event.Publisher,
	cache directory.SnapshotCache,
	log logger.Logger,
) *AnnotationUseCase {
	return &AnnotationUseCase{
		profileRepo: repo,
		publisher:   publisher,
		cache:       cache,
		logger:      log,
	}
}

// ExecuteToggleFavorite flips the favorite flag and returns its new
// value. Calling twice restores the original state.
func (uc *AnnotationUseCase) ExecuteToggleFavorite(ctx context.Context, profileID uuid.UUID) (int, error) {
	p, err := uc.load(ctx, profileID)
	if err != nil {
		return 0, err
	}

	if p.IsFavorite == profile.FlagYes {
		p.IsFavorite = profile.FlagNo
	} else {
		p.IsFavorite = profile.FlagYes
	}

	if err := uc.save(ctx, p, "isFavorite", strconv.Itoa(p.IsFavorite)); err != nil {
		return 0, err
	}
	return p.IsFavorite, nil
}

func (uc *AnnotationUseCase) ExecuteToggleInterviewed(ctx context.Context, profileID uuid.UUID) (int, error) {
	p, err := uc.load(ctx, profileID)
	if err != nil {
		return 0, err
	}

	if p.IsInterviewed == profile.FlagYes {
		p.IsInterviewed = profile.FlagNo
	} else {
		p.IsInterviewed = profile.FlagYes
	}

	if err := uc.save(ctx, p, "isInterviewed", strconv.Itoa(p.IsInterviewed)); err != nil {
		return 0, err
	}
	return p.IsInterviewed, nil
}

// ExecuteSetStars assigns the rating unconditionally. The caller is
// trusted to stay within 0..3.
func (uc *AnnotationUseCase) ExecuteSetStars(ctx context.Context, profileID uuid.UUID, stars int) (int, error) {
	p, err := uc.load(ctx, profileID)
	if err != nil {
		return 0, err
	}

	p.Stars = stars

	if err := uc.save(ctx, p, "stars", strconv.Itoa(stars)); err != nil {
		return 0, err
	}
	return p.Stars, nil
}

func (uc *AnnotationUseCase) ExecuteSetWorked(ctx context.Context, profileID uuid.UUID, worked string) (string, error) {
	p, err := uc.load(ctx, profileID)
	if err != nil {
		return "", err
	}

	p.Worked = worked

	if err := uc.save(ctx, p, "worked", worked); err != nil {
		return "", err
	}
	return p.Worked, nil
}

func (uc *AnnotationUseCase) ExecuteSaveNote(ctx context.Context, profileID uuid.UUID, note string) (string, error) {
	p, err := uc.load(ctx, profileID)
	if err != nil {
		return "", err
	}

	p.Note = note

	if err := uc.save(ctx, p, "note", ""); err != nil {
		return "", err
	}
	return p.Note, nil
}

func (uc *AnnotationUseCase) load(ctx context.Context, profileID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", profileID.String())
		}
		return nil, err
	}
	return p, nil
}

func (uc *AnnotationUseCase) save(ctx context.Context, p *profile.Profile, field, detail string) error {
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return err
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate directory snapshot", zap.Error(err))
	}

	go func() {
		err := uc.publisher.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType: event.ProfileEventTypeAnnotated,
			ProfileID: p.ID,
			UserID:    p.UserID,
			Field:     field,
			Detail:    detail,
		})
		if err != nil {
			uc.logger.Error("Failed to publish annotation event", err,
				zap.String("profile_id", p.ID.String()),
				zap.String("field", field))
		}
	}()

	return nil
}
