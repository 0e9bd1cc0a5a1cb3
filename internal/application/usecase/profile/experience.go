package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/talentbase/talentbase/adapters/event"
	"github.com/talentbase/talentbase/internal/domain/profile"
	"github.com/talentbase/talentbase/pkg/apperror"
)

type AddExperienceInput struct {
	UserID      uuid.UUID
	Title       string
	Company     string
	Address     string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// ExecuteAddExperience prepends a new experience entry, newest first,
// and returns the updated profile.
func (uc *ProfileUseCase) ExecuteAddExperience(ctx context.Context, input AddExperienceInput) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.UserID.String())
		}
		return nil, err
	}

	entry := profile.ExperienceEntry{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Address:     input.Address,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	if entry.Current {
		entry.To = nil
	}

	p.Experience = append([]profile.ExperienceEntry{entry}, p.Experience...)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.afterWrite(p, event.ProfileEventTypeUpdated, "experience", entry.Title)
	return p, nil
}

// ExecuteRemoveExperience deletes one experience entry by id. An id
// that is not present leaves the profile as is, mirroring the lenient
// behavior of the directory this replaces.
func (uc *ProfileUseCase) ExecuteRemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", userID.String())
		}
		return nil, err
	}

	for i, e := range p.Experience {
		if e.ID == entryID {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			break
		}
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.afterWrite(p, event.ProfileEventTypeUpdated, "experience", "")
	return p, nil
}
