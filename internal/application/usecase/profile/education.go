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

type AddEducationInput struct {
	UserID       uuid.UUID
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

func (uc *ProfileUseCase) ExecuteAddEducation(ctx context.Context, input AddEducationInput) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.UserID.String())
		}
		return nil, err
	}

	entry := profile.EducationEntry{
		ID:           uuid.New(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	if entry.Current {
		entry.To = nil
	}

	p.Education = append([]profile.EducationEntry{entry}, p.Education...)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.afterWrite(p, event.ProfileEventTypeUpdated, "education", entry.School)
	return p, nil
}

func (uc *ProfileUseCase) ExecuteRemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*profile.Profile, error) {
	p, err := uc.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", userID.String())
		}
		return nil, err
	}

	for i, e := range p.Education {
		if e.ID == entryID {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			break
		}
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profileRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.afterWrite(p, event.ProfileEventTypeUpdated, "education", "")
	return p, nil
}
