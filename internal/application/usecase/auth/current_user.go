package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/talentbase/talentbase/internal/domain/user"
	"github.com/talentbase/talentbase/pkg/apperror"
)

type CurrentUserUseCase struct {
	userRepo user.Repository
}

func NewCurrentUserUseCase(repo user.Repository) *CurrentUserUseCase {
	return &CurrentUserUseCase{userRepo: repo}
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user", userID.String())
		}
		return nil, err
	}
	return u, nil
}
