package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/talentbase/talentbase/internal/application/service"
	"github.com/talentbase/talentbase/internal/domain/user"
	"github.com/talentbase/talentbase/pkg/apperror"
	"github.com/talentbase/talentbase/pkg/logger"
)

// UploadAvatarUseCase replaces the generated gravatar with an uploaded
// picture.
type UploadAvatarUseCase struct {
	userRepo user.Repository
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadAvatarUseCase(uRepo user.Repository, uploader service.Uploader, log logger.Logger) *UploadAvatarUseCase {
	return &UploadAvatarUseCase{
		userRepo: uRepo,
		uploader: uploader,
		logger:   log,
	}
}

func (uc *UploadAvatarUseCase) Execute(ctx context.Context, userID uuid.UUID, file io.Reader) (string, error) {
	folder := fmt.Sprintf("users/%s/avatar", userID.String())

	url, err := uc.uploader.Upload(ctx, file, folder, "avatar")
	if err != nil {
		return "", apperror.NewInternal("failed to upload avatar", err)
	}

	if err := uc.userRepo.UpdateAvatar(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
