package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentbase/talentbase/adapters/event"
	"github.com/talentbase/talentbase/internal/domain/activitylog"
	"github.com/talentbase/talentbase/internal/domain/directory"
	"github.com/talentbase/talentbase/internal/domain/profile"
	"github.com/talentbase/talentbase/internal/domain/user"
	"github.com/talentbase/talentbase/pkg/logger"
)

// DeleteAccountUseCase removes a user together with their profile and
// activity logs. The three deletes are independent writes with no
// transaction around them; a failure part-way leaves earlier deletes
// in place, matching the system being replaced.
type DeleteAccountUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	logRepo     activitylog.Repository
	publisher   event.Publisher
	cache       directory.SnapshotCache
	logger      logger.Logger
}

func NewDeleteAccountUseCase(
	pRepo profile.Repository,
	uRepo user.Repository,
	lRepo activitylog.Repository,
	publisher event.Publisher,
	cache directory.SnapshotCache,
	log logger.Logger,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		profileRepo: pRepo,
		userRepo:    uRepo,
		logRepo:     lRepo,
		publisher:   publisher,
		cache:       cache,
		logger:      log,
	}
}

func (uc *DeleteAccountUseCase) Execute(ctx context.Context, userID uuid.UUID) error {
	var profileID uuid.UUID
	if p, err := uc.profileRepo.FindByUserID(ctx, userID); err == nil {
		profileID = p.ID
	}

	if err := uc.logRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := uc.profileRepo.DeleteByUserID(ctx, userID); err != nil &&
		!errors.Is(err, profile.ErrProfileNotFound) {
		return err
	}
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate directory snapshot", zap.Error(err))
	}

	go func() {
		err := uc.publisher.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType: event.ProfileEventTypeDeleted,
			ProfileID: profileID,
			UserID:    userID,
		})
		if err != nil {
			uc.logger.Error("Failed to publish profile deleted event", err,
				zap.String("user_id", userID.String()))
		}
	}()

	uc.logger.Info("Account deleted", zap.String("user_id", userID.String()))
	return nil
}
