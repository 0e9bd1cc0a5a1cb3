package activitylog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentbase/talentbase/internal/domain/activitylog"
	"github.com/talentbase/talentbase/pkg/apperror"
	"github.com/talentbase/talentbase/pkg/logger"
)

type LogUseCase struct {
	logRepo activitylog.Repository
	logger  logger.Logger
}

func NewLogUseCase(repo activitylog.Repository, log logger.Logger) *LogUseCase {
	return &LogUseCase{logRepo: repo, logger: log}
}

func (uc *LogUseCase) ExecuteList(ctx context.Context, filter activitylog.ListFilter) ([]activitylog.View, error) {
	return uc.logRepo.FindAll(ctx, filter)
}

func (uc *LogUseCase) ExecuteGet(ctx context.Context, id uuid.UUID) (*activitylog.Log, error) {
	l, err := uc.logRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, activitylog.ErrLogNotFound) {
			return nil, apperror.NewNotFound("log", id.String())
		}
		return nil, err
	}
	return l, nil
}

type AddLogInput struct {
	UserID uuid.UUID
	Text   string
	Type   string
}

func (uc *LogUseCase) ExecuteAdd(ctx context.Context, input AddLogInput) (*activitylog.Log, error) {
	l := &activitylog.Log{
		ID:     uuid.New(),
		UserID: input.UserID,
		Text:   input.Text,
		Type:   input.Type,
		Date:   time.Now().UTC(),
	}

	if err := uc.logRepo.Save(ctx, l); err != nil {
		return nil, err
	}

	uc.logger.Debug("Activity log appended",
		zap.String("log_id", l.ID.String()),
		zap.String("type", l.Type))
	return l, nil
}

func (uc *LogUseCase) ExecuteDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.logRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, activitylog.ErrLogNotFound) {
			return apperror.NewNotFound("log", id.String())
		}
		return err
	}
	return uc.logRepo.Delete(ctx, id)
}
