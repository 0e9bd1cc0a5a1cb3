package activitylog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentbase/talentbase/adapters/event"
	"github.com/talentbase/talentbase/internal/domain/activitylog"
	"github.com/talentbase/talentbase/pkg/logger"
)

// ProcessProfileEventUseCase turns profile lifecycle events into
// activity log entries. It runs in the worker, off the request path.
type ProcessProfileEventUseCase struct {
	logRepo activitylog.Repository
	logger  logger.Logger
}

func NewProcessProfileEventUseCase(repo activitylog.Repository, log logger.Logger) *ProcessProfileEventUseCase {
	return &ProcessProfileEventUseCase{logRepo: repo, logger: log}
}

func (uc *ProcessProfileEventUseCase) Execute(ctx context.Context, payload event.ProfileEventPayload) error {
	l := &activitylog.Log{
		ID:     uuid.New(),
		UserID: payload.UserID,
		Text:   eventText(payload),
		Type:   string(payload.EventType),
		Date:   payload.OccurredAt,
	}
	if l.Date.IsZero() {
		l.Date = time.Now().UTC()
	}

	if err := uc.logRepo.Save(ctx, l); err != nil {
		return fmt.Errorf("cannot save activity log for event: %w", err)
	}

	uc.logger.Info("Profile event logged",
		zap.String("event_type", string(payload.EventType)),
		zap.String("profile_id", payload.ProfileID.String()))
	return nil
}

func eventText(p event.ProfileEventPayload) string {
	switch p.EventType {
	case event.ProfileEventTypeCreated:
		return "profile created"
	case event.ProfileEventTypeUpdated:
		if p.Field != "" {
			return fmt.Sprintf("profile %s updated", p.Field)
		}
		return "profile updated"
	case event.ProfileEventTypeAnnotated:
		if p.Detail != "" {
			return fmt.Sprintf("annotation %s set to %s", p.Field, p.Detail)
		}
		return fmt.Sprintf("annotation %s updated", p.Field)
	case event.ProfileEventTypeDeleted:
		return "account deleted"
	default:
		return string(p.EventType)
	}
}
