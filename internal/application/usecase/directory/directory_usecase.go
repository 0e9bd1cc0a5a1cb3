package directory

import (
	"context"

	"go.uber.org/zap"

	"github.com/talentbase/talentbase/internal/domain/directory"
	"github.com/talentbase/talentbase/pkg/logger"
)

// DirectoryUseCase serves the filtered/sorted directory view. The full
// snapshot is loaded once per request (through a redis-backed cache)
// and the pipeline runs in memory; suitable for the small collections
// this directory manages.
type DirectoryUseCase struct {
	directoryRepo directory.Repository
	cache         directory.SnapshotCache
	logger        logger.Logger
}

func NewDirectoryUseCase(repo directory.Repository, cache directory.SnapshotCache, log logger.Logger) *DirectoryUseCase {
	return &DirectoryUseCase{
		directoryRepo: repo,
		cache:         cache,
		logger:        log,
	}
}

type ListInput struct {
	Filters directory.FilterSelection
	SortBy  directory.SortBy
}

type ListOutput struct {
	Entries []directory.Entry
}

func (uc *DirectoryUseCase) ExecuteList(ctx context.Context, input ListInput) (*ListOutput, error) {
	snapshot, err := uc.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	entries := directory.Apply(snapshot, input.Filters, input.SortBy)
	return &ListOutput{Entries: entries}, nil
}

// loadSnapshot prefers the cached snapshot; cache errors degrade to a
// repository read rather than failing the request.
func (uc *DirectoryUseCase) loadSnapshot(ctx context.Context) ([]directory.Entry, error) {
	cached, ok, err := uc.cache.Get(ctx)
	if err != nil {
		uc.logger.Warn("Directory snapshot cache read failed", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	snapshot, err := uc.directoryRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, snapshot); err != nil {
		uc.logger.Warn("Directory snapshot cache write failed", zap.Error(err))
	}
	return snapshot, nil
}
