package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/talentbase/talentbase/internal/domain/directory"
	"github.com/talentbase/talentbase/internal/domain/profile"
	"github.com/talentbase/talentbase/pkg/logger"
)

type fakeDirectoryRepo struct {
	snapshot []directory.Entry
	err      error
	calls    int
}

func (r *fakeDirectoryRepo) Snapshot(context.Context) ([]directory.Entry, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.snapshot, nil
}

type fakeCache struct {
	entries  []directory.Entry
	hit      bool
	getErr   error
	setCalls int
}

func (c *fakeCache) Get(context.Context) ([]directory.Entry, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.entries, c.hit, nil
}

func (c *fakeCache) Set(_ context.Context, entries []directory.Entry) error {
	c.entries = entries
	c.hit = true
	c.setCalls++
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.entries = nil
	c.hit = false
	return nil
}

func entryNamed(name string) directory.Entry {
	return directory.Entry{
		Profile: profile.Profile{
			ID:            uuid.New(),
			UserID:        uuid.New(),
			Status:        "Sviluppatore",
			Skills:        []string{"Go"},
			IsFavorite:    profile.FlagNo,
			IsInterviewed: profile.FlagNo,
		},
		UserName: name,
	}
}

func TestList_CacheMissReadsRepoAndPrimesCache(t *testing.T) {
	repo := &fakeDirectoryRepo{snapshot: []directory.Entry{entryNamed("Anna"), entryNamed("Bruno")}}
	cache := &fakeCache{}
	uc := NewDirectoryUseCase(repo, cache, logger.NewZapLogger("development"))

	out, err := uc.ExecuteList(context.Background(), ListInput{Filters: directory.NewFilterSelection()})

	assert.NoError(t, err)
	assert.Len(t, out.Entries, 2)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.setCalls)
}

func TestList_CacheHitSkipsRepo(t *testing.T) {
	repo := &fakeDirectoryRepo{}
	cache := &fakeCache{entries: []directory.Entry{entryNamed("Anna")}, hit: true}
	uc := NewDirectoryUseCase(repo, cache, logger.NewZapLogger("development"))

	out, err := uc.ExecuteList(context.Background(), ListInput{Filters: directory.NewFilterSelection()})

	assert.NoError(t, err)
	assert.Len(t, out.Entries, 1)
	assert.Zero(t, repo.calls)
}

func TestList_CacheErrorFallsBackToRepo(t *testing.T) {
	repo := &fakeDirectoryRepo{snapshot: []directory.Entry{entryNamed("Anna")}}
	cache := &fakeCache{getErr: errors.New("redis down")}
	uc := NewDirectoryUseCase(repo, cache, logger.NewZapLogger("development"))

	out, err := uc.ExecuteList(context.Background(), ListInput{Filters: directory.NewFilterSelection()})

	assert.NoError(t, err)
	assert.Len(t, out.Entries, 1)
	assert.Equal(t, 1, repo.calls)
}

func TestList_RepoErrorPropagates(t *testing.T) {
	repo := &fakeDirectoryRepo{err: errors.New("db down")}
	uc := NewDirectoryUseCase(repo, &fakeCache{}, logger.NewZapLogger("development"))

	_, err := uc.ExecuteList(context.Background(), ListInput{Filters: directory.NewFilterSelection()})

	assert.Error(t, err)
}

func TestList_AppliesFiltersToSnapshot(t *testing.T) {
	fav := entryNamed("Anna")
	fav.Profile.IsFavorite = profile.FlagYes
	repo := &fakeDirectoryRepo{snapshot: []directory.Entry{fav, entryNamed("Bruno")}}
	uc := NewDirectoryUseCase(repo, &fakeCache{}, logger.NewZapLogger("development"))

	filters := directory.NewFilterSelection()
	filters.Favorite = profile.FlagYes

	out, err := uc.ExecuteList(context.Background(), ListInput{Filters: filters})

	assert.NoError(t, err)
	if assert.Len(t, out.Entries, 1) {
		assert.Equal(t, "Anna", out.Entries[0].UserName)
	}
}
