package directory

import (
	"context"

	"github.com/talentbase/talentbase/internal/domain/profile"
)

// Entry is one row of the directory view: a profile joined with the
// owning user's display name and avatar.
type Entry struct {
	Profile  profile.Profile `json:"profile"`
	UserName string          `json:"user_name"`
	Avatar   string          `json:"avatar"`
}

func (e Entry) clone() Entry {
	return Entry{
		Profile:  *e.Profile.Clone(),
		UserName: e.UserName,
		Avatar:   e.Avatar,
	}
}

// Repository loads the full directory snapshot the pipeline runs over.
type Repository interface {
	Snapshot(ctx context.Context) ([]Entry, error)
}

// SnapshotCache holds a serialized snapshot between directory requests.
// A miss is (nil, false, nil).
type SnapshotCache interface {
	Get(ctx context.Context) ([]Entry, bool, error)
	Set(ctx context.Context, entries []Entry) error
	Invalidate(ctx context.Context) error
}
