package directory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talentbase/talentbase/internal/domain/profile"
)

func TestSortByName_CaseInsensitive(t *testing.T) {
	entries := []Entry{entry("Zoe", nil), entry("Anna", nil), entry("mike", nil)}

	sortEntries(entries, SortBy{Type: SortByName, Dir: Ascending})
	assert.Equal(t, []string{"Anna", "mike", "Zoe"}, names(entries))

	sortEntries(entries, SortBy{Type: SortByName, Dir: Descending})
	assert.Equal(t, []string{"Zoe", "mike", "Anna"}, names(entries))
}

func TestSortByDate(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		entry("B", func(p *profile.Profile) { p.CreatedAt = base.Add(time.Hour) }),
		entry("A", func(p *profile.Profile) { p.CreatedAt = base }),
	}

	sortEntries(entries, SortBy{Type: SortByDate, Dir: Ascending})
	assert.Equal(t, []string{"A", "B"}, names(entries))

	sortEntries(entries, SortBy{Type: SortByDate, Dir: Descending})
	assert.Equal(t, []string{"B", "A"}, names(entries))
}

// Locks in the documented quirk: an unset (zero) distance never moves
// relative to its neighbors, whatever direction was requested, instead
// of sorting unknowns last.
func TestSortByDistance_ZeroBias(t *testing.T) {
	unknown := entry("Unknown", func(p *profile.Profile) { p.Distance = 0 })
	near := entry("Near", func(p *profile.Profile) { p.Distance = 500 })

	for _, dir := range []Direction{Ascending, Descending} {
		entries := []Entry{unknown, near}
		sortEntries(entries, SortBy{Type: SortByDistance, Dir: dir})
		assert.Equal(t, []string{"Unknown", "Near"}, names(entries), "dir=%s", dir)

		entries = []Entry{near, unknown}
		sortEntries(entries, SortBy{Type: SortByDistance, Dir: dir})
		assert.Equal(t, []string{"Near", "Unknown"}, names(entries), "dir=%s", dir)
	}
}

func TestSortByDistance_NonZero(t *testing.T) {
	entries := []Entry{
		entry("Far", func(p *profile.Profile) { p.Distance = 9000 }),
		entry("Near", func(p *profile.Profile) { p.Distance = 500 }),
	}

	sortEntries(entries, SortBy{Type: SortByDistance, Dir: Ascending})
	assert.Equal(t, []string{"Near", "Far"}, names(entries))

	sortEntries(entries, SortBy{Type: SortByDistance, Dir: Descending})
	assert.Equal(t, []string{"Far", "Near"}, names(entries))
}

func TestSortByCollectionLengths(t *testing.T) {
	now := time.Now()
	entries := []Entry{
		entry("Many", func(p *profile.Profile) {
			p.Skills = []string{"a", "b", "c"}
			p.Experience = []profile.ExperienceEntry{{From: now}, {From: now}}
			p.Education = []profile.EducationEntry{{From: now}}
		}),
		entry("Few", func(p *profile.Profile) {
			p.Skills = []string{"a"}
			p.Experience = nil
			p.Education = nil
		}),
	}

	sortEntries(entries, SortBy{Type: SortBySkills, Dir: Ascending})
	assert.Equal(t, []string{"Few", "Many"}, names(entries))

	sortEntries(entries, SortBy{Type: SortByExperience, Dir: Descending})
	assert.Equal(t, []string{"Many", "Few"}, names(entries))

	sortEntries(entries, SortBy{Type: SortByEducation, Dir: Ascending})
	assert.Equal(t, []string{"Few", "Many"}, names(entries))
}

func TestSortEntries_StableOnTies(t *testing.T) {
	entries := []Entry{entry("First", nil), entry("Second", nil), entry("Third", nil)}

	sortEntries(entries, SortBy{Type: SortByDate, Dir: Ascending})

	assert.Equal(t, []string{"First", "Second", "Third"}, names(entries),
		"equal keys keep input order")
}

func TestSortEntries_MissingDirectionIsNoSort(t *testing.T) {
	entries := []Entry{entry("Zoe", nil), entry("Ada", nil)}

	sortEntries(entries, SortBy{Type: SortByName})

	assert.Equal(t, []string{"Zoe", "Ada"}, names(entries))
}
