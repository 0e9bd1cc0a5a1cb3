package directory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/talentbase/talentbase/internal/domain/profile"
)

func entry(name string, mut func(*profile.Profile)) Entry {
	p := profile.Profile{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Status:        "Programmatore",
		Skills:        []string{"HTML", "CSS"},
		IsFavorite:    profile.FlagNo,
		IsInterviewed: profile.FlagNo,
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if mut != nil {
		mut(&p)
	}
	return Entry{Profile: p, UserName: name}
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.UserName
	}
	return out
}

func TestApply_EmptySelectionIsIdentity(t *testing.T) {
	snapshot := []Entry{entry("Ada", nil), entry("Bea", nil), entry("Cid", nil)}

	result := Apply(snapshot, NewFilterSelection(), SortBy{})

	assert.Equal(t, names(snapshot), names(result), "same elements, same order")
}

func TestApply_NeverMutatesSnapshot(t *testing.T) {
	snapshot := []Entry{entry("Ada", nil)}

	result := Apply(snapshot, func() FilterSelection {
		f := NewFilterSelection()
		f.Skills = "html"
		return f
	}(), SortBy{})

	assert.Equal(t, []string{"*HTML", "CSS"}, result[0].Profile.Skills)
	assert.Equal(t, []string{"HTML", "CSS"}, snapshot[0].Profile.Skills,
		"decoration must only touch the working copy")
}

func TestApply_StarsSentinelAndExactMatch(t *testing.T) {
	snapshot := []Entry{
		entry("Ada", func(p *profile.Profile) { p.Stars = 0 }),
		entry("Bea", func(p *profile.Profile) { p.Stars = 2 }),
		entry("Cid", func(p *profile.Profile) { p.Stars = 2 }),
	}

	off := NewFilterSelection()
	assert.Len(t, Apply(snapshot, off, SortBy{}), 3, "-1 disables the predicate")

	two := NewFilterSelection()
	two.Stars = 2
	assert.Equal(t, []string{"Bea", "Cid"}, names(Apply(snapshot, two, SortBy{})))

	zero := NewFilterSelection()
	zero.Stars = 0
	assert.Equal(t, []string{"Ada"}, names(Apply(snapshot, zero, SortBy{})),
		"0 is a real rating, not a sentinel")
}

func TestApply_FavoriteAndInterviewedFilters(t *testing.T) {
	snapshot := []Entry{
		entry("Ada", func(p *profile.Profile) { p.IsFavorite = profile.FlagYes }),
		entry("Bea", func(p *profile.Profile) { p.IsInterviewed = profile.FlagYes }),
	}

	fav := NewFilterSelection()
	fav.Favorite = profile.FlagYes
	assert.Equal(t, []string{"Ada"}, names(Apply(snapshot, fav, SortBy{})))

	itw := NewFilterSelection()
	itw.Interviewed = profile.FlagNo
	assert.Equal(t, []string{"Ada"}, names(Apply(snapshot, itw, SortBy{})))
}

func TestApply_StatusNameAddressWorked(t *testing.T) {
	snapshot := []Entry{
		entry("Anna Rossi", func(p *profile.Profile) {
			p.Status = "Programmatore"
			p.Address = "Via Roma 1, Milano"
			p.Worked = profile.WorkedPast
		}),
		entry("Mike Verdi", func(p *profile.Profile) {
			p.Status = "Sistemista"
			p.Address = "Corso Torino 9, Napoli"
			p.Worked = profile.WorkedNever
		}),
	}

	f := NewFilterSelection()
	f.Status = "Programma"
	assert.Equal(t, []string{"Anna Rossi"}, names(Apply(snapshot, f, SortBy{})))

	f = NewFilterSelection()
	f.Name = "mike"
	assert.Equal(t, []string{"Mike Verdi"}, names(Apply(snapshot, f, SortBy{})),
		"name match is case-insensitive")

	f = NewFilterSelection()
	f.Address = "milano"
	assert.Equal(t, []string{"Anna Rossi"}, names(Apply(snapshot, f, SortBy{})))

	f = NewFilterSelection()
	f.Worked = profile.WorkedNever
	assert.Equal(t, []string{"Mike Verdi"}, names(Apply(snapshot, f, SortBy{})))
}

func TestApply_InvalidNamePatternPassesThrough(t *testing.T) {
	snapshot := []Entry{entry("Ada", nil), entry("Bea", nil)}

	f := NewFilterSelection()
	f.Name = "(unclosed"
	assert.Len(t, Apply(snapshot, f, SortBy{}), 2)
}

func TestApply_SkillFilterKeepsAndDecorates(t *testing.T) {
	snapshot := []Entry{
		entry("Ada", func(p *profile.Profile) { p.Skills = []string{"HTML", "PHP"} }),
		entry("Bea", func(p *profile.Profile) { p.Skills = []string{"Java"} }),
	}

	f := NewFilterSelection()
	f.Skills = "HTML,CSS"
	result := Apply(snapshot, f, SortBy{})

	assert.Equal(t, []string{"Ada"}, names(result))
	assert.Equal(t, []string{"*HTML", "PHP"}, result[0].Profile.Skills)
}

func TestApply_FullScenario(t *testing.T) {
	// Stars and names must not affect a pure date-desc sort.
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	snapshot := []Entry{
		entry("Bea", func(p *profile.Profile) { p.Stars = 1; p.CreatedAt = base }),
		entry("Ada", func(p *profile.Profile) { p.Stars = 3; p.CreatedAt = base.Add(48 * time.Hour) }),
		entry("Cid", func(p *profile.Profile) { p.Stars = 2; p.CreatedAt = base.Add(24 * time.Hour) }),
	}

	result := Apply(snapshot, NewFilterSelection(), SortBy{Type: SortByDate, Dir: Descending})

	assert.Equal(t, []string{"Ada", "Cid", "Bea"}, names(result))
}

func TestApply_UnknownSortKeyIsNoSort(t *testing.T) {
	snapshot := []Entry{entry("Zoe", nil), entry("Ada", nil)}

	result := Apply(snapshot, NewFilterSelection(), SortBy{Type: "bogus", Dir: Ascending})

	assert.Equal(t, []string{"Zoe", "Ada"}, names(result))
}
