package directory

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByName       SortKey = "name"
	SortByDistance   SortKey = "distance"
	SortBySkills     SortKey = "skills"
	SortByExperience SortKey = "experience"
	SortByEducation  SortKey = "education"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

type SortBy struct {
	Type SortKey   `json:"type"`
	Dir  Direction `json:"dir"`
}

// lessFunc orders two entries for a given direction.
type lessFunc func(a, b Entry, dir Direction) bool

// comparators is the closed set of orderings. An unknown key is simply
// absent, which the pipeline treats as "no sort".
var comparators = map[SortKey]lessFunc{
	SortByDate: func(a, b Entry, dir Direction) bool {
		if dir == Descending {
			return b.Profile.CreatedAt.Before(a.Profile.CreatedAt)
		}
		return a.Profile.CreatedAt.Before(b.Profile.CreatedAt)
	},
	SortByName: func(a, b Entry, dir Direction) bool {
		na, nb := strings.ToUpper(a.UserName), strings.ToUpper(b.UserName)
		if dir == Descending {
			return na > nb
		}
		return na < nb
	},
	// A zero distance means the address never geocoded. Any pair
	// involving a zero is reported as already ordered, so the stable
	// sort leaves those entries at their input positions whatever
	// direction was asked for.
	SortByDistance: func(a, b Entry, dir Direction) bool {
		if a.Profile.Distance == 0 || b.Profile.Distance == 0 {
			return false
		}
		if dir == Descending {
			return a.Profile.Distance > b.Profile.Distance
		}
		return a.Profile.Distance < b.Profile.Distance
	},
	SortBySkills: func(a, b Entry, dir Direction) bool {
		if dir == Descending {
			return len(a.Profile.Skills) > len(b.Profile.Skills)
		}
		return len(a.Profile.Skills) < len(b.Profile.Skills)
	},
	SortByExperience: func(a, b Entry, dir Direction) bool {
		if dir == Descending {
			return len(a.Profile.Experience) > len(b.Profile.Experience)
		}
		return len(a.Profile.Experience) < len(b.Profile.Experience)
	},
	SortByEducation: func(a, b Entry, dir Direction) bool {
		if dir == Descending {
			return len(a.Profile.Education) > len(b.Profile.Education)
		}
		return len(a.Profile.Education) < len(b.Profile.Education)
	},
}

// sortEntries applies the requested ordering in place with a stable
// sort. An unknown key or direction leaves the slice untouched rather
// than erroring.
func sortEntries(entries []Entry, by SortBy) {
	less, ok := comparators[by.Type]
	if !ok {
		return
	}
	if by.Dir != Ascending && by.Dir != Descending {
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j], by.Dir)
	})
}
