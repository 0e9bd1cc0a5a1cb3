package directory

import (
	"regexp"
	"strings"
)

// Sentinels disabling individual predicates. They are deliberately not
// uniform: 0 is a legal stars value, so stars needs -1, while the
// favorite/interviewed flags never store 0 and reuse it.
const (
	FlagFilterOff  = 0
	StarsFilterOff = -1
)

// FilterSelection is the set of active predicates. Zero values mean
// "no filter" for every field except Stars, where the zero value is a
// real rating; always build selections with NewFilterSelection.
type FilterSelection struct {
	Status      string `json:"status"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Favorite    int    `json:"isFavorite"`
	Interviewed int    `json:"isInterviewed"`
	Stars       int    `json:"stars"`
	Worked      string `json:"worked"`
	Skills      string `json:"skills"`
}

func NewFilterSelection() FilterSelection {
	return FilterSelection{
		Favorite:    FlagFilterOff,
		Interviewed: FlagFilterOff,
		Stars:       StarsFilterOff,
	}
}

func filterByStatus(entries []Entry, status string) []Entry {
	out := entries[:0]
	for _, e := range entries {
		if strings.Contains(e.Profile.Status, status) {
			out = append(out, e)
		}
	}
	return out
}

// filterByName keeps entries whose user name matches the value as a
// case-insensitive pattern. A value that fails to compile is treated
// as no filter at all.
func filterByName(entries []Entry, name string) []Entry {
	re, err := regexp.Compile("(?i)" + name)
	if err != nil {
		return entries
	}
	out := entries[:0]
	for _, e := range entries {
		if re.MatchString(e.UserName) {
			out = append(out, e)
		}
	}
	return out
}

func filterByAddress(entries []Entry, address string) []Entry {
	re, err := regexp.Compile("(?i)" + address)
	if err != nil {
		return entries
	}
	out := entries[:0]
	for _, e := range entries {
		if re.MatchString(e.Profile.Address) {
			out = append(out, e)
		}
	}
	return out
}

func filterByFavorite(entries []Entry, flag int) []Entry {
	out := entries[:0]
	for _, e := range entries {
		if e.Profile.IsFavorite == flag {
			out = append(out, e)
		}
	}
	return out
}

func filterByInterviewed(entries []Entry, flag int) []Entry {
	out := entries[:0]
	for _, e := range entries {
		if e.Profile.IsInterviewed == flag {
			out = append(out, e)
		}
	}
	return out
}

// filterByStars is always evaluated; the sentinel check lives here so
// the pipeline stays a straight sequence.
func filterByStars(entries []Entry, stars int) []Entry {
	if stars < 0 {
		return entries
	}
	out := entries[:0]
	for _, e := range entries {
		if e.Profile.Stars == stars {
			out = append(out, e)
		}
	}
	return out
}

func filterByWorked(entries []Entry, worked string) []Entry {
	out := entries[:0]
	for _, e := range entries {
		if e.Profile.Worked == worked {
			out = append(out, e)
		}
	}
	return out
}

// filterBySkills keeps matching entries and rewrites their skill lists
// with match markers. It mutates the working copy, which is why the
// pipeline deep-copies the snapshot first.
func filterBySkills(entries []Entry, query string) []Entry {
	out := entries[:0]
	for i := range entries {
		ok, decorated := MatchSkills(entries[i].Profile.Skills, query)
		if !ok {
			continue
		}
		entries[i].Profile.Skills = decorated
		out = append(out, entries[i])
	}
	return out
}
