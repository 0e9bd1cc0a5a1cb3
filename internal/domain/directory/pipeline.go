package directory

// Apply runs the filter/sort pipeline over a snapshot of the directory
// and returns the resulting view. The snapshot itself is never
// mutated: the pipeline works on a deep copy because the skill stage
// rewrites skill text on matched entries.
//
// The stage order is fixed; each stage consumes the previous stage's
// output. Disabled predicates (empty strings, flag 0, stars -1) pass
// entries through untouched.
func Apply(snapshot []Entry, filters FilterSelection, sortBy SortBy) []Entry {
	working := make([]Entry, len(snapshot))
	for i, e := range snapshot {
		working[i] = e.clone()
	}

	result := working
	if filters.Status != "" {
		result = filterByStatus(result, filters.Status)
	}
	if filters.Name != "" {
		result = filterByName(result, filters.Name)
	}
	if filters.Address != "" {
		result = filterByAddress(result, filters.Address)
	}
	if filters.Favorite != FlagFilterOff {
		result = filterByFavorite(result, filters.Favorite)
	}
	if filters.Interviewed != FlagFilterOff {
		result = filterByInterviewed(result, filters.Interviewed)
	}
	result = filterByStars(result, filters.Stars)
	if filters.Worked != "" {
		result = filterByWorked(result, filters.Worked)
	}
	if filters.Skills != "" {
		result = filterBySkills(result, filters.Skills)
	}

	sortEntries(result, sortBy)
	return result
}
