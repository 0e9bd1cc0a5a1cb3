package directory

import "strings"

// MatchedMarker prefixes a skill name that matched the active skill
// query. It is a display decoration recomputed on every filter pass,
// never persisted.
const MatchedMarker = "*"

// SplitTerms turns a raw comma-separated skill query into lowercase,
// trimmed terms. Empty terms are dropped.
func SplitTerms(query string) []string {
	parts := strings.Split(strings.ToLower(query), ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// MatchSkills reports whether a skill list matches the query and
// returns the decorated list, with every matched skill prefixed by
// MatchedMarker. A term matches a skill when it is a case-insensitive
// substring of it; terms compose by OR. Each skill is tested on its
// own rather than against a comma-joined form, so skill names that
// contain the delimiter cannot corrupt the result.
//
// An empty or blank query matches everything and decorates nothing.
func MatchSkills(skills []string, query string) (bool, []string) {
	terms := SplitTerms(query)
	if len(terms) == 0 {
		return true, skills
	}

	matched := false
	decorated := make([]string, len(skills))
	for i, skill := range skills {
		lower := strings.ToLower(skill)
		hit := false
		for _, term := range terms {
			if strings.Contains(lower, term) {
				hit = true
				break
			}
		}
		if hit {
			matched = true
			decorated[i] = MatchedMarker + skill
		} else {
			decorated[i] = skill
		}
	}
	return matched, decorated
}
