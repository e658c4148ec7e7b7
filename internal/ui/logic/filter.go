package logic

import (
	"strings"

	"hnsearch/internal/domain"
)

// Filter returns the stories whose title contains term, case-insensitively.
// An empty term matches everything. Relative order is preserved and the
// input slice is never modified.
func Filter(stories []domain.Story, term string) []domain.Story {
	if term == "" {
		return stories
	}

	var matched []domain.Story
	for _, s := range stories {
		if Matches(s, term) {
			matched = append(matched, s)
		}
	}
	return matched
}

// Matches reports whether a single story matches the filter term.
func Matches(s domain.Story, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), strings.ToLower(term))
}
