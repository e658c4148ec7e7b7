package logic

import (
	"sort"
	"strings"

	"hnsearch/internal/domain"
)

// SortStories returns stories ordered by the given mode. SortNone keeps the
// server relevance order. Sorting is a view concern: the input slice is
// copied, never reordered in place.
func SortStories(stories []domain.Story, mode domain.SortMode) []domain.Story {
	if mode == domain.SortNone {
		return stories
	}

	sorted := append([]domain.Story(nil), stories...)
	switch mode {
	case domain.SortByPoints:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Points > sorted[j].Points
		})
	case domain.SortByComments:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CommentCount > sorted[j].CommentCount
		})
	case domain.SortByTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		})
	}
	return sorted
}
