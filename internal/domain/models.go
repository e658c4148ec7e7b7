package domain

import "time"

// Story represents one article-like record from the Hacker News index.
// Immutable once fetched; identity is ID.
type Story struct {
	ID           string
	Title        string
	URL          string
	Author       string
	CommentCount int
	Points       int
	CreatedAt    time.Time
}

// FetchState is the current status and contents of the last fetch attempt.
// It is replaced wholesale on every transition. IsLoading and IsError are
// never both true.
type FetchState struct {
	Stories   []Story
	IsLoading bool
	IsError   bool
}

// SortMode controls the display ordering of fetched stories.
type SortMode int

const (
	SortNone SortMode = iota // server order
	SortByPoints
	SortByComments
	SortByTitle
)

func (m SortMode) String() string {
	switch m {
	case SortByPoints:
		return "points"
	case SortByComments:
		return "comments"
	case SortByTitle:
		return "title"
	default:
		return "relevance"
	}
}

// Next cycles to the following sort mode.
func (m SortMode) Next() SortMode {
	switch m {
	case SortNone:
		return SortByPoints
	case SortByPoints:
		return SortByComments
	case SortByComments:
		return SortByTitle
	default:
		return SortNone
	}
}
