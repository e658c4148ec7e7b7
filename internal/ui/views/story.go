package views

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"hnsearch/internal/domain"
)

// StoryRenderer handles rendering of story rows
type StoryRenderer struct {
	styles     *Styles
	showPoints bool
}

// NewStoryRenderer creates a new story renderer
func NewStoryRenderer(styles *Styles, showPoints bool) *StoryRenderer {
	return &StoryRenderer{
		styles:     styles,
		showPoints: showPoints,
	}
}

// RenderStory renders one story line. filterTerm highlights the matched
// portion of the title when non-empty.
func (r *StoryRenderer) RenderStory(story domain.Story, isSelected bool, filterTerm string, width int) string {
	var parts []string

	cursor := "  "
	if isSelected {
		cursor = "> "
	}
	parts = append(parts, cursor)

	title := story.Title
	if filterTerm != "" {
		title = r.highlightMatch(title, filterTerm)
	} else if isSelected {
		title = r.styles.SelectionBg.Render(title)
	}
	parts = append(parts, title)

	if host := hostOf(story.URL); host != "" {
		parts = append(parts, " "+r.styles.Dim.Render("("+host+")"))
	}

	if r.showPoints {
		parts = append(parts, "  "+r.styles.Points.Render(fmt.Sprintf("▲%d", story.Points)))
	}
	parts = append(parts, "  "+r.styles.Comments.Render(fmt.Sprintf("%dc", story.CommentCount)))
	if story.Author != "" {
		parts = append(parts, "  "+r.styles.Author.Render("by "+story.Author))
	}

	line := strings.Join(parts, "")
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// highlightMatch emphasizes the first occurrence of term within title,
// matching case-insensitively while keeping the original casing.
func (r *StoryRenderer) highlightMatch(title, term string) string {
	lowTerm := strings.ToLower(term)
	idx := strings.Index(strings.ToLower(title), lowTerm)
	if idx < 0 {
		return title
	}
	// Lowercasing can change rune widths, so offsets into the lowered
	// title must be mapped back to boundaries in the original.
	start, end := -1, len(title)
	low := 0
	for i, ru := range title {
		if low == idx {
			start = i
		}
		if low >= idx+len(lowTerm) {
			end = i
			break
		}
		low += utf8.RuneLen(unicode.ToLower(ru))
	}
	if start < 0 {
		return title
	}
	return title[:start] +
		r.styles.Highlight.Render(title[start:end]) +
		title[end:]
}

// hostOf extracts the bare host of a story URL for display. Ask/Show HN
// stories carry no URL.
func hostOf(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}
