package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/githubnext/calmhn/internal/story"
)

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// renderItem draws one story as two lines: rank + title (+ external-link
// glyph), then the metadata line.
func renderItem(s story.Story, rank int, selected bool, width int, now time.Time, th theme) string {
	if width < 16 {
		width = 40
	}

	badge := th.rank.Render(fmt.Sprintf("%2d.", rank))

	glyph := ""
	if s.URL != "" {
		glyph = " " + th.glyph.Render("↗")
	}

	titleWidth := width - 6
	if glyph != "" {
		titleWidth -= 2
	}
	titleStyle := th.title
	marker := "  "
	if selected {
		titleStyle = th.selected
		marker = "> "
	}
	title := titleStyle.Render(truncateStr(s.Title, titleWidth))

	meta := []string{th.score.Render(fmt.Sprintf("%d points", s.Points))}
	if s.Comments != nil {
		meta = append(meta, fmt.Sprintf("%d comments", *s.Comments))
	}
	meta = append(meta, story.RelativeTime(s.Time, now))
	if d := story.Domain(s.URL); d != "" {
		meta = append(meta, th.domain.Render(d))
	}
	if s.Author != "" {
		meta = append(meta, "by "+s.Author)
	}

	metaLine := "      " + th.meta.Render(strings.Join(meta, " · "))

	return marker + badge + " " + title + glyph + "\n" + metaLine
}

// renderStories windows the list around the cursor so it fits in height
// terminal rows. Each item takes three rows (two content, one blank).
func renderStories(stories []story.Story, cursor, height, width int, now time.Time, th theme) string {
	if len(stories) == 0 {
		return th.meta.Render("  No stories found.")
	}

	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(stories) {
		end = len(stories)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderItem(stories[i], i+1, i == cursor, width, now, th))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
