package menu

import (
	"regexp"
	"strings"

	"github.com/Salmayasser12/Sweet-Corner/models"
)

// Highlight splits text into segments, marking the parts that match the
// query case-insensitively. The query is matched as a literal substring:
// regexp metacharacters in user input are escaped so they cannot change
// which substrings match. A blank query returns the text as a single
// unmatched segment. Matched segments keep their original casing.
func Highlight(text, query string) []models.HighlightSegment {
	if strings.TrimSpace(query) == "" {
		return []models.HighlightSegment{{Text: text}}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	var segments []models.HighlightSegment
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, models.HighlightSegment{Text: text[last:loc[0]]})
		}
		segments = append(segments, models.HighlightSegment{Text: text[loc[0]:loc[1]], Matched: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, models.HighlightSegment{Text: text[last:]})
	}
	if len(segments) == 0 {
		segments = []models.HighlightSegment{{Text: text}}
	}
	return segments
}
