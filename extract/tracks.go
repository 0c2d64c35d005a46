package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ilsedelangerecords/archivist"
)

// trackPatterns recognize "NN: Title (duration)", "N. Title (duration)",
// and "N - Title (duration)" forms. Patterns are tried in order and the
// first one yielding any match is used; match sets are never merged.
var trackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{2}):\s*([^(]+?)\s*(?:\(([^)]+)\))?\s*$`),
	regexp.MustCompile(`^(\d{1,2})\.\s*([^(]+?)\s*(?:\(([^)]+)\))?\s*$`),
	regexp.MustCompile(`^(\d{1,2})\s*[-–]\s*([^(]+?)\s*(?:\(([^)]+)\))?\s*$`),
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// Tracks parses an ordered track listing from a page's line-oriented
// text. Duplicate track numbers collapse to the first occurrence and
// the result is sorted ascending by number, so parsing is idempotent
// and numbers are strictly increasing. Invalid entries are skipped,
// never fatal.
func Tracks(page *archivist.NormalizedPage) []archivist.Track {
	for _, re := range trackPatterns {
		if tracks := matchTracks(re, page.Lines); len(tracks) > 0 {
			return tracks
		}
	}
	return nil
}

func matchTracks(re *regexp.Regexp, lines []string) []archivist.Track {
	seen := make(map[int]archivist.Track)
	for _, line := range lines {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		number, err := strconv.Atoi(m[1])
		if err != nil || number <= 0 {
			continue
		}

		title := strings.TrimSpace(tagRe.ReplaceAllString(m[2], ""))
		if len(title) <= 1 {
			continue
		}

		duration := strings.TrimSpace(m[3])
		if duration == "" {
			duration = archivist.DefaultDuration
		}

		if _, ok := seen[number]; !ok {
			seen[number] = archivist.Track{
				Number:   number,
				Title:    title,
				Duration: duration,
			}
		}
	}

	tracks := make([]archivist.Track, 0, len(seen))
	for _, t := range seen {
		tracks = append(tracks, t)
	}
	sort.Slice(tracks, func(i, j int) bool { return tracks[i].Number < tracks[j].Number })
	return tracks
}
