// Package lyrics segments cleaned lyrics text into section-tagged
// lines and performs a coarse language classification.
package lyrics

import (
	"strings"

	"github.com/ilsedelangerecords/archivist"
)

// marker binds a set of marker keywords to the section they open.
// Markers are tested in priority order; a matching line is consumed as
// a state transition and never emitted as lyric content.
type marker struct {
	section  archivist.Section
	keywords []string
}

var markers = []marker{
	{archivist.SectionChorus, []string{"chorus", "refrain"}},
	{archivist.SectionVerse, []string{"verse", "couplet"}},
	{archivist.SectionBridge, []string{"bridge"}},
	{archivist.SectionIntro, []string{"intro"}},
	{archivist.SectionOutro, []string{"outro", "ending"}},
}

// Segment runs the section state machine over lyrics lines. The
// initial state is verse; state persists until the input ends.
// Non-marker lines are emitted tagged with the current state, in input
// order, so concatenating the emitted text reproduces the non-marker
// input exactly. The verse counter increments on each verse marker;
// lines emitted before any marker count as verse one.
func Segment(lines []string) []archivist.LyricLine {
	section := archivist.SectionVerse
	verse := 0

	var structure []archivist.LyricLine
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if next, ok := matchMarker(line); ok {
			section = next
			if next == archivist.SectionVerse {
				verse++
			}
			continue
		}

		entry := archivist.LyricLine{Section: section, Text: line}
		if section == archivist.SectionVerse {
			n := max(verse, 1)
			entry.SectionNumber = &n
		}
		structure = append(structure, entry)
	}
	return structure
}

// maxMarkerLen keeps lyric lines that merely mention a section word,
// like "the bridge between us", from being consumed as markers.
const maxMarkerLen = 20

func matchMarker(line string) (archivist.Section, bool) {
	if len(line) > maxMarkerLen {
		return "", false
	}
	lower := strings.ToLower(line)
	for _, m := range markers {
		for _, kw := range m.keywords {
			if strings.Contains(lower, kw) {
				return m.section, true
			}
		}
	}
	return "", false
}
