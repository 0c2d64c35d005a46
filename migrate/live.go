package migrate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/extract"
)

var formatRe = regexp.MustCompile(`(?i)\b(cd|dvd|vinyl|blu-ray|download)\b`)

// canonicalFormats normalizes format spellings found in page text.
var canonicalFormats = map[string]string{
	"cd":       "CD",
	"dvd":      "DVD",
	"vinyl":    "vinyl",
	"blu-ray":  "Blu-ray",
	"download": "download",
}

// knownVenues maps venue keywords appearing in page text to the venue
// and its location. The source pages never state these in a
// structured form.
var knownVenues = []struct {
	keyword  string
	venue    string
	location string
}{
	{"ahoy", "Ahoy", "Rotterdam, Netherlands"},
	{"gelredome", "GelreDome", "Arnhem, Netherlands"},
	{"paradiso", "Paradiso", "Amsterdam, Netherlands"},
	{"heineken music hall", "Heineken Music Hall", "Amsterdam, Netherlands"},
	{"ziggo dome", "Ziggo Dome", "Amsterdam, Netherlands"},
}

func (r *run) addLivePerformance(page *archivist.SourcePage, norm *archivist.NormalizedPage) error {
	title, ok := extract.Title(norm.Meta, r.migrator.Roster.Names())
	if !ok {
		title = titleFromFilename(page.Name)
	}
	if title == "" {
		return archivist.Errorf(archivist.EINVALID, "no usable title")
	}

	slug, err := r.registry.Claim("live", archivist.Slugify(title))
	if err != nil {
		return err
	}

	var date string
	if year, ok := extract.Year(norm); ok {
		date = strconv.Itoa(year)
	}

	venue, location := archivist.UnknownVenue, archivist.UnknownLocation
	haystack := strings.ToLower(title + " " + norm.Text)
	for _, v := range knownVenues {
		if strings.Contains(haystack, v.keyword) {
			venue, location = v.venue, v.location
			break
		}
	}

	artist := r.migrator.Roster.ByID(r.migrator.Roster.PrimaryID)
	ts := r.now().UTC()
	perf := &archivist.LivePerformance{
		ID:               uuid.NewString(),
		Title:            title,
		Slug:             slug,
		PerformanceDate:  date,
		VenueName:        venue,
		VenueLocation:    location,
		RecordingQuality: archivist.UnknownQuality,
		AvailableFormats: detectFormats(norm.Text),
		SourceFile:       page.Path,
		SEO: archivist.SEO{
			MetaTitle:       fmt.Sprintf("%s - %s Live", title, artist.Name),
			MetaDescription: truncate(fmt.Sprintf("Live performance %s by %s", title, artist.Name), maxMetaDescription),
			Keywords:        keywordsFor(norm.Meta, title, artist.Name, "live"),
		},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if err := perf.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.archive.LivePerformances[perf.ID] = perf
	if _, ok := r.archive.URLMapping[page.Path]; !ok {
		r.archive.URLMapping[page.Path] = "/live/" + slug
	}
	return nil
}

// detectFormats lists the media formats mentioned in page text, in
// first-mention order without duplicates. Pages that name no format
// default to digital.
func detectFormats(text string) []string {
	seen := make(map[string]bool)
	var formats []string
	for _, m := range formatRe.FindAllString(text, -1) {
		f := canonicalFormats[strings.ToLower(m)]
		if f != "" && !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		return []string{"digital"}
	}
	return formats
}
