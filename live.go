package archivist

import "time"

// Defaults for live performance fields the source pages rarely state.
const (
	UnknownVenue    = "Unknown Venue"
	UnknownLocation = "Unknown Location"
	UnknownQuality  = "unknown"
)

// LivePerformance represents a concert or live recording page.
type LivePerformance struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	PerformanceDate  string    `json:"performanceDate"`
	VenueName        string    `json:"venueName"`
	VenueLocation    string    `json:"venueLocation"`
	RecordingQuality string    `json:"recordingQuality"`
	AvailableFormats []string  `json:"availableFormats"`
	SourceFile       string    `json:"sourceFile"`
	SEO              SEO       `json:"seo"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Validate returns an error if the performance contains invalid fields.
func (p *LivePerformance) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "live performance title required")
	}
	return nil
}
