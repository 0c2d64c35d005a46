package fs

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ilsedelangerecords/archivist"
	"gopkg.in/yaml.v3"
)

// rosterConfig is the YAML shape of a roster file.
type rosterConfig struct {
	Artists []rosterArtist `yaml:"artists"`
}

type rosterArtist struct {
	Name      string            `yaml:"name"`
	Type      string            `yaml:"type"`
	Role      string            `yaml:"role"`
	Origin    string            `yaml:"origin"`
	Genres    []string          `yaml:"genres"`
	Biography string            `yaml:"biography"`
	Social    map[string]string `yaml:"social"`
}

// LoadRoster reads the artist roster from a YAML file. Each artist
// gets a fresh identity and a slug derived from its name; the roles
// "primary", "duo", and "various" bind artists to the attribution
// signals.
func LoadRoster(path string) (*archivist.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}

	var cfg rosterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, archivist.Errorf(archivist.EINVALID, "parsing roster: %v", err)
	}

	now := time.Now().UTC()
	roster := &archivist.Roster{}
	for _, ra := range cfg.Artists {
		artist := &archivist.Artist{
			ID:          uuid.NewString(),
			Name:        ra.Name,
			Slug:        archivist.Slugify(ra.Name),
			Type:        archivist.ArtistType(ra.Type),
			Origin:      ra.Origin,
			Genres:      ra.Genres,
			Biography:   ra.Biography,
			SocialLinks: ra.Social,
			SEO: archivist.SEO{
				MetaTitle:       ra.Name,
				MetaDescription: ra.Biography,
				Keywords:        append([]string{ra.Name}, ra.Genres...),
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		roster.Artists = append(roster.Artists, artist)

		switch ra.Role {
		case "primary":
			roster.PrimaryID = artist.ID
		case "duo":
			roster.DuoID = artist.ID
		case "various":
			roster.VariousID = artist.ID
		case "":
		default:
			return nil, archivist.Errorf(archivist.EINVALID, "unknown roster role %q for %q", ra.Role, ra.Name)
		}
	}

	if err := roster.Validate(); err != nil {
		return nil, err
	}
	return roster, nil
}
