package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/ilsedelangerecords/archivist"
	archhttp "github.com/ilsedelangerecords/archivist/http"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// run command
	Source     archivist.PageSource
	Images     archivist.ImageSource
	Writer     archivist.ArchiveWriter
	Normalizer archivist.Normalizer
	Roster     *archivist.Roster

	// fetch command
	Client *archhttp.Client
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run   RunCmd   `cmd:"" help:"Extract structured records from a legacy site tree"`
	Fetch FetchCmd `cmd:"" help:"Mirror the legacy site from a GitHub repository"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Source      string `arg:"" help:"Directory containing the legacy HTML pages"`
	Out         string `short:"o" default:"content" help:"Output directory"`
	Roster      string `default:"roster.yml" help:"Roster YAML file"`
	Images      string `help:"Image root directory (defaults to the source directory)"`
	BaseURL     string `name:"base-url" default:"https://www.ilsedelangerecords.nl" help:"Site base URL for sitemap locations"`
	Normalizer  string `default:"goquery" enum:"goquery,trafilatura" help:"HTML normalizer backend"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent page workers"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Repo  string `arg:"" help:"GitHub repository as owner/name"`
	Out   string `short:"o" default:"site" help:"Destination directory"`
	Dir   string `help:"Subdirectory within the repository"`
	Token string `env:"GITHUB_TOKEN" help:"GitHub API token for higher rate limits"`
}
