package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ilsedelangerecords/archivist/fs"
	"github.com/ilsedelangerecords/archivist/goquery"
	archhttp "github.com/ilsedelangerecords/archivist/http"
	archslog "github.com/ilsedelangerecords/archivist/slog"
	"github.com/ilsedelangerecords/archivist/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("archivist"),
		kong.Description("Convert the legacy fan site into structured records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'archivist --help' to see available commands")
	}
	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch cmd {
	case "run":
		roster, err := fs.LoadRoster(cli.Run.Roster)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Pass --roster to point at the artist roster YAML file")
			return err
		}
		deps.Roster = roster

		imageRoot := cli.Run.Images
		if imageRoot == "" {
			imageRoot = cli.Run.Source
		}
		deps.Source = archslog.NewLoggingPageSource(fs.NewDirSource(cli.Run.Source), deps.Logger)
		deps.Images = fs.NewDirImageSource(imageRoot)
		deps.Writer = archslog.NewLoggingArchiveWriter(fs.NewWriter(cli.Run.Out, cli.Run.BaseURL), deps.Logger)
		switch cli.Run.Normalizer {
		case "trafilatura":
			deps.Normalizer = trafilatura.NewNormalizer()
		default:
			deps.Normalizer = goquery.NewNormalizer()
		}

	case "fetch":
		opts := []archhttp.Option{}
		if cli.Fetch.Token != "" {
			opts = append(opts, archhttp.WithToken(cli.Fetch.Token))
		}
		deps.Client = archhttp.NewClient(opts...)
	}

	return kongCtx.Run(deps)
}
