package main

import (
	"fmt"

	"github.com/ilsedelangerecords/archivist"
	"github.com/ilsedelangerecords/archivist/migrate"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	m := &migrate.Migrator{
		Source:      deps.Source,
		Normalizer:  deps.Normalizer,
		Images:      deps.Images,
		Roster:      deps.Roster,
		Concurrency: c.Concurrency,
		Logger:      deps.Logger,
	}

	archive, err := m.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", archivist.ErrorMessage(err))
		return err
	}

	if err := deps.Writer.WriteArchive(deps.Ctx, archive); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", archivist.ErrorMessage(err))
		return err
	}

	s := archive.Summary
	fmt.Fprintf(deps.Stdout, "Processed %d pages: %d albums, %d lyrics, %d live performances, %d images\n",
		s.Pages, s.Albums, s.Lyrics, s.LivePerformances, s.Images)
	if len(s.Failed) > 0 {
		fmt.Fprintf(deps.Stdout, "%d pages failed; see migration_report.md in %s\n", len(s.Failed), c.Out)
	}
	return nil
}
