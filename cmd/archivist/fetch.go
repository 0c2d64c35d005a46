package main

import "fmt"

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	deps.Logger.Info("mirroring repository", "repo", c.Repo, "dest", c.Out)

	if err := deps.Client.Mirror(deps.Ctx, c.Repo, c.Dir, c.Out); err != nil {
		return fmt.Errorf("mirroring %s: %w", c.Repo, err)
	}

	fmt.Fprintf(deps.Stdout, "Mirrored %s into %s\n", c.Repo, c.Out)
	return nil
}
