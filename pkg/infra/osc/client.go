package osc

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/interfaces"
)

// Tool is the name of the OBS command line client
const Tool = "osc"

type client struct {
	runner interfaces.Runner
}

// NewClient creates a VCSClient backed by osc
func NewClient(runner interfaces.Runner) interfaces.VCSClient {
	return &client{runner: runner}
}

// IsCheckout reports whether dir is an osc package checkout
func (c *client) IsCheckout(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, ".osc"))
	return err == nil && fi.IsDir()
}

// Add schedules path for addition
func (c *client) Add(ctx context.Context, dir, path string) error {
	ctxlog.From(ctx).Info("Adding file to package", "path", path)

	if _, err := c.runner.Run(ctx, dir, Tool, "add", path); err != nil {
		return goerr.Wrap(err, "failed to add file", goerr.V("path", path))
	}
	return nil
}

// Remove schedules path for deletion
func (c *client) Remove(ctx context.Context, dir, path string) error {
	ctxlog.From(ctx).Info("Removing file from package", "path", path)

	if _, err := c.runner.Run(ctx, dir, Tool, "rm", "--force", path); err != nil {
		return goerr.Wrap(err, "failed to remove file", goerr.V("path", path))
	}
	return nil
}
