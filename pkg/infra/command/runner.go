package command

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Runner executes external tools. Tool names can be mapped to other binaries.
type Runner struct {
	paths map[string]string
}

// Option is a functional option for Runner configuration
type Option func(*Runner)

// WithToolPath makes Run invoke path whenever name is requested.
// An empty path keeps the default lookup in $PATH.
func WithToolPath(name, path string) Option {
	return func(r *Runner) {
		if path != "" {
			r.paths[name] = path
		}
	}
}

// New creates a new Runner
func New(opts ...Option) *Runner {
	r := &Runner{
		paths: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run runs name with args in dir and returns stdout. A non-zero exit status
// is an error carrying the trimmed stderr of the command.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	logger := ctxlog.From(ctx)

	bin := name
	if p, ok := r.paths[name]; ok {
		bin = p
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("Running external command",
		"command", bin,
		"args", args,
		"dir", dir,
	)

	if err := cmd.Run(); err != nil {
		return nil, goerr.Wrap(err, "external command failed",
			goerr.V("command", bin),
			goerr.V("args", args),
			goerr.V("dir", dir),
			goerr.V("stdout", strings.TrimSpace(stdout.String())),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return stdout.Bytes(), nil
}
