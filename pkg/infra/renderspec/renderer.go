package renderspec

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/interfaces"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
)

// Tool is the name of the spec rendering binary
const Tool = "renderspec"

type renderer struct {
	runner interfaces.Runner
}

// NewRenderer creates a Renderer backed by the renderspec binary
func NewRenderer(runner interfaces.Runner) interfaces.Renderer {
	return &renderer{runner: runner}
}

// Render writes req.Output from req.Template
func (r *renderer) Render(ctx context.Context, req *model.RenderRequest) error {
	logger := ctxlog.From(ctx)

	args := Args(req)
	logger.Info("Rendering spec file",
		"template", req.Template,
		"output", req.Output,
		"spec_style", req.SpecStyle,
	)

	if _, err := r.runner.Run(ctx, req.WorkDir, Tool, args...); err != nil {
		return goerr.Wrap(err, "failed to render spec file",
			goerr.V("template", req.Template),
			goerr.V("output", req.Output),
		)
	}

	return nil
}

// Args builds the renderspec command line for req
func Args(req *model.RenderRequest) []string {
	args := []string{"--spec-style", req.SpecStyle}
	if req.Epochs != "" {
		args = append(args, "--epochs", req.Epochs)
	}
	if req.Requirements != "" {
		args = append(args, "--requirements", req.Requirements)
	}
	args = append(args, "--output", req.Output, req.Template)
	return args
}
