package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/interfaces"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/download"
	"github.com/m-mizutani/obs-service-renderspec/pkg/utils/file"
)

// ErrMissingInputTemplate is returned when no input template is given
var ErrMissingInputTemplate = goerr.New("input template is required")

// ErrMissingOutput is returned when the renderer succeeds without producing a versioned spec file
var ErrMissingOutput = goerr.New("rendered spec file is missing")

// DefaultSpecStyle is the renderer style used when none is given
const DefaultSpecStyle = "suse"

type renderUseCase struct {
	resolver  interfaces.Resolver
	querier   interfaces.VersionQuerier
	renderer  interfaces.Renderer
	vcs       interfaces.VCSClient
	changelog interfaces.ChangelogUseCase
	now       func() time.Time
}

// RenderOption is a functional option for the render use case
type RenderOption func(*renderUseCase)

// WithClock replaces the time source used for .changes headers
func WithClock(now func() time.Time) RenderOption {
	return func(uc *renderUseCase) {
		uc.now = now
	}
}

// NewRender creates a new instance of RenderUseCase
func NewRender(
	resolver interfaces.Resolver,
	querier interfaces.VersionQuerier,
	renderer interfaces.Renderer,
	vcs interfaces.VCSClient,
	changelog interfaces.ChangelogUseCase,
	opts ...RenderOption,
) interfaces.RenderUseCase {
	uc := &renderUseCase{
		resolver:  resolver,
		querier:   querier,
		renderer:  renderer,
		vcs:       vcs,
		changelog: changelog,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run renders the spec file and, on a version change, updates the .changes
// file and the tracked source archives. The temporary download directory is
// removed whatever the outcome.
func (uc *renderUseCase) Run(ctx context.Context, opts *model.RenderOptions) (*model.RenderResult, error) {
	logger := ctxlog.From(ctx)

	if opts.InputTemplate == "" {
		return nil, ErrMissingInputTemplate
	}

	provider, err := model.ParseChangelogProvider(opts.ChangelogProvider)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid changelog provider")
	}

	workDir := opts.WorkDir
	if workDir == "" {
		if workDir, err = os.Getwd(); err != nil {
			return nil, goerr.Wrap(err, "failed to get working directory")
		}
	}

	tmpDir, err := os.MkdirTemp("", "obs-service-renderspec-*")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temporary directory")
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			logger.Warn("Failed to remove temporary directory", "temp_dir", tmpDir, "error", err)
		}
	}()
	logger.Debug("Created temporary directory", "temp_dir", tmpDir)

	req, err := uc.resolveInputs(ctx, opts, tmpDir)
	if err != nil {
		return nil, err
	}
	req.WorkDir = workDir
	req.Output = OutputPath(workDir, opts.OutputName, opts.InputTemplate)

	result := &model.RenderResult{
		OutputPath:  req.Output,
		ChangesPath: ChangesPath(req.Output),
	}

	if result.OldVersion, err = uc.querier.Version(ctx, req.Output); err != nil {
		return nil, goerr.Wrap(err, "failed to query version before rendering")
	}

	if err := uc.renderer.Render(ctx, req); err != nil {
		return nil, err
	}

	if result.NewVersion, err = uc.querier.Version(ctx, req.Output); err != nil {
		return nil, goerr.Wrap(err, "failed to query version after rendering")
	}
	if !result.NewVersion.Defined() {
		return nil, goerr.Wrap(ErrMissingOutput, "renderer exited without output", goerr.V("output", req.Output))
	}

	logger.Info("Rendered spec file",
		"output", result.OutputPath,
		"old_version", result.OldVersion.String(),
		"new_version", result.NewVersion.String(),
	)

	if !result.VersionChanged() {
		return result, nil
	}

	if file.Exists(result.ChangesPath) {
		commits, err := uc.changelog.Fetch(ctx, provider, result.OldVersion, result.NewVersion)
		if err != nil {
			return nil, err
		}

		entry := FormatChanges(BuildChangelog(result.NewVersion, commits), opts.ChangelogEmail, uc.now())
		if err := file.Prepend(result.ChangesPath, entry); err != nil {
			return nil, goerr.Wrap(err, "failed to update changes file")
		}
		result.ChangesUpdated = true
		logger.Info("Updated changes file", "path", result.ChangesPath, "entries", len(commits))
	} else {
		logger.Debug("No changes file, skipping changelog update", "path", result.ChangesPath)
	}

	swapped, err := uc.swapArchives(ctx, workDir, result.OldVersion, result.NewVersion)
	if err != nil {
		return nil, err
	}
	result.SwappedArchives = swapped

	return result, nil
}

// resolveInputs makes every input available as a local file. Each input
// downloads into its own subdirectory of tmpDir so equal base names do not collide.
func (uc *renderUseCase) resolveInputs(ctx context.Context, opts *model.RenderOptions, tmpDir string) (*model.RenderRequest, error) {
	template, err := uc.resolver.Resolve(ctx, opts.InputTemplate, filepath.Join(tmpDir, "template"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve input template")
	}

	epochs, err := uc.resolver.Resolve(ctx, opts.Epochs, filepath.Join(tmpDir, "epochs"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve epochs file")
	}

	requirements, err := uc.resolver.Resolve(ctx, opts.Requirements, filepath.Join(tmpDir, "requirements"))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve requirements file")
	}

	specStyle := opts.SpecStyle
	if specStyle == "" {
		specStyle = DefaultSpecStyle
	}

	return &model.RenderRequest{
		Template:     template,
		SpecStyle:    specStyle,
		Epochs:       epochs,
		Requirements: requirements,
	}, nil
}

// OutputPath returns where the spec file is written. Without an explicit
// name the template base name minus a ".j2" suffix is used.
func OutputPath(workDir, outputName, template string) string {
	name := outputName
	if name == "" {
		name = strings.TrimSuffix(download.BaseName(template), ".j2")
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(workDir, name)
}

// ChangesPath returns the .changes companion of a spec file
func ChangesPath(specPath string) string {
	return strings.TrimSuffix(specPath, ".spec") + ".changes"
}
