package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/cli/config"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/interfaces"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/download"
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/osc"
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/renderspec"
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/rpm"
	"github.com/m-mizutani/obs-service-renderspec/pkg/usecase"
)

func runRender(ctx context.Context, w io.Writer, renderCfg *config.Render, githubCfg *config.GitHub, toolsCfg *config.Tools) error {
	logger := ctxlog.From(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return goerr.Wrap(err, "failed to get working directory")
	}

	logger.Debug("Starting render",
		"work_dir", workDir,
		"render", renderCfg,
		"github", githubCfg,
		"tools", toolsCfg,
	)

	// Only a gh provider needs API access
	var githubClient interfaces.GitHubClient
	provider, err := model.ParseChangelogProvider(renderCfg.ChangelogProvider)
	if err != nil {
		return goerr.Wrap(err, "invalid changelog provider")
	}
	if provider.Kind == model.ChangelogProviderGitHub {
		if githubClient, err = githubCfg.NewClient(); err != nil {
			return err
		}
	}

	runner := toolsCfg.Runner()
	renderUC := usecase.NewRender(
		download.NewResolver(),
		rpm.NewQuerier(runner),
		renderspec.NewRenderer(runner),
		osc.NewClient(runner),
		usecase.NewChangelog(githubClient),
	)

	result, err := renderUC.Run(ctx, renderCfg.Options(workDir))
	if err != nil {
		return err
	}

	printSummary(w, result)
	return nil
}

func printSummary(w io.Writer, result *model.RenderResult) {
	name := filepath.Base(result.OutputPath)

	switch {
	case !result.OldVersion.Defined():
		color.New(color.FgGreen).Fprintf(w, "%s: rendered version %s\n", name, result.NewVersion)
	case result.VersionChanged():
		color.New(color.FgGreen, color.Bold).Fprintf(w, "%s: %s -> %s\n", name, result.OldVersion, result.NewVersion)
	default:
		fmt.Fprintf(w, "%s: version %s unchanged\n", name, result.NewVersion)
	}

	if result.ChangesUpdated {
		fmt.Fprintf(w, "  updated %s\n", filepath.Base(result.ChangesPath))
	}
	for _, archive := range result.SwappedArchives {
		color.New(color.FgCyan).Fprintf(w, "  tracked %s\n", archive)
	}
}
