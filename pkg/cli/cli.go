package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/cli/config"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		fileCfg   config.ConfigPath
		renderCfg config.Render
		githubCfg config.GitHub
		toolsCfg  config.Tools
		logger    *slog.Logger
	)

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, fileCfg.Flags()...)
	flags = append(flags, renderCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, toolsCfg.Flags()...)

	app := &cli.Command{
		Name:    "obs-service-renderspec",
		Usage:   "Render RPM spec files from renderspec templates",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = logger.With("run_id", uuid.NewString())

			if fileCfg.Path != "" {
				file, err := config.LoadFile(fileCfg.Path)
				if err != nil {
					return nil, err
				}
				file.Apply(c.IsSet, &renderCfg, &githubCfg, &toolsCfg)
				logger.Debug("Loaded config file", "path", fileCfg.Path, "config", file)
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() > 0 {
				return goerr.New("unexpected arguments", goerr.V("args", c.Args().Slice()))
			}
			return runRender(ctx, c.Root().Writer, &renderCfg, &githubCfg, &toolsCfg)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
