package usecase

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
	"github.com/m-mizutani/obs-service-renderspec/pkg/utils/file"
)

var archiveSuffixes = []string{
	".tar.gz",
	".tar.bz2",
	".tar.xz",
	".tgz",
	".zip",
}

// archiveSwap is an old source archive and its replacement for a new version
type archiveSwap struct {
	Old string
	New string
}

// findArchiveSwaps lists archives in dir named "<name>-<from><suffix>" and
// their "<name>-<to><suffix>" counterparts
func findArchiveSwaps(dir string, from, to model.Version) ([]archiveSwap, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read package directory", goerr.V("dir", dir))
	}

	var swaps []archiveSwap
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()

		for _, suffix := range archiveSuffixes {
			oldTail := "-" + from.String() + suffix
			if !strings.HasSuffix(name, oldTail) {
				continue
			}
			prefix := strings.TrimSuffix(name, oldTail)
			if prefix == "" {
				break
			}
			swaps = append(swaps, archiveSwap{
				Old: name,
				New: prefix + "-" + to.String() + suffix,
			})
			break
		}
	}

	sort.Slice(swaps, func(i, j int) bool { return swaps[i].Old < swaps[j].Old })
	return swaps, nil
}

// swapArchives replaces tracked archives of the old version with the new
// ones. Nothing happens outside an osc checkout. It returns the names of
// the newly added archives.
func (uc *renderUseCase) swapArchives(ctx context.Context, dir string, from, to model.Version) ([]string, error) {
	logger := ctxlog.From(ctx)

	if !uc.vcs.IsCheckout(dir) {
		logger.Debug("Not an osc checkout, skipping archive update", "dir", dir)
		return nil, nil
	}

	swaps, err := findArchiveSwaps(dir, from, to)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, swap := range swaps {
		if !file.Exists(filepath.Join(dir, swap.New)) {
			logger.Warn("New source archive not found, keeping old one",
				"old", swap.Old,
				"new", swap.New,
			)
			continue
		}

		if err := uc.vcs.Add(ctx, dir, swap.New); err != nil {
			return added, goerr.Wrap(err, "failed to track new source archive", goerr.V("archive", swap.New))
		}
		if err := uc.vcs.Remove(ctx, dir, swap.Old); err != nil {
			return added, goerr.Wrap(err, "failed to untrack old source archive", goerr.V("archive", swap.Old))
		}
		added = append(added, swap.New)
	}

	return added, nil
}
