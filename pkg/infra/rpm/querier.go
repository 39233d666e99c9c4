package rpm

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/interfaces"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
)

// Tool is the name of the spec metadata query binary
const Tool = "rpmspec"

type querier struct {
	runner interfaces.Runner
}

// NewQuerier creates a VersionQuerier backed by rpmspec
func NewQuerier(runner interfaces.Runner) interfaces.VersionQuerier {
	return &querier{runner: runner}
}

// Version returns the version declared by the spec file at path
func (q *querier) Version(ctx context.Context, path string) (model.Version, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to stat spec file", goerr.V("path", path))
	}

	out, err := q.runner.Run(ctx, filepath.Dir(path), Tool, "-q", "--srpm", "--qf", "%{VERSION}\n", path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to query spec version", goerr.V("path", path))
	}

	v, err := ParseVersion(out)
	if err != nil {
		return "", goerr.Wrap(err, "unexpected spec query output", goerr.V("path", path))
	}
	return v, nil
}

// ParseVersion extracts the single version from query output. Blank lines
// are ignored and repeated values count once.
func ParseVersion(out []byte) (model.Version, error) {
	var versions []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		versions = append(versions, line)
	}
	if err := scanner.Err(); err != nil {
		return "", goerr.Wrap(err, "failed to read query output")
	}

	switch len(versions) {
	case 0:
		return "", goerr.New("no version reported")
	case 1:
		return model.Version(versions[0]), nil
	default:
		return "", goerr.New("multiple versions reported", goerr.V("versions", versions))
	}
}
