package renderspec_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/renderspec"
)

type mockRunner struct {
	err  error
	dir  string
	name string
	args []string
}

func (m *mockRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	m.dir, m.name, m.args = dir, name, args
	return nil, m.err
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.RenderRequest
		expected []string
	}{
		{
			name: "template only",
			req: &model.RenderRequest{
				Template:  "/tmp/x/python-foo.spec.j2",
				Output:    "/pkg/python-foo.spec",
				SpecStyle: "suse",
			},
			expected: []string{"--spec-style", "suse", "--output", "/pkg/python-foo.spec", "/tmp/x/python-foo.spec.j2"},
		},
		{
			name: "with epochs and requirements",
			req: &model.RenderRequest{
				Template:     "foo.spec.j2",
				Output:       "foo.spec",
				SpecStyle:    "fedora",
				Epochs:       "epochs.yaml",
				Requirements: "global-requirements.txt",
			},
			expected: []string{
				"--spec-style", "fedora",
				"--epochs", "epochs.yaml",
				"--requirements", "global-requirements.txt",
				"--output", "foo.spec",
				"foo.spec.j2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, renderspec.Args(tt.req), tt.expected)
		})
	}
}

func TestRenderer_Render(t *testing.T) {
	runner := &mockRunner{}
	r := renderspec.NewRenderer(runner)

	err := r.Render(context.Background(), &model.RenderRequest{
		Template:  "foo.spec.j2",
		Output:    "foo.spec",
		SpecStyle: "suse",
		WorkDir:   "/pkg",
	})
	gt.NoError(t, err)
	gt.Equal(t, runner.name, renderspec.Tool)
	gt.Equal(t, runner.dir, "/pkg")
	gt.Number(t, len(runner.args)).Equal(5)
}

func TestRenderer_Render_Failure(t *testing.T) {
	runner := &mockRunner{err: errors.New("exit status 2")}
	r := renderspec.NewRenderer(runner)

	err := r.Render(context.Background(), &model.RenderRequest{
		Template:  "foo.spec.j2",
		Output:    "foo.spec",
		SpecStyle: "suse",
	})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to render spec file")
}
