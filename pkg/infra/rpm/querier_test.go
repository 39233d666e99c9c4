package rpm_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/model"
	"github.com/m-mizutani/obs-service-renderspec/pkg/infra/rpm"
)

type runCall struct {
	Dir  string
	Name string
	Args []string
}

type mockRunner struct {
	out   []byte
	err   error
	calls []runCall
}

func (m *mockRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, runCall{Dir: dir, Name: name, Args: args})
	return m.out, m.err
}

func TestQuerier_Version_MissingFile(t *testing.T) {
	runner := &mockRunner{}
	q := rpm.NewQuerier(runner)

	v, err := q.Version(context.Background(), filepath.Join(t.TempDir(), "python-foo.spec"))
	gt.NoError(t, err)
	gt.False(t, v.Defined())
	gt.Number(t, len(runner.calls)).Equal(0)
}

func TestQuerier_Version_Success(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "python-foo.spec")
	gt.NoError(t, os.WriteFile(specPath, []byte("Name: python-foo\n"), 0644))

	runner := &mockRunner{out: []byte("1.2.3\n1.2.3\n\n")}
	q := rpm.NewQuerier(runner)

	v, err := q.Version(context.Background(), specPath)
	gt.NoError(t, err)
	gt.Equal(t, v, model.Version("1.2.3"))

	gt.Number(t, len(runner.calls)).Equal(1)
	gt.Equal(t, runner.calls[0].Name, rpm.Tool)
	gt.Equal(t, runner.calls[0].Dir, dir)
	gt.Equal(t, runner.calls[0].Args[len(runner.calls[0].Args)-1], specPath)
}

func TestQuerier_Version_ToolFailure(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "python-foo.spec")
	gt.NoError(t, os.WriteFile(specPath, []byte("broken"), 0644))

	runner := &mockRunner{err: errors.New("exit status 1")}
	q := rpm.NewQuerier(runner)

	_, err := q.Version(context.Background(), specPath)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to query spec version")
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name     string
		out      string
		expected model.Version
		wantErr  bool
	}{
		{name: "single", out: "2.0.1\n", expected: "2.0.1"},
		{name: "subpackages repeat version", out: "2.0.1\n2.0.1\n2.0.1\n", expected: "2.0.1"},
		{name: "blank lines ignored", out: "\n  \n2.0.1\n\n", expected: "2.0.1"},
		{name: "no output", out: "", wantErr: true},
		{name: "only blanks", out: "\n\n", wantErr: true},
		{name: "ambiguous", out: "2.0.1\n3.0.0\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := rpm.ParseVersion([]byte(tt.out))
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, v, tt.expected)
		})
	}
}
