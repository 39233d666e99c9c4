package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/obs-service-renderspec/pkg/cli/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "renderspec.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[changelog]
provider = "gh,openstack,nova"
email = "packager@example.com"

[github]
token = "ghp_secret"
api_url = "https://github.example.com/api/v3/"

[tools]
renderspec = "/opt/renderspec/bin/renderspec"
`)

	cfg, err := config.LoadFile(path)
	gt.NoError(t, err)
	gt.Equal(t, cfg.Changelog.Provider, "gh,openstack,nova")
	gt.Equal(t, cfg.Changelog.Email, "packager@example.com")
	gt.Equal(t, cfg.GitHub.Token, "ghp_secret")
	gt.Equal(t, cfg.GitHub.APIURL, "https://github.example.com/api/v3/")
	gt.Equal(t, cfg.Tools.Renderspec, "/opt/renderspec/bin/renderspec")
	gt.Equal(t, cfg.Tools.Osc, "")
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, `
[changelog]
mail = "typo@example.com"
`)

	_, err := config.LoadFile(path)
	gt.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err)
}

func TestFile_Apply(t *testing.T) {
	var f config.File
	f.Changelog.Email = "file@example.com"
	f.Changelog.Provider = "gh,file,repo"
	f.GitHub.Token = "file-token"
	f.Tools.Osc = "/usr/local/bin/osc"

	render := &config.Render{ChangelogEmail: "flag@example.com"}
	github := &config.GitHub{}
	tools := &config.Tools{RPMSpec: "rpmspec", Renderspec: "renderspec", Osc: "osc"}

	set := map[string]bool{"changelog-email": true}
	f.Apply(func(name string) bool { return set[name] }, render, github, tools)

	// Explicit flags win over the file
	gt.Equal(t, render.ChangelogEmail, "flag@example.com")
	gt.Equal(t, render.ChangelogProvider, "gh,file,repo")
	gt.Equal(t, github.Token, "file-token")
	gt.Equal(t, github.APIURL, "")
	gt.Equal(t, tools.Osc, "/usr/local/bin/osc")
	// Empty file values keep flag defaults
	gt.Equal(t, tools.RPMSpec, "rpmspec")
}
