package model

// RenderOptions holds the inputs of a single render run
type RenderOptions struct {
	InputTemplate     string // Local path or http(s) URL of the template
	OutputName        string // Spec file name; derived from the template when empty
	SpecStyle         string // Renderer style, e.g. "suse" or "fedora"
	Epochs            string // Optional local path or URL of the epochs file
	Requirements      string // Optional local path or URL of the requirements file
	ChangelogProvider string // Provider token, e.g. "gh,owner,repo"
	ChangelogEmail    string // Contact put in the .changes header
	WorkDir           string // Package checkout directory
}

// RenderRequest is what the external renderer is invoked with
type RenderRequest struct {
	Template     string
	Output       string
	SpecStyle    string
	Epochs       string
	Requirements string
	WorkDir      string
}

// RenderResult represents the outcome of a render run
type RenderResult struct {
	OutputPath      string
	ChangesPath     string
	OldVersion      Version
	NewVersion      Version
	ChangesUpdated  bool
	SwappedArchives []string
}

// VersionChanged reports whether an existing spec file got a new version
func (r *RenderResult) VersionChanged() bool {
	return r.OldVersion.Defined() && r.OldVersion != r.NewVersion
}
