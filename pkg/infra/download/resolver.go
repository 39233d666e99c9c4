package download

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/interfaces"
	"github.com/m-mizutani/obs-service-renderspec/pkg/domain/types"
)

// ErrFileNotFound is returned when a local input file does not exist
var ErrFileNotFound = goerr.New("input file not found")

// ErrDuplicateDownload is returned when two downloads target the same file
var ErrDuplicateDownload = goerr.New("download would overwrite another input")

// config holds internal resolver configuration
type config struct {
	httpClient *http.Client
	userAgent  string
}

// Option is a functional option for Resolver configuration
type Option func(*config)

// WithHTTPClient sets the HTTP client used for downloads
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

type resolver struct {
	httpClient *http.Client
	userAgent  string
}

// NewResolver creates a Resolver downloading http(s) inputs
func NewResolver(opts ...Option) interfaces.Resolver {
	cfg := &config{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		userAgent:  "obs-service-renderspec/" + types.Version,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &resolver{
		httpClient: cfg.httpClient,
		userAgent:  cfg.userAgent,
	}
}

// IsURL reports whether ref should be downloaded instead of read locally
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// BaseName returns the file name part of a local path or URL
func BaseName(ref string) string {
	if IsURL(ref) {
		if u, err := url.Parse(ref); err == nil {
			return path.Base(u.Path)
		}
	}
	return filepath.Base(ref)
}

// Resolve returns a local path for ref. URLs are downloaded into tmpDir
// under their base name; tmpDir is created if needed and an existing file
// of that name is an error. An empty ref resolves to an empty path.
func (r *resolver) Resolve(ctx context.Context, ref, tmpDir string) (string, error) {
	if ref == "" {
		return "", nil
	}

	if IsURL(ref) {
		return r.download(ctx, ref, tmpDir)
	}

	abs, err := filepath.Abs(ref)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve absolute path", goerr.V("path", ref))
	}

	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", goerr.Wrap(ErrFileNotFound, "local input is missing", goerr.V("path", abs))
		}
		return "", goerr.Wrap(err, "failed to stat input file", goerr.V("path", abs))
	}

	return abs, nil
}

// download streams rawURL into tmpDir
func (r *resolver) download(ctx context.Context, rawURL, tmpDir string) (string, error) {
	logger := ctxlog.From(ctx)

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", goerr.Wrap(err, "invalid download URL", goerr.V("url", rawURL))
	}

	name := path.Base(u.Path)
	if name == "/" || name == "." || name == "" {
		return "", goerr.New("download URL has no file name", goerr.V("url", rawURL))
	}
	dest := filepath.Join(tmpDir, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create download request", goerr.V("url", rawURL))
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "failed to download file", goerr.V("url", rawURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", goerr.New("unexpected status code",
			goerr.V("url", rawURL),
			goerr.V("status", resp.StatusCode),
		)
	}

	if err := os.MkdirAll(tmpDir, 0700); err != nil {
		return "", goerr.Wrap(err, "failed to create download directory", goerr.V("dir", tmpDir))
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", goerr.Wrap(ErrDuplicateDownload, "download target already exists",
				goerr.V("url", rawURL),
				goerr.V("path", dest),
			)
		}
		return "", goerr.Wrap(err, "failed to create destination file", goerr.V("path", dest))
	}
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		return "", goerr.Wrap(err, "failed to write downloaded file", goerr.V("path", dest))
	}

	logger.Info("Downloaded input file",
		"url", rawURL,
		"path", dest,
		"size_bytes", written,
	)

	return dest, nil
}
