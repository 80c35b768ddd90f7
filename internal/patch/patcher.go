package patch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"paradoxpatch/internal/fileutil"
	"paradoxpatch/internal/game"
	"paradoxpatch/internal/logging"
	"paradoxpatch/internal/preflight"
)

const (
	backupExt = ".bak"
	// maxLibrarySize caps the download; the real library is well under 1 MiB.
	maxLibrarySize = 64 << 20
)

// Options configures a Patcher.
type Options struct {
	URL      string
	ProxyURL string
	Timeout  time.Duration
	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// Result describes a completed patch.
type Result struct {
	Game       string `json:"game"`
	Library    string `json:"library"`
	Backup     string `json:"backup"`
	BackedUp   bool   `json:"backed_up"`
	SourceURL  string `json:"source_url"`
	Downloaded int    `json:"downloaded_bytes"`
}

// Patcher replaces libsteam_api in game folders.
type Patcher struct {
	opts   Options
	client *http.Client
	logger *slog.Logger
}

// New constructs a Patcher.
func New(opts Options, logger *slog.Logger) *Patcher {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Patcher{
		opts:   opts,
		client: client,
		logger: logging.NewComponentLogger(logger, "patcher"),
	}
}

// Locate returns the detected game and the absolute library path for target.
func Locate(target string) (game.Profile, string, error) {
	if target == "" {
		target = "."
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return game.Unknown, "", &Error{Kind: KindGameNotRecognized, Path: target, Err: err}
	}
	profile, ok := game.Detect(abs)
	if !ok {
		return game.Unknown, "", &Error{Kind: KindGameNotRecognized, Path: abs}
	}
	return profile, filepath.Join(abs, profile.LibraryPath()), nil
}

// BackupPath returns lib with its extension replaced by .bak.
func BackupPath(lib string) string {
	return strings.TrimSuffix(lib, filepath.Ext(lib)) + backupExt
}

// Check runs the preflight checks for patching target without changing it.
func (p *Patcher) Check(ctx context.Context, target string, proxy bool) ([]preflight.Result, error) {
	_, lib, err := Locate(target)
	if err != nil {
		return nil, err
	}
	return []preflight.Result{
		preflight.CheckFileAccess("libsteam_api", lib),
		preflight.CheckDirectoryAccess("library directory", filepath.Dir(lib)),
		preflight.CheckURL(ctx, "download source", p.sourceURL(proxy)),
	}, nil
}

// Patch downloads the replacement library and installs it into target.
func (p *Patcher) Patch(ctx context.Context, target string, proxy bool) (Result, error) {
	profile, lib, err := Locate(target)
	if err != nil {
		return Result{}, err
	}
	logger := p.logger.With(logging.String(logging.FieldGame, profile.String()))

	info, err := os.Stat(lib)
	if err != nil || !info.Mode().IsRegular() {
		if err == nil {
			err = errors.New("not a regular file")
		}
		return Result{}, &Error{Kind: KindLibNotExists, Path: lib, Err: err}
	}
	if check := preflight.CheckDirectoryAccess("library directory", filepath.Dir(lib)); !check.Passed {
		return Result{}, &Error{Kind: KindPatchFailed, Path: lib, Err: errors.New(check.Detail)}
	}

	source := p.sourceURL(proxy)
	logger.Info("downloading libsteam_api", logging.String("url", source))
	data, err := p.download(ctx, source)
	if err != nil {
		return Result{}, &Error{Kind: KindDownloadFailed, Path: source, Err: err}
	}

	result := Result{
		Game:       profile.String(),
		Library:    lib,
		Backup:     BackupPath(lib),
		SourceURL:  source,
		Downloaded: len(data),
	}

	exists, err := fileutil.Exists(result.Backup)
	if err != nil {
		return Result{}, &Error{Kind: KindBackupFailed, Path: result.Backup, Err: err}
	}
	if exists {
		logging.WarnWithContext(logger, "backup already exists, skipping", "patch_backup_exists",
			logging.Path(result.Backup),
			logging.String(logging.FieldErrorHint, "delete the .bak file to take a fresh backup"),
			logging.String(logging.FieldImpact, "existing backup is kept"),
		)
	} else {
		if err := os.Rename(lib, result.Backup); err != nil {
			return Result{}, &Error{Kind: KindBackupFailed, Path: lib, Err: err}
		}
		result.BackedUp = true
		logger.Info("backed up libsteam_api", logging.Path(result.Backup))
	}

	if err := fileutil.WriteFileAtomic(lib, data, info.Mode().Perm()); err != nil {
		return Result{}, &Error{Kind: KindPatchFailed, Path: lib, Err: err}
	}
	logger.Info("patched libsteam_api", logging.Path(lib), logging.Int("bytes", len(data)))
	return result, nil
}

func (p *Patcher) sourceURL(proxy bool) string {
	if proxy && p.opts.ProxyURL != "" {
		return p.opts.ProxyURL
	}
	return p.opts.URL
}

func (p *Patcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLibrarySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("empty response body")
	}
	if len(data) > maxLibrarySize {
		return nil, fmt.Errorf("response exceeds %d bytes", maxLibrarySize)
	}
	return data, nil
}
