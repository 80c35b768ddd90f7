package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupHome points HOME at a temp dir and clears environment overrides so
// tests never see the developer's config.
func setupHome(t *testing.T) string {
	t.Helper()
	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	for _, key := range []string{"PARADOX_PATCH_URL", "PARADOX_PATCH_PROXY_URL", "PARADOX_PATCH_PROXY", "PARADOX_PATCH_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	testChdir(t, home)
	return home
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// newGameFolder creates <tmp>/<name>/dlc with one definition per id.
func newGameFolder(t *testing.T, name string, ids ...int) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Join(root, "dlc"), 0o755); err != nil {
		t.Fatalf("mkdir dlc: %v", err)
	}
	for _, id := range ids {
		path := filepath.Join(root, "dlc", fmt.Sprintf("%d_pack", id), fmt.Sprintf("%d.dlc", id))
		writeFile(t, path, fmt.Sprintf("name = \"Pack %d\"\nsteam_id = \"%d\"\n", id, id))
	}
	return root
}

// writeConfig writes a config pointing the patcher at baseURL.
func writeConfig(t *testing.T, dir, baseURL string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf("[patch]\nurl = %q\nproxy_url = %q\ntimeout_seconds = 5\n",
		baseURL+"/lib.dylib", baseURL+"/mirror/lib.dylib")
	writeFile(t, path, content)
	return path
}

func newLibraryServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/lib.dylib":
			_, _ = w.Write([]byte("goldberg"))
		case "/mirror/lib.dylib":
			_, _ = w.Write([]byte("goldberg-mirror"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}
