package dlc_test

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates path (and its parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// addDLC creates <dir>/<folder>/<id>.dlc with a name and steam_id.
func addDLC(t *testing.T, dir, folder, id, name string) string {
	t.Helper()
	path := filepath.Join(dir, folder, id+".dlc")
	writeFile(t, path, "name = \""+name+"\"\nsteam_id = \""+id+"\"\n")
	return path
}

// newGame returns a game folder named name with an empty dlc directory.
func newGame(t *testing.T, name string) (root, dlcDir string) {
	t.Helper()
	root = filepath.Join(t.TempDir(), name)
	dlcDir = filepath.Join(root, "dlc")
	if err := os.MkdirAll(dlcDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return root, canonical(t, dlcDir)
}

func canonical(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("eval symlinks %s: %v", path, err)
	}
	return resolved
}
