package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestProject creates a project directory with a descriptor named name
// and returns its path.
func SetupTestProject(t *testing.T, name string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("failed to create project directory: %v", err)
	}

	content := "project_name = \"" + name + "\"\nversion = \"0.1.0\"\n"
	if err := os.WriteFile(filepath.Join(dir, "project.toml"), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write project.toml: %v", err)
	}
	return dir
}
