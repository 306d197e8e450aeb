package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte("fetchcontacts:\n  source:\n    kind: auto\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := NewFinder()
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestUserConfigRoot(t *testing.T) {
	userDir := t.TempDir()
	userRoot := filepath.Join(userDir, "fetchcontacts")
	if err := os.MkdirAll(userRoot, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	f := NewFinder()
	f.UserConfigDir = func() (string, error) { return userDir, nil }

	if _, found := f.UserConfigRoot(); found {
		t.Fatalf("expected no user config before the file exists")
	}

	if err := os.WriteFile(filepath.Join(userRoot, ConfigFile), []byte("fetchcontacts: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, found := f.UserConfigRoot()
	if !found || got != userRoot {
		t.Fatalf("expected user root=%s, got=%s found=%v", userRoot, got, found)
	}
}
