package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/a2-coder/dvmm/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, "dvmm.yaml"), []byte("dvmm:\n  money:\n    currency: USD\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_FromFilePath(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "dvmm.yaml"), []byte("dvmm: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fixture := filepath.Join(root, "todos.json")
	if err := os.WriteFile(fixture, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := NewFinder().FindRoot(fixture)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	start := filepath.Join(tmp, "a", "b")
	_ = os.MkdirAll(start, 0o755)

	_, err := NewFinder(WithStopAt(tmp)).FindRoot(start)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_StopsAtBoundary(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "dvmm.yaml"), []byte("dvmm: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	inner := filepath.Join(tmp, "inner")
	start := filepath.Join(inner, "x")
	_ = os.MkdirAll(start, 0o755)

	if _, err := NewFinder(WithStopAt(inner)).FindRoot(start); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected search to stop at %s, got: %v", inner, err)
	}

	got, err := NewFinder(WithStopAt(tmp)).FindRoot(start)
	if err != nil || got != tmp {
		t.Fatalf("expected root=%s, got=%s err=%v", tmp, got, err)
	}
}

func TestFindRoot_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	tmp := t.TempDir()
	start := filepath.Join(tmp, "proj")
	if err := os.MkdirAll(filepath.Join(start, "dvmm.yaml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := NewFinder(WithStopAt(tmp)).FindRoot(start)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_EmptyStart(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
