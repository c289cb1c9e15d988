package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/ports"
)

const templatesRoot = "templates"

// Initializer scaffolds a dvmm project: dvmm.yaml, sample fixtures for every
// entity, the reports dir and a .gitignore rule for local state.
type Initializer struct {
	paths domain.PathsConfig
}

func NewInitializer() *Initializer {
	return &Initializer{paths: domain.DefaultConfig().Paths}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init is idempotent. Existing files are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, d := range []string{i.paths.FixturesDir, i.paths.ReportsDir} {
		dir := filepath.Join(root, filepath.FromSlash(d))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return initError(dir, err)
		}
	}

	if state := stateDir(i.paths.ReportsDir); state != "" {
		if err := ensureIgnored(filepath.Join(root, ".gitignore"), state); err != nil {
			return initError(filepath.Join(root, ".gitignore"), err)
		}
	}

	return fs.WalkDir(templatesFS, templatesRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel := strings.TrimPrefix(p, templatesRoot+"/")
		return writeTemplate(p, filepath.Join(root, filepath.FromSlash(rel)), force)
	})
}

func writeTemplate(src, dst string, force bool) error {
	if !force && exists(dst) {
		return nil
	}

	b, err := fs.ReadFile(templatesFS, src)
	if err != nil {
		return initError(src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return initError(dst, err)
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return initError(dst, err)
	}
	return nil
}

// stateDir is the top-level directory holding dvmm's local state, derived
// from the reports dir (".dvmm/reports" gives ".dvmm"). A reports dir outside
// the project yields "".
func stateDir(reportsDir string) string {
	clean := path.Clean(filepath.ToSlash(reportsDir))
	if clean == "." || path.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return ""
	}
	top, _, _ := strings.Cut(clean, "/")
	return top
}

// ensureIgnored adds dir to the .gitignore at p unless an equivalent rule
// ("dir", "dir/", "/dir" or "/dir/") is already there.
func ensureIgnored(p, dir string) error {
	existing, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	for _, line := range strings.Split(string(existing), "\n") {
		if strings.Trim(strings.TrimSpace(line), "/") == dir {
			return nil
		}
	}

	var out strings.Builder
	out.Write(existing)
	if len(existing) > 0 {
		if existing[len(existing)-1] != '\n' {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	out.WriteString("# dvmm local state (reports, logs)\n")
	out.WriteString(dir + "/\n")

	return os.WriteFile(p, []byte(out.String()), 0o644)
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func initError(path string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
