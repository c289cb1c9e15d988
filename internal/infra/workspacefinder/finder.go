package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/infra/config"
	"github.com/a2-coder/dvmm/internal/ports"
)

const opFind = "workspacefinder.find"

// Finder walks up from a directory (or a file's directory) to the nearest
// dvmm project, i.e. the first ancestor holding a regular dvmm.yaml file.
type Finder struct {
	configFile string
	stopAt     string
}

type Option func(*Finder)

// WithStopAt ends the search after dir instead of at the filesystem root.
func WithStopAt(dir string) Option {
	return func(f *Finder) { f.stopAt = filepath.Clean(dir) }
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{configFile: config.FileName}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(start string) (string, error) {
	if start == "" {
		return "", &domain.OpError{Op: opFind, Kind: domain.KindInvalidConfig, Err: errors.New("start directory is empty")}
	}

	dir, err := searchStart(start)
	if err != nil {
		return "", &domain.OpError{Op: opFind, Kind: domain.KindExecution, Path: start, Err: err}
	}

	for _, cand := range ancestors(dir, f.stopAt) {
		if isProjectFile(filepath.Join(cand, f.configFile)) {
			return cand, nil
		}
	}
	return "", &domain.OpError{Op: opFind, Kind: domain.KindNotFound, Path: dir, Err: domain.ErrNotFound}
}

func searchStart(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return filepath.Dir(abs), nil
	}
	return filepath.Clean(abs), nil
}

// ancestors lists dir and its parents, nearest first, ending at stopAt when it
// is one of them.
func ancestors(dir, stopAt string) []string {
	var out []string
	for {
		out = append(out, dir)
		parent := filepath.Dir(dir)
		if dir == stopAt || parent == dir {
			return out
		}
		dir = parent
	}
}

func isProjectFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
