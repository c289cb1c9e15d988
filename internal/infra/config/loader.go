package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/a2-coder/dvmm/internal/domain"
)

// FileName is the project configuration file looked up in the workspace root.
const FileName = "dvmm.yaml"

type Loader struct {
	environ map[string]string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

// WithEnviron replaces the process environment, mostly for tests.
func WithEnviron(environ map[string]string) Option {
	return func(l *Loader) { l.environ = environ }
}

// Load reads dvmm.yaml from root (if present) over the defaults, then applies
// DVMM_* overrides. An empty root skips the file.
func (l *Loader) Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if root != "" {
		fileCfg, err := LoadFile(filepath.Join(root, FileName), cfg)
		if err != nil && !domain.IsKind(err, domain.KindNotFound) {
			return cfg, err
		}
		if err == nil {
			cfg = fileCfg
		}
	}

	return ApplyEnv(cfg, l.environ)
}

// LoadFile reads one config file and maps it onto base.
func LoadFile(path string, base domain.Config) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return base, &domain.OpError{
			Op:   "config.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return base, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, y, base)
}
