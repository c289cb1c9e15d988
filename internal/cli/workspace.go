package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/a2-coder/dvmm/internal/catalog"
	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/format"
	"github.com/a2-coder/dvmm/internal/infra/config"
	"github.com/a2-coder/dvmm/internal/infra/logger"
	"github.com/a2-coder/dvmm/internal/infra/recordfile"
	"github.com/a2-coder/dvmm/internal/infra/reportstore"
	"github.com/a2-coder/dvmm/internal/infra/workspacefinder"
	"github.com/a2-coder/dvmm/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	source  ports.RecordSource
	catalog ports.ConverterCatalog
	store   ports.ReportStore

	closeLog func() error
}

// loadWorkspace resolves the project root, loads its configuration and wires
// the adapters. Outside a project the working directory and the defaults are used.
func loadWorkspace(g *globalFlags, strictFlag bool) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(g.workspace, workspacefinder.NewFinder())
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewLoader().Load(root)
	if err != nil {
		return nil, err
	}
	if g.debug {
		cfg.Log.Debug = true
	}
	if strings.TrimSpace(g.logFile) != "" {
		cfg.Log.File = g.logFile
	}
	if strictFlag {
		cfg.Input.Strict = true
	}

	closeLog, err := logger.Setup(logger.Config{
		File:  resolvePath(root, cfg.Log.File),
		Debug: cfg.Log.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	if cfg.Log.File != "" {
		if err := logger.IsReady(); err != nil {
			_ = closeLog()
			return nil, fmt.Errorf("setup logger: %w", err)
		}
	}

	money, err := format.NewMoney(cfg.Money.Currency)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	logger.L().Debug("workspace.loaded",
		"root", root,
		"currency", money.Code(),
		"strict", cfg.Input.Strict,
		"log_file", logger.Path(),
		"log_started", logger.InitTime(),
	)

	return &workspaceCtx{
		root:     root,
		cfg:      cfg,
		source:   recordfile.NewLoader(),
		catalog:  catalog.Default(money, cfg.Input.Strict),
		store:    reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true)),
		closeLog: closeLog,
	}, nil
}

func (ws *workspaceCtx) Close() {
	if ws.closeLog != nil {
		_ = ws.closeLog()
	}
}

func resolveWorkspaceRoot(workspaceFlag string, locator ports.WorkspaceLocator) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, nil
		}
		return "", err
	}
	return root, nil
}

// resolveRecordPath maps the --file argument to a readable path: "-" is stdin,
// existing paths are used as given, and bare names are looked up in the
// fixtures dir.
func resolveRecordPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("input is required (use --file or -f)")
	}
	if in == recordfile.StdinPath || filepath.IsAbs(in) {
		return in, nil
	}
	if fileExists(in) {
		return filepath.Abs(in)
	}

	if !looksLikePath(in) {
		fixtures := filepath.Join(ws.root, ws.cfg.Paths.FixturesDir)
		if p := filepath.Join(fixtures, in); fileExists(p) {
			return p, nil
		}
		if !hasRecordExt(in) {
			for _, ext := range []string{".json", ".yaml", ".yml"} {
				if p := filepath.Join(fixtures, in+ext); fileExists(p) {
					return p, nil
				}
			}
		}
	}

	return filepath.Join(ws.root, in), nil
}

func resolvePath(root, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasRecordExt(s string) bool {
	switch strings.ToLower(filepath.Ext(s)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
