package usecase

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/a2-coder/dvmm/internal/domain"
	"github.com/a2-coder/dvmm/internal/ports"
)

// InitWorkspace scaffolds a dvmm project at a root directory.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	logger      *slog.Logger
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, opts ...Option) *InitWorkspace {
	o := buildOptions(opts)
	return &InitWorkspace{initializer: initializer, logger: o.logger}
}

func (uc *InitWorkspace) Execute(root string, force bool) error {
	if strings.TrimSpace(root) == "" {
		return &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is required"),
		}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return err
	}
	uc.logger.Info("workspace.initialized", "root", root, "force", force)
	return nil
}
