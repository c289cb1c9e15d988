package ports

import "github.com/a2-coder/dvmm/internal/domain"

// WorkspaceLocator finds a dvmm project root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
