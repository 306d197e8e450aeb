package ports

import "github.com/Joshrizika/Chat-Pilot/internal/domain"

type WorkspaceInitializer interface {
	Init(target domain.WorkspaceTarget, force bool) error
}
