package ports

import (
	"context"

	"github.com/flycatch/DockerManager/internal/core/domain"
)

// SnapshotProvider fetches the full world state on each poll tick.
// Failures are reported as *domain.FetchError; the caller retains its
// previous snapshot in that case.
type SnapshotProvider interface {
	GetProjectsWithContainers(ctx context.Context) (domain.WorldSnapshot, error)
}
