package ports

import (
	"context"
	"io"

	"github.com/flycatch/DockerManager/internal/core/domain"
)

// ContainerService defines the per-container control operations. This
// interface allows us to switch between Docker, Podman, or Kubernetes
// without changing the UI or the reconciliation core.
//
// Operations are one-shot and fire-and-forget from the UI's point of view:
// their effect becomes visible on the next poll tick, callers never mutate
// the held snapshot directly.
type ContainerService interface {
	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string) error
	RestartContainer(ctx context.Context, id string) error
	RemoveContainer(ctx context.Context, id string, force bool) error
	ContainerLogs(ctx context.Context, id string, tail int) (io.ReadCloser, error)
	InspectContainer(ctx context.Context, id string) (domain.ContainerDetails, error)
}
