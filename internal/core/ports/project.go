package ports

import "context"

// ProjectService defines compose-project level operations. Each operation
// fans out over the project's member containers; a partial failure is
// reported as an error naming the containers that did not comply.
type ProjectService interface {
	StartProject(ctx context.Context, project string) error
	StopProject(ctx context.Context, project string) error
	RestartProject(ctx context.Context, project string) error
	RemoveProject(ctx context.Context, project string) error
}
