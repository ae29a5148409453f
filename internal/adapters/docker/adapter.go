package docker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/flycatch/DockerManager/internal/core/domain"
)

// composeProjectLabel is set by docker compose on every container it starts.
const composeProjectLabel = "com.docker.compose.project"

// Adapter implements ports.SnapshotProvider, ports.ContainerService and
// ports.ProjectService against the Docker engine SDK.
type Adapter struct {
	cli         *client.Client
	host        string
	stopTimeout time.Duration
}

// Option customizes the adapter at construction time.
type Option func(*Adapter)

// WithStopTimeout overrides the grace period given to a container before
// the engine kills it on stop and restart.
func WithStopTimeout(d time.Duration) Option {
	return func(a *Adapter) {
		if d > 0 {
			a.stopTimeout = d
		}
	}
}

// WithHost points the client at an explicit daemon address instead of the
// DOCKER_HOST environment.
func WithHost(host string) Option {
	return func(a *Adapter) { a.host = host }
}

// NewAdapter creates a new Docker adapter instance. The client is
// configured from the environment unless WithHost is given, and negotiates
// the API version with the daemon.
func NewAdapter(opts ...Option) (*Adapter, error) {
	a := &Adapter{stopTimeout: 10 * time.Second}
	for _, opt := range opts {
		opt(a)
	}

	clientOpts := []client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}
	if a.host != "" {
		clientOpts = append(clientOpts, client.WithHost(a.host))
	}
	cli, err := client.NewClientWithOpts(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	a.cli = cli
	return a, nil
}

// GetProjectsWithContainers lists every container on the host (stopped ones
// included) and groups them by compose project label. Containers without a
// project label land in the snapshot's standalone set. Failures are
// reported as *domain.FetchError so the poll loop keeps its previous state.
func (a *Adapter) GetProjectsWithContainers(ctx context.Context) (domain.WorldSnapshot, error) {
	containers, err := a.cli.ContainerList(ctx, types.ContainerListOptions{All: true})
	if err != nil {
		return domain.WorldSnapshot{}, &domain.FetchError{Op: "container list", Err: err}
	}
	return buildSnapshot(containers), nil
}

// StartContainer starts a stopped container.
func (a *Adapter) StartContainer(ctx context.Context, id string) error {
	if err := a.cli.ContainerStart(ctx, id, types.ContainerStartOptions{}); err != nil {
		return fmt.Errorf("failed to start container %s: %w", id, err)
	}
	return nil
}

// StopContainer stops a running container within the configured grace
// period. Stopping an already stopped container is not an error.
func (a *Adapter) StopContainer(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, a.stopTimeout+5*time.Second)
	defer cancel()
	if err := a.cli.ContainerStop(ctx, id, a.stopOptions()); err != nil {
		return fmt.Errorf("failed to stop container %s: %w", id, err)
	}
	return nil
}

// RestartContainer stops and starts a container in one engine call.
func (a *Adapter) RestartContainer(ctx context.Context, id string) error {
	if err := a.cli.ContainerRestart(ctx, id, a.stopOptions()); err != nil {
		return fmt.Errorf("failed to restart container %s: %w", id, err)
	}
	return nil
}

// RemoveContainer deletes a container. With force set a running container
// is killed first.
func (a *Adapter) RemoveContainer(ctx context.Context, id string, force bool) error {
	if err := a.cli.ContainerRemove(ctx, id, types.ContainerRemoveOptions{Force: force}); err != nil {
		return fmt.Errorf("failed to remove container %s: %w", id, err)
	}
	return nil
}

// ContainerLogs returns the last tail lines of a container's combined
// output as plain text. The engine multiplexes stdout and stderr for
// containers without a TTY; that framing is stripped here so callers only
// ever see lines. The caller owns the returned stream.
func (a *Adapter) ContainerLogs(ctx context.Context, id string, tail int) (io.ReadCloser, error) {
	options := types.ContainerLogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Timestamps: false,
		Tail:       strconv.Itoa(tail),
	}
	rc, err := a.cli.ContainerLogs(ctx, id, options)
	if err != nil {
		return nil, fmt.Errorf("failed to read logs for container %s: %w", id, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read logs for container %s: %w", id, err)
	}

	var buf bytes.Buffer
	if _, err := stdcopy.StdCopy(&buf, &buf, bytes.NewReader(raw)); err != nil {
		// TTY containers produce an unframed stream; pass it through.
		return io.NopCloser(bytes.NewReader(raw)), nil
	}
	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

func (a *Adapter) stopOptions() container.StopOptions {
	secs := int(a.stopTimeout / time.Second)
	return container.StopOptions{Timeout: &secs}
}
