package docker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types"
)

// projectContainerIDs resolves the full engine ids of every container
// carrying the given compose project label. Matching is case-insensitive
// because the label preserves whatever casing compose derived from the
// directory name.
func (a *Adapter) projectContainerIDs(ctx context.Context, project string) ([]string, error) {
	containers, err := a.cli.ContainerList(ctx, types.ContainerListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list containers for project %s: %w", project, err)
	}

	want := strings.ToLower(strings.TrimSpace(project))
	var ids []string
	for _, c := range containers {
		label, ok := c.Labels[composeProjectLabel]
		if !ok {
			continue
		}
		if strings.ToLower(strings.TrimSpace(label)) == want {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no containers found for project %q", project)
	}
	return ids, nil
}

// forEachProjectContainer applies op to every member of the project and
// collects per-container failures instead of stopping at the first one.
func (a *Adapter) forEachProjectContainer(ctx context.Context, project string, op func(context.Context, string) error) error {
	ids, err := a.projectContainerIDs(ctx, project)
	if err != nil {
		return err
	}
	var errs []error
	for _, id := range ids {
		if err := op(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", shortID(id), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("project %s: %w", project, errors.Join(errs...))
	}
	return nil
}

// StartProject starts every container in a compose project.
func (a *Adapter) StartProject(ctx context.Context, project string) error {
	return a.forEachProjectContainer(ctx, project, a.StartContainer)
}

// StopProject stops every container in a compose project.
func (a *Adapter) StopProject(ctx context.Context, project string) error {
	return a.forEachProjectContainer(ctx, project, a.StopContainer)
}

// RestartProject restarts every container in a compose project.
func (a *Adapter) RestartProject(ctx context.Context, project string) error {
	return a.forEachProjectContainer(ctx, project, a.RestartContainer)
}

// RemoveProject force-removes every container in a compose project.
func (a *Adapter) RemoveProject(ctx context.Context, project string) error {
	return a.forEachProjectContainer(ctx, project, func(ctx context.Context, id string) error {
		return a.RemoveContainer(ctx, id, true)
	})
}
