// Package reconcile computes the minimal set of UI mutations between two
// world snapshots and drives the poll loop that feeds them to the renderer.
// The point of the diff is that the cost of a refresh is proportional to
// what actually changed, not to the number of containers on the host.
package reconcile

import (
	"github.com/flycatch/DockerManager/internal/core/domain"
)

// Diff compares the previously rendered snapshot against a freshly fetched
// one and returns the ordered mutations that bring the UI up to date.
//
// Removals come first, then creates, then status updates, so a container
// replaced within one tick never shows up twice. Within each category the
// order is stable: current snapshot order for creates and updates, previous
// snapshot order for removals. Diff(c, c) returns nil.
//
// A duplicate container id within either snapshot is an invariant violation
// and yields a *domain.DiffError; the caller skips the tick.
func Diff(previous, current domain.WorldSnapshot) ([]domain.Mutation, error) {
	if err := checkUnique(previous); err != nil {
		return nil, err
	}
	if err := checkUnique(current); err != nil {
		return nil, err
	}

	var out []domain.Mutation

	// Removals, ordered by the previous snapshot.
	for _, p := range previous.Projects {
		if _, ok := current.Project(p.ID); !ok {
			out = append(out, domain.Mutation{Kind: domain.MutationRemoveProjectGroup, ID: p.ID})
		}
	}
	for _, id := range previous.ContainerOrder() {
		prev := previous.Containers[id]
		cur, ok := current.Containers[id]
		if !ok || cur.ProjectID != prev.ProjectID {
			out = append(out, domain.Mutation{Kind: domain.MutationRemoveCard, ID: id})
		}
	}

	// Creates, ordered by the current snapshot. Project groups are created
	// before the cards that live inside them.
	for _, p := range current.Projects {
		if _, ok := previous.Project(p.ID); !ok {
			out = append(out, domain.Mutation{Kind: domain.MutationCreateProjectGroup, ID: p.ID, Project: p})
		}
	}
	for _, id := range current.ContainerOrder() {
		cur := current.Containers[id]
		prev, ok := previous.Containers[id]
		if !ok || prev.ProjectID != cur.ProjectID {
			out = append(out, domain.Mutation{Kind: domain.MutationCreateCard, ID: id, Container: cur})
		}
	}

	// Status updates for survivors.
	for _, id := range current.ContainerOrder() {
		cur := current.Containers[id]
		prev, ok := previous.Containers[id]
		if !ok || prev.ProjectID != cur.ProjectID {
			continue // handled as remove+create above
		}
		// Only the normalized status participates in the diff: the raw
		// engine text ("Up 2 hours") drifts every tick and would defeat
		// the minimality guarantee.
		if prev.Status != cur.Status {
			out = append(out, domain.Mutation{Kind: domain.MutationUpdateStatus, ID: id, Container: cur})
		}
	}

	return out, nil
}

// checkUnique verifies the per-snapshot id invariants: no container id
// occurs twice and every project member resolves to a known container.
func checkUnique(w domain.WorldSnapshot) error {
	seen := make(map[string]struct{}, len(w.Containers))
	for _, id := range w.ContainerOrder() {
		if _, dup := seen[id]; dup {
			return &domain.DiffError{ID: id, Reason: "duplicate container id in snapshot"}
		}
		seen[id] = struct{}{}
		if _, ok := w.Containers[id]; !ok {
			return &domain.DiffError{ID: id, Reason: "ordered id missing from container index"}
		}
	}
	return nil
}
