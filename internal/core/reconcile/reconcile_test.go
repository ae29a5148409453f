package reconcile

import (
	"errors"
	"testing"

	"github.com/flycatch/DockerManager/internal/core/domain"
)

func container(id string, status domain.ContainerStatus, project string) domain.Container {
	return domain.Container{
		ID:        id,
		Name:      "name-" + id,
		Image:     "img:" + id,
		Status:    status,
		ProjectID: project,
	}
}

// snapshot builds a well-formed world snapshot from a container list,
// deriving projects from the ProjectID fields in encounter order.
func snapshot(containers ...domain.Container) domain.WorldSnapshot {
	w := domain.NewWorldSnapshot()
	members := make(map[string][]string)
	var projectOrder []string
	for _, c := range containers {
		w.Containers[c.ID] = c
		if c.ProjectID == "" {
			w.Standalone = append(w.Standalone, c)
			continue
		}
		if _, seen := members[c.ProjectID]; !seen {
			projectOrder = append(projectOrder, c.ProjectID)
		}
		members[c.ProjectID] = append(members[c.ProjectID], c.ID)
	}
	for _, p := range projectOrder {
		w.Projects = append(w.Projects, domain.Project{ID: p, Name: p, ContainerIDs: members[p]})
	}
	return w
}

func kinds(muts []domain.Mutation) []domain.MutationKind {
	out := make([]domain.MutationKind, len(muts))
	for i, m := range muts {
		out[i] = m.Kind
	}
	return out
}

func TestDiffScenarios(t *testing.T) {
	tests := []struct {
		name     string
		previous domain.WorldSnapshot
		current  domain.WorldSnapshot
		want     []domain.Mutation
	}{
		{
			name:     "status change yields single update",
			previous: snapshot(container("a", domain.StatusRunning, "")),
			current:  snapshot(container("a", domain.StatusStopped, "")),
			want: []domain.Mutation{
				{Kind: domain.MutationUpdateStatus, ID: "a", Container: container("a", domain.StatusStopped, "")},
			},
		},
		{
			name:     "new container yields single create",
			previous: snapshot(),
			current:  snapshot(container("b", domain.StatusRunning, "")),
			want: []domain.Mutation{
				{Kind: domain.MutationCreateCard, ID: "b", Container: container("b", domain.StatusRunning, "")},
			},
		},
		{
			name: "vanished container yields single remove",
			previous: snapshot(
				container("a", domain.StatusRunning, ""),
				container("b", domain.StatusRunning, ""),
			),
			current: snapshot(container("a", domain.StatusRunning, "")),
			want: []domain.Mutation{
				{Kind: domain.MutationRemoveCard, ID: "b"},
			},
		},
		{
			name:     "identical snapshots yield nothing",
			previous: snapshot(container("a", domain.StatusRunning, "web")),
			current:  snapshot(container("a", domain.StatusRunning, "web")),
			want:     nil,
		},
		{
			name:     "new project yields group before card",
			previous: snapshot(),
			current:  snapshot(container("a", domain.StatusRunning, "web")),
			want: []domain.Mutation{
				{Kind: domain.MutationCreateProjectGroup, ID: "web", Project: domain.Project{ID: "web", Name: "web", ContainerIDs: []string{"a"}}},
				{Kind: domain.MutationCreateCard, ID: "a", Container: container("a", domain.StatusRunning, "web")},
			},
		},
		{
			name:     "vanished project yields group and card removal",
			previous: snapshot(container("a", domain.StatusRunning, "web")),
			current:  snapshot(),
			want: []domain.Mutation{
				{Kind: domain.MutationRemoveProjectGroup, ID: "web"},
				{Kind: domain.MutationRemoveCard, ID: "a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Diff(tt.previous, tt.current)
			if err != nil {
				t.Fatalf("Diff returned error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d mutations %v, want %d", len(got), kinds(got), len(tt.want))
			}
			for i := range got {
				if got[i].Kind != tt.want[i].Kind || got[i].ID != tt.want[i].ID {
					t.Errorf("mutation %d: got %v %q, want %v %q",
						i, got[i].Kind, got[i].ID, tt.want[i].Kind, tt.want[i].ID)
				}
			}
		})
	}
}

func TestDiffIdempotence(t *testing.T) {
	c := snapshot(
		container("a", domain.StatusRunning, "web"),
		container("b", domain.StatusStopped, "web"),
		container("c", domain.StatusRestarting, ""),
	)
	got, err := Diff(c, c)
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Diff(c, c) = %v, want empty", kinds(got))
	}
}

// Removals must precede creates so a container replaced within one tick is
// never visible twice.
func TestDiffOrdering(t *testing.T) {
	previous := snapshot(
		container("old", domain.StatusRunning, "web"),
		container("keep", domain.StatusRunning, ""),
	)
	current := snapshot(
		container("new", domain.StatusRunning, "web"),
		container("keep", domain.StatusStopped, ""),
	)

	got, err := Diff(previous, current)
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}

	lastRemove, firstCreate, firstUpdate := -1, -1, -1
	for i, m := range got {
		switch m.Kind {
		case domain.MutationRemoveCard, domain.MutationRemoveProjectGroup:
			lastRemove = i
		case domain.MutationCreateCard, domain.MutationCreateProjectGroup:
			if firstCreate == -1 {
				firstCreate = i
			}
		case domain.MutationUpdateStatus:
			if firstUpdate == -1 {
				firstUpdate = i
			}
		}
	}
	if lastRemove == -1 || firstCreate == -1 || firstUpdate == -1 {
		t.Fatalf("expected removes, creates and updates, got %v", kinds(got))
	}
	if lastRemove > firstCreate {
		t.Errorf("remove at %d after create at %d: %v", lastRemove, firstCreate, kinds(got))
	}
	if firstCreate > firstUpdate {
		t.Errorf("create at %d after update at %d: %v", firstCreate, firstUpdate, kinds(got))
	}
}

// The set of container ids touched by the mutations must equal the
// symmetric difference of the id sets plus the ids whose status changed.
func TestDiffTouchedSet(t *testing.T) {
	previous := snapshot(
		container("a", domain.StatusRunning, "web"),
		container("b", domain.StatusRunning, "web"),
		container("c", domain.StatusStopped, ""),
		container("d", domain.StatusRunning, ""),
	)
	current := snapshot(
		container("a", domain.StatusRunning, "web"), // untouched
		container("b", domain.StatusStopped, "web"), // status change
		container("d", domain.StatusRunning, ""),    // untouched
		container("e", domain.StatusRunning, ""),    // new
	) // c vanished

	got, err := Diff(previous, current)
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}

	touched := make(map[string]int)
	for _, m := range got {
		switch m.Kind {
		case domain.MutationCreateCard, domain.MutationRemoveCard, domain.MutationUpdateStatus:
			touched[m.ID]++
		}
	}

	want := map[string]int{"b": 1, "c": 1, "e": 1}
	if len(touched) != len(want) {
		t.Fatalf("touched ids %v, want %v", touched, want)
	}
	for id, n := range want {
		if touched[id] != n {
			t.Errorf("id %q touched %d times, want %d", id, touched[id], n)
		}
	}
}

// A container that moves between projects re-mounts under its new group:
// one remove followed by one create, remove first.
func TestDiffProjectMove(t *testing.T) {
	previous := snapshot(container("a", domain.StatusRunning, "web"))
	current := snapshot(container("a", domain.StatusRunning, "db"))

	got, err := Diff(previous, current)
	if err != nil {
		t.Fatalf("Diff returned error: %v", err)
	}

	want := []domain.MutationKind{
		domain.MutationRemoveProjectGroup,
		domain.MutationRemoveCard,
		domain.MutationCreateProjectGroup,
		domain.MutationCreateCard,
	}
	gotKinds := kinds(got)
	if len(gotKinds) != len(want) {
		t.Fatalf("got %v, want %v", gotKinds, want)
	}
	for i := range want {
		if gotKinds[i] != want[i] {
			t.Fatalf("got %v, want %v", gotKinds, want)
		}
	}
}

func TestDiffDuplicateID(t *testing.T) {
	dup := domain.NewWorldSnapshot()
	c := container("a", domain.StatusRunning, "")
	dup.Containers["a"] = c
	dup.Standalone = []domain.Container{c, c}

	_, err := Diff(domain.NewWorldSnapshot(), dup)
	var diffErr *domain.DiffError
	if !errors.As(err, &diffErr) {
		t.Fatalf("expected *domain.DiffError, got %v", err)
	}
	if diffErr.ID != "a" {
		t.Errorf("DiffError.ID = %q, want %q", diffErr.ID, "a")
	}
}
