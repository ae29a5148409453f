package domain

// Project groups the containers started from one compose project.
type Project struct {
	ID           string // compose project name, unique within a snapshot
	Name         string
	ContainerIDs []string // member ids in listing order
}

// WorldSnapshot is the complete set of known projects and containers as of
// one poll tick. It is built fresh on every tick and owned by the poll loop;
// nothing mutates a snapshot after construction.
type WorldSnapshot struct {
	Projects   []Project
	Standalone []Container          // containers without a compose project
	Containers map[string]Container // every container by id, project members included
}

// NewWorldSnapshot builds an empty snapshot ready to be filled by a provider.
func NewWorldSnapshot() WorldSnapshot {
	return WorldSnapshot{Containers: make(map[string]Container)}
}

// Empty reports whether the snapshot carries no state at all, which is the
// case before the first successful fetch.
func (w WorldSnapshot) Empty() bool {
	return len(w.Projects) == 0 && len(w.Containers) == 0
}

// ContainerOrder returns every container id in listing order: project
// members first (project order, then member order), standalone last.
func (w WorldSnapshot) ContainerOrder() []string {
	ids := make([]string, 0, len(w.Containers))
	for _, p := range w.Projects {
		ids = append(ids, p.ContainerIDs...)
	}
	for _, c := range w.Standalone {
		ids = append(ids, c.ID)
	}
	return ids
}

// Project returns the project with the given id, if present.
func (w WorldSnapshot) Project(id string) (Project, bool) {
	for _, p := range w.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
