package domain

// ContainerDetails is the inspect-level view of one container, shown in
// the info modal. Unlike Container it is fetched on demand rather than on
// every poll tick.
type ContainerDetails struct {
	ID            string
	Name          string
	Image         string
	ImageID       string
	State         string
	ExitCode      int
	Created       string
	StartedAt     string
	FinishedAt    string
	RestartPolicy string
	Command       string
	Entrypoint    string
	Networks      []string
	Ports         []string // "127.0.0.1:8080 -> 80/tcp", "6379/tcp (internal only)"
	Mounts        []string // "src -> dst (type, rw)"
}
