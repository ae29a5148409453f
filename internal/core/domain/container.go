package domain

import "strings"

// ContainerStatus is the normalized lifecycle state of a container.
// The Docker engine reports free-form status strings; everything the UI
// cares about collapses into these four values.
type ContainerStatus int

const (
	StatusOther ContainerStatus = iota
	StatusRunning
	StatusRestarting
	StatusStopped
)

func (s ContainerStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusRestarting:
		return "restarting"
	case StatusStopped:
		return "stopped"
	default:
		return "other"
	}
}

// ParseStatus normalizes an engine state or status string. Unrecognized
// input maps to StatusOther rather than failing.
func ParseStatus(raw string) ContainerStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case s == "running" || strings.HasPrefix(s, "up"):
		return StatusRunning
	case strings.HasPrefix(s, "restarting"):
		return StatusRestarting
	case s == "stopped" || s == "dead" || s == "created" ||
		strings.HasPrefix(s, "exited"):
		return StatusStopped
	default:
		return StatusOther
	}
}

// Container represents one container as observed on a single poll tick.
type Container struct {
	ID        string // short 12-char engine id, stable across polls
	Name      string
	Image     string
	Status    ContainerStatus
	StatusRaw string // engine text such as "Up 2 hours", shown on cards
	Ports     string
	Created   string
	ProjectID string // compose project name, empty for standalone containers
}
