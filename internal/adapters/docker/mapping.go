package docker

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types"

	"github.com/flycatch/DockerManager/internal/core/domain"
)

// buildSnapshot converts an engine listing into the world snapshot the
// reconciler consumes. Projects are ordered by name so consecutive polls of
// an unchanged host produce identical snapshots; member containers keep the
// engine's listing order.
func buildSnapshot(list []types.Container) domain.WorldSnapshot {
	snap := domain.NewWorldSnapshot()
	members := make(map[string][]string)

	for _, c := range list {
		dc := toDomain(c)
		snap.Containers[dc.ID] = dc
		if dc.ProjectID == "" {
			snap.Standalone = append(snap.Standalone, dc)
			continue
		}
		members[dc.ProjectID] = append(members[dc.ProjectID], dc.ID)
	}

	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		snap.Projects = append(snap.Projects, domain.Project{
			ID:           name,
			Name:         name,
			ContainerIDs: members[name],
		})
	}
	return snap
}

func toDomain(c types.Container) domain.Container {
	return domain.Container{
		ID:        shortID(c.ID),
		Name:      containerName(c.Names),
		Image:     shortenImage(c.Image),
		Status:    domain.ParseStatus(c.State),
		StatusRaw: c.Status,
		Ports:     formatPorts(c.Ports),
		Created:   formatCreated(c.Created),
		ProjectID: c.Labels[composeProjectLabel],
	}
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// containerName extracts the primary name, stripping the leading slash the
// engine prepends.
func containerName(names []string) string {
	if len(names) == 0 {
		return "unknown"
	}
	return strings.TrimPrefix(names[0], "/")
}

// shortenImage trims sha256 digests down to something a card can show:
// "sha256:1y89..." keeps the first 12 digest characters, "nginx@sha256:..."
// keeps the repository plus a truncated digest. Tagged images pass through.
func shortenImage(image string) string {
	if image == "" {
		return "unknown"
	}
	if strings.HasPrefix(image, "sha256:") {
		digest := strings.TrimPrefix(image, "sha256:")
		if len(digest) > 12 {
			digest = digest[:12]
		}
		return "sha256:" + digest
	}
	if name, digest, ok := strings.Cut(image, "@sha256:"); ok {
		if len(digest) > 12 {
			digest = digest[:12]
		}
		return name + "@sha256:" + digest
	}
	return image
}

// formatPorts renders the engine's port mappings as "8080:80/tcp" pairs,
// container-only ports as "80/tcp", duplicates removed.
func formatPorts(ports []types.Port) string {
	var parts []string
	seen := make(map[string]struct{})
	for _, p := range ports {
		proto := p.Type
		if proto == "" {
			proto = "tcp"
		}
		var part string
		switch {
		case p.PublicPort != 0:
			part = strconv.Itoa(int(p.PublicPort)) + ":" + strconv.Itoa(int(p.PrivatePort)) + "/" + proto
		case p.PrivatePort != 0:
			part = strconv.Itoa(int(p.PrivatePort)) + "/" + proto
		default:
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func formatCreated(unix int64) string {
	if unix <= 0 {
		return ""
	}
	return time.Unix(unix, 0).Format("2006-01-02 15:04")
}
