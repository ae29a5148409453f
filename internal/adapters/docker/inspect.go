package docker

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/docker/docker/api/types"

	"github.com/flycatch/DockerManager/internal/core/domain"
)

// InspectContainer fetches the detail view shown in the info modal.
func (a *Adapter) InspectContainer(ctx context.Context, id string) (domain.ContainerDetails, error) {
	info, err := a.cli.ContainerInspect(ctx, id)
	if err != nil {
		return domain.ContainerDetails{}, fmt.Errorf("failed to inspect container %s: %w", id, err)
	}
	return detailsFromInspect(info), nil
}

// detailsFromInspect flattens an inspect response into the fields the info
// modal renders. The engine leaves most of the nested structs nil for
// containers in unusual states, so every access is guarded.
func detailsFromInspect(info types.ContainerJSON) domain.ContainerDetails {
	var d domain.ContainerDetails

	if info.ContainerJSONBase != nil {
		d.ID = shortID(info.ID)
		d.Name = strings.TrimPrefix(info.Name, "/")
		d.ImageID = shortID(strings.TrimPrefix(info.Image, "sha256:"))
		d.Created = formatInspectTime(info.Created)
		if info.State != nil {
			d.State = info.State.Status
			d.ExitCode = info.State.ExitCode
			d.StartedAt = formatInspectTime(info.State.StartedAt)
			d.FinishedAt = formatInspectTime(info.State.FinishedAt)
		}
		if info.HostConfig != nil {
			d.RestartPolicy = string(info.HostConfig.RestartPolicy.Name)
		}
	}

	if info.Config != nil {
		d.Image = info.Config.Image
		d.Command = strings.Join(info.Config.Cmd, " ")
		d.Entrypoint = strings.Join(info.Config.Entrypoint, " ")
	}

	if info.NetworkSettings != nil {
		for name := range info.NetworkSettings.Networks {
			d.Networks = append(d.Networks, name)
		}
		sort.Strings(d.Networks)

		var ports []string
		for port, bindings := range info.NetworkSettings.Ports {
			if len(bindings) == 0 {
				ports = append(ports, string(port)+" (internal only)")
				continue
			}
			for _, b := range bindings {
				ports = append(ports, b.HostIP+":"+b.HostPort+" -> "+string(port))
			}
		}
		sort.Strings(ports)
		d.Ports = ports
	}

	for _, m := range info.Mounts {
		src := m.Source
		if src == "" {
			src = m.Name
		}
		mode := "ro"
		if m.RW {
			mode = "rw"
		}
		d.Mounts = append(d.Mounts, fmt.Sprintf("%s -> %s (%s, %s)", src, m.Destination, m.Type, mode))
	}

	return d
}

// formatInspectTime renders the engine's RFC3339 timestamps for display.
// The zero time the engine reports for never-started containers comes back
// empty.
func formatInspectTime(raw string) string {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil || t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}
