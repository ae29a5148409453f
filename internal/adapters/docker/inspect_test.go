package docker

import (
	"strings"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/go-connections/nat"
)

func TestDetailsFromInspect(t *testing.T) {
	info := types.ContainerJSON{
		ContainerJSONBase: &types.ContainerJSONBase{
			ID:      "aaaaaaaaaaaaaaaaaaaaaaaa",
			Name:    "/web-1",
			Image:   "sha256:bbbbbbbbbbbbbbbbbbbbbbbb",
			Created: "2024-03-01T10:00:00.000000000Z",
			State: &types.ContainerState{
				Status:    "running",
				ExitCode:  0,
				StartedAt: "2024-03-01T10:00:05.000000000Z",
			},
			HostConfig: &container.HostConfig{
				RestartPolicy: container.RestartPolicy{Name: "unless-stopped"},
			},
		},
		Config: &container.Config{
			Image:      "nginx:latest",
			Cmd:        []string{"nginx", "-g", "daemon off;"},
			Entrypoint: []string{"/docker-entrypoint.sh"},
		},
		Mounts: []types.MountPoint{
			{Type: "bind", Source: "/srv/html", Destination: "/usr/share/nginx/html", RW: true},
			{Type: "volume", Name: "data", Destination: "/data", RW: false},
		},
		NetworkSettings: &types.NetworkSettings{
			Networks: map[string]*network.EndpointSettings{
				"shop_default": {},
				"bridge":       {},
			},
		},
	}
	info.NetworkSettings.Ports = nat.PortMap{
		"80/tcp":   []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: "8080"}},
		"9000/tcp": nil,
	}

	d := detailsFromInspect(info)

	if d.ID != "aaaaaaaaaaaa" {
		t.Errorf("ID = %q, want short id", d.ID)
	}
	if d.Name != "web-1" {
		t.Errorf("Name = %q, want leading slash stripped", d.Name)
	}
	if d.Image != "nginx:latest" || d.ImageID != "bbbbbbbbbbbb" {
		t.Errorf("Image = %q (%q)", d.Image, d.ImageID)
	}
	if d.State != "running" {
		t.Errorf("State = %q", d.State)
	}
	if d.RestartPolicy != "unless-stopped" {
		t.Errorf("RestartPolicy = %q", d.RestartPolicy)
	}
	if d.Command != "nginx -g daemon off;" {
		t.Errorf("Command = %q", d.Command)
	}
	if d.Created == "" || d.StartedAt == "" {
		t.Errorf("timestamps not formatted: created=%q started=%q", d.Created, d.StartedAt)
	}
	if d.FinishedAt != "" {
		t.Errorf("FinishedAt = %q, want empty for running container", d.FinishedAt)
	}

	if len(d.Networks) != 2 || d.Networks[0] != "bridge" || d.Networks[1] != "shop_default" {
		t.Errorf("Networks = %v, want sorted names", d.Networks)
	}

	if len(d.Ports) != 2 {
		t.Fatalf("Ports = %v, want published and internal entries", d.Ports)
	}
	if d.Ports[0] != "0.0.0.0:8080 -> 80/tcp" {
		t.Errorf("published port = %q", d.Ports[0])
	}
	if d.Ports[1] != "9000/tcp (internal only)" {
		t.Errorf("internal port = %q", d.Ports[1])
	}

	if len(d.Mounts) != 2 {
		t.Fatalf("Mounts = %v", d.Mounts)
	}
	if d.Mounts[0] != "/srv/html -> /usr/share/nginx/html (bind, rw)" {
		t.Errorf("bind mount = %q", d.Mounts[0])
	}
	if !strings.HasPrefix(d.Mounts[1], "data -> /data (volume, ro") {
		t.Errorf("volume mount falls back to name: %q", d.Mounts[1])
	}
}

// Containers in odd states come back with nil sub-structs; the mapping
// must not panic on them.
func TestDetailsFromInspectNilSections(t *testing.T) {
	d := detailsFromInspect(types.ContainerJSON{})
	if d.ID != "" || len(d.Ports) != 0 || len(d.Mounts) != 0 {
		t.Errorf("empty inspect produced %+v", d)
	}
}

func TestFormatInspectTime(t *testing.T) {
	if got := formatInspectTime("0001-01-01T00:00:00Z"); got != "" {
		t.Errorf("zero time rendered as %q, want empty", got)
	}
	if got := formatInspectTime("not-a-time"); got != "" {
		t.Errorf("garbage rendered as %q, want empty", got)
	}
	if got := formatInspectTime("2024-03-01T10:00:00Z"); got == "" {
		t.Error("valid timestamp rendered empty")
	}
}
