package docker

import (
	"testing"

	"github.com/docker/docker/api/types"

	"github.com/flycatch/DockerManager/internal/core/domain"
)

func TestBuildSnapshotGroupsByProjectLabel(t *testing.T) {
	list := []types.Container{
		{
			ID:     "aaaaaaaaaaaaaaaaaaaaaaaa",
			Names:  []string{"/web-1"},
			Image:  "nginx:latest",
			State:  "running",
			Status: "Up 2 hours",
			Labels: map[string]string{composeProjectLabel: "shop"},
		},
		{
			ID:     "bbbbbbbbbbbbbbbbbbbbbbbb",
			Names:  []string{"/db-1"},
			Image:  "postgres:16",
			State:  "exited",
			Status: "Exited (0) 1 hour ago",
			Labels: map[string]string{composeProjectLabel: "shop"},
		},
		{
			ID:     "cccccccccccccccccccccccc",
			Names:  []string{"/lonely"},
			Image:  "redis:7",
			State:  "running",
			Status: "Up 10 minutes",
			Labels: map[string]string{},
		},
	}

	snap := buildSnapshot(list)

	if len(snap.Projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(snap.Projects))
	}
	shop := snap.Projects[0]
	if shop.ID != "shop" || len(shop.ContainerIDs) != 2 {
		t.Fatalf("project = %+v, want shop with 2 members", shop)
	}
	if shop.ContainerIDs[0] != "aaaaaaaaaaaa" || shop.ContainerIDs[1] != "bbbbbbbbbbbb" {
		t.Errorf("member order = %v, want listing order with short ids", shop.ContainerIDs)
	}

	if len(snap.Standalone) != 1 || snap.Standalone[0].ID != "cccccccccccc" {
		t.Fatalf("standalone = %+v, want single redis container", snap.Standalone)
	}

	web := snap.Containers["aaaaaaaaaaaa"]
	if web.Name != "web-1" {
		t.Errorf("name = %q, want leading slash stripped", web.Name)
	}
	if web.Status != domain.StatusRunning {
		t.Errorf("status = %v, want running", web.Status)
	}
	db := snap.Containers["bbbbbbbbbbbb"]
	if db.Status != domain.StatusStopped {
		t.Errorf("db status = %v, want stopped", db.Status)
	}
}

func TestBuildSnapshotProjectOrderIsStable(t *testing.T) {
	mk := func(id, project string) types.Container {
		return types.Container{
			ID:     id + "000000000000",
			Names:  []string{"/" + id},
			State:  "running",
			Labels: map[string]string{composeProjectLabel: project},
		}
	}
	a := buildSnapshot([]types.Container{mk("x", "zeta"), mk("y", "alpha")})
	b := buildSnapshot([]types.Container{mk("y", "alpha"), mk("x", "zeta")})

	if len(a.Projects) != 2 || len(b.Projects) != 2 {
		t.Fatal("expected two projects in both snapshots")
	}
	if a.Projects[0].ID != b.Projects[0].ID || a.Projects[0].ID != "alpha" {
		t.Errorf("project order differs across listings: %q vs %q",
			a.Projects[0].ID, b.Projects[0].ID)
	}
}

func TestShortenImage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mysql:8.0", "mysql:8.0"},
		{"nginx", "nginx"},
		{"", "unknown"},
		{"sha256:1y8948021abcdef0123456789", "sha256:1y8948021abc"},
		{"nginx@sha256:abcdef0123456789abcdef", "nginx@sha256:abcdef012345"},
	}
	for _, tt := range tests {
		if got := shortenImage(tt.in); got != tt.want {
			t.Errorf("shortenImage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPorts(t *testing.T) {
	tests := []struct {
		name  string
		ports []types.Port
		want  string
	}{
		{"none", nil, ""},
		{
			"published",
			[]types.Port{{PrivatePort: 80, PublicPort: 8080, Type: "tcp"}},
			"8080:80/tcp",
		},
		{
			"container only",
			[]types.Port{{PrivatePort: 6379, Type: "tcp"}},
			"6379/tcp",
		},
		{
			"duplicates removed",
			[]types.Port{
				{PrivatePort: 80, PublicPort: 8080, Type: "tcp"},
				{PrivatePort: 80, PublicPort: 8080, Type: "tcp"},
			},
			"8080:80/tcp",
		},
		{
			"mixed",
			[]types.Port{
				{PrivatePort: 80, PublicPort: 8080, Type: "tcp"},
				{PrivatePort: 53, Type: "udp"},
			},
			"8080:80/tcp, 53/udp",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPorts(tt.ports); got != tt.want {
				t.Errorf("formatPorts() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContainerName(t *testing.T) {
	if got := containerName([]string{"/web-1", "/alias"}); got != "web-1" {
		t.Errorf("containerName = %q, want web-1", got)
	}
	if got := containerName(nil); got != "unknown" {
		t.Errorf("containerName(nil) = %q, want unknown", got)
	}
}
