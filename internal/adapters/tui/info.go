package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flycatch/DockerManager/internal/core/domain"
	"github.com/flycatch/DockerManager/internal/core/ports"
)

// infoModal shows the inspect-level detail of one container: state,
// timestamps, command, networks, ports and mounts.
type infoModal struct {
	containerID   string
	containerName string
	details       domain.ContainerDetails
	loading       bool
	err           error
}

func newInfoModal(id, name string) *infoModal {
	return &infoModal{containerID: id, containerName: name, loading: true}
}

// fetchInfo inspects the container in the background and reports back with
// an infoLoadedMsg.
func fetchInfo(service ports.ContainerService, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		details, err := service.InspectContainer(ctx, id)
		return infoLoadedMsg{id: id, details: details, err: err}
	}
}

func (im *infoModal) view() string {
	title := titleStyle.Render("Info: " + im.containerName)

	var body string
	switch {
	case im.loading:
		body = dimStyle.Render("loading...")
	case im.err != nil:
		body = errorStyle.Render("failed to inspect container: " + im.err.Error())
	default:
		body = im.detailsView()
	}

	footer := helpStyle.Render("esc close")
	return modalStyle.Render(title + "\n\n" + body + "\n\n" + footer)
}

func (im *infoModal) detailsView() string {
	d := im.details
	var b strings.Builder

	line := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(dimStyle.Render(padLabel(label)))
		b.WriteString(itemStyle.Render(value))
		b.WriteString("\n")
	}

	line("ID", d.ID)
	line("Image", imageLine(d))
	line("State", stateLine(d))
	line("Created", d.Created)
	line("Started", d.StartedAt)
	line("Finished", d.FinishedAt)
	line("Restart", d.RestartPolicy)
	line("Entrypoint", d.Entrypoint)
	line("Command", d.Command)
	line("Networks", strings.Join(d.Networks, ", "))
	line("Ports", strings.Join(d.Ports, ", "))
	for i, m := range d.Mounts {
		label := ""
		if i == 0 {
			label = "Mounts"
		}
		b.WriteString(dimStyle.Render(padLabel(label)))
		b.WriteString(itemStyle.Render(m))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func padLabel(label string) string {
	const width = 12
	if label != "" {
		label += ":"
	}
	for len(label) < width {
		label += " "
	}
	return label
}

func imageLine(d domain.ContainerDetails) string {
	if d.ImageID == "" {
		return d.Image
	}
	return d.Image + " (" + d.ImageID + ")"
}

func stateLine(d domain.ContainerDetails) string {
	if strings.EqualFold(d.State, "exited") {
		return d.State + " (" + strconv.Itoa(d.ExitCode) + ")"
	}
	return d.State
}
