package tui

import (
	"github.com/flycatch/DockerManager/internal/core/domain"
	"github.com/flycatch/DockerManager/internal/core/reconcile"
)

// pollEventMsg carries one poll tick's outcome from the reconciler
// goroutine into the Bubble Tea update loop.
type pollEventMsg struct {
	event reconcile.Event
}

// pollStoppedMsg signals that the poller channel closed.
type pollStoppedMsg struct{}

// actionResultMsg reports completion of a fire-and-forget container or
// project operation. The UI only raises a notification; the card state
// converges on the next poll tick.
type actionResultMsg struct {
	verb   string
	target string // container name or project name, for the notification
	err    error
}

// logsLoadedMsg delivers the fetched log tail for the logs modal.
type logsLoadedMsg struct {
	id   string
	text string
	err  error
}

// infoLoadedMsg delivers the inspect result for the info modal.
type infoLoadedMsg struct {
	id      string
	details domain.ContainerDetails
	err     error
}

// notifyExpireMsg clears a transient notification. The seq guard makes an
// old timer harmless when a newer notification replaced the message.
type notifyExpireMsg struct {
	seq int
}
