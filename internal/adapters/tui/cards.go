package tui

import (
	"github.com/flycatch/DockerManager/internal/core/domain"
)

// Card is the live widget state for one container. It is created once and
// mutated in place by status updates; a poll tick that changes nothing
// touches no card at all.
type Card struct {
	Container domain.Container
}

// CardStore holds the rendered widget state: project groups in display
// order plus the standalone card list. It is the rendering collaborator
// from the reconciler's point of view; Apply is the only way state changes.
type CardStore struct {
	cards      map[string]*Card
	groups     []string            // project ids in display order
	members    map[string][]string // project id -> member ids in display order
	standalone []string            // standalone ids in display order
}

func NewCardStore() *CardStore {
	return &CardStore{
		cards:   make(map[string]*Card),
		members: make(map[string][]string),
	}
}

// Apply executes one tick's mutation sequence in order. Unknown targets are
// ignored rather than treated as fatal: the next tick re-converges.
func (cs *CardStore) Apply(mutations []domain.Mutation) {
	for _, m := range mutations {
		switch m.Kind {
		case domain.MutationRemoveProjectGroup:
			cs.removeGroup(m.ID)
		case domain.MutationRemoveCard:
			cs.removeCard(m.ID)
		case domain.MutationCreateProjectGroup:
			cs.createGroup(m.Project)
		case domain.MutationCreateCard:
			cs.createCard(m.Container)
		case domain.MutationUpdateStatus:
			if card, ok := cs.cards[m.ID]; ok {
				card.Container.Status = m.Container.Status
				card.Container.StatusRaw = m.Container.StatusRaw
			}
		}
	}
}

// Card returns the live card for a container id.
func (cs *CardStore) Card(id string) (*Card, bool) {
	c, ok := cs.cards[id]
	return c, ok
}

// Groups returns the project ids in display order.
func (cs *CardStore) Groups() []string {
	return cs.groups
}

// Members returns the member container ids of a project group.
func (cs *CardStore) Members(project string) []string {
	return cs.members[project]
}

// Standalone returns the ids of containers outside any project.
func (cs *CardStore) Standalone() []string {
	return cs.standalone
}

// Len returns the number of live cards.
func (cs *CardStore) Len() int {
	return len(cs.cards)
}

func (cs *CardStore) createGroup(p domain.Project) {
	for _, id := range cs.groups {
		if id == p.ID {
			return
		}
	}
	cs.groups = append(cs.groups, p.ID)
	if _, ok := cs.members[p.ID]; !ok {
		cs.members[p.ID] = nil
	}
}

func (cs *CardStore) removeGroup(id string) {
	cs.groups = remove(cs.groups, id)
	delete(cs.members, id)
}

func (cs *CardStore) createCard(c domain.Container) {
	if _, exists := cs.cards[c.ID]; exists {
		return
	}
	cs.cards[c.ID] = &Card{Container: c}
	if c.ProjectID == "" {
		cs.standalone = append(cs.standalone, c.ID)
		return
	}
	cs.members[c.ProjectID] = append(cs.members[c.ProjectID], c.ID)
}

func (cs *CardStore) removeCard(id string) {
	card, ok := cs.cards[id]
	if !ok {
		return
	}
	delete(cs.cards, id)
	if card.Container.ProjectID == "" {
		cs.standalone = remove(cs.standalone, id)
		return
	}
	// The group may already be gone: removals order project groups before
	// their member cards. Writing back unconditionally would resurrect the
	// deleted map key as an empty entry.
	if members, ok := cs.members[card.Container.ProjectID]; ok {
		cs.members[card.Container.ProjectID] = remove(members, id)
	}
}

func remove(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
