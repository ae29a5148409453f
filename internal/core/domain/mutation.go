package domain

// MutationKind discriminates the UI mutations a reconciliation can emit.
type MutationKind int

const (
	MutationCreateCard MutationKind = iota
	MutationRemoveCard
	MutationUpdateStatus
	MutationCreateProjectGroup
	MutationRemoveProjectGroup
)

func (k MutationKind) String() string {
	switch k {
	case MutationCreateCard:
		return "create-card"
	case MutationRemoveCard:
		return "remove-card"
	case MutationUpdateStatus:
		return "update-status"
	case MutationCreateProjectGroup:
		return "create-project-group"
	case MutationRemoveProjectGroup:
		return "remove-project-group"
	default:
		return "unknown"
	}
}

// Mutation is one instruction to the rendering collaborator. The renderer
// applies mutations in sequence order and never rebuilds unaffected widgets.
type Mutation struct {
	Kind      MutationKind
	Container Container // set for CreateCard and UpdateStatus
	Project   Project   // set for CreateProjectGroup
	ID        string    // target id, set for every kind
}
