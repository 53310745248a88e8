// Package entity contains the core business objects of the project.
package entity

// PlaceStatus represents the moderation state of a place.
type PlaceStatus string

const (
	// StatusDraft indicates an unsubmitted place. Reserved: creation
	// currently always enters moderating, but drafts remain a legal state.
	StatusDraft PlaceStatus = "draft"
	// StatusModerating indicates a place awaiting a moderator decision.
	StatusModerating PlaceStatus = "moderating"
	// StatusPublished indicates a publicly visible place.
	StatusPublished PlaceStatus = "published"
	// StatusRejected indicates a place declined by a moderator.
	StatusRejected PlaceStatus = "rejected"
	// StatusArchived indicates a soft-deleted place. Terminal.
	StatusArchived PlaceStatus = "archived"
)

// String returns the string representation of the PlaceStatus.
func (s PlaceStatus) String() string {
	return string(s)
}

// IsValid checks if the PlaceStatus is a valid value.
func (s PlaceStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusModerating, StatusPublished, StatusRejected, StatusArchived:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition may leave this status.
func (s PlaceStatus) IsTerminal() bool {
	return s == StatusArchived
}

// transitions is the full state machine:
// draft -> moderating -> {published, rejected}; every non-archived state may
// be archived; nothing leaves archived.
var transitions = map[PlaceStatus][]PlaceStatus{
	StatusDraft:      {StatusModerating, StatusArchived},
	StatusModerating: {StatusPublished, StatusRejected, StatusArchived},
	StatusPublished:  {StatusArchived},
	StatusRejected:   {StatusArchived},
	StatusArchived:   {},
}

// CanTransitionTo reports whether the state machine permits moving from s to
// next. It says nothing about who is allowed to trigger the move.
func (s PlaceStatus) CanTransitionTo(next PlaceStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// RequiresModerator reports whether the transition from s to next may only be
// performed by a moderator or admin.
func (s PlaceStatus) RequiresModerator(next PlaceStatus) bool {
	return s == StatusModerating && (next == StatusPublished || next == StatusRejected)
}
