// Package impl contains the implementation of the application's business logic.
package impl

import (
	"placehub/internal/domain/entity"
	"placehub/internal/domain/repository"
	"placehub/internal/usecase"
)

// visibilityFilter computes the repository filter for a requester. It is the
// single source of truth for which places a listing may return and is always
// applied before any geospatial predicate.
//
// Anonymous requesters see published places only. Regular users additionally
// see their own places of any non-archived status. Moderators and admins see
// everything except archived, so the moderation queue stays reachable.
func visibilityFilter(r usecase.Requester) repository.PlaceFilter {
	if r.Capability.ReadAll {
		return repository.PlaceFilter{
			Statuses: []entity.PlaceStatus{
				entity.StatusDraft,
				entity.StatusModerating,
				entity.StatusPublished,
				entity.StatusRejected,
			},
		}
	}

	filter := repository.PlaceFilter{
		Statuses: []entity.PlaceStatus{entity.StatusPublished},
	}
	if r.Authenticated {
		ownerID := r.ID
		filter.OwnerID = &ownerID
	}

	return filter
}

// visibleTo decides whether a single place exists from the requester's point
// of view. Callers translate false into a not-found error, never forbidden,
// so invisible places do not leak their existence.
func visibleTo(r usecase.Requester, place *entity.Place) bool {
	switch place.Status {
	case entity.StatusArchived:
		return r.Capability.Admin
	case entity.StatusPublished:
		return true
	default:
		if !r.Authenticated {
			return false
		}

		return r.Capability.ReadAll || place.OwnedBy(r.ID)
	}
}

// canMutate decides whether the requester may modify a place they can see.
func canMutate(r usecase.Requester, place *entity.Place) bool {
	if !r.Authenticated {
		return false
	}

	return r.Capability.Moderate || place.OwnedBy(r.ID)
}
