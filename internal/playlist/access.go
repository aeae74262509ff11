package playlist

import (
	"context"

	"openmusic-service/internal/domain"
)

// Directory asserts or denies a user's collaborator status on a playlist.
// The detail of a failed check is never inspected here.
type Directory interface {
	VerifyCollaborator(ctx context.Context, playlistID, userID string) error
}

// Decision is the typed outcome of an ownership check.
type Decision int

const (
	DecisionAllowed Decision = iota
	DecisionNotFound
	DecisionForbidden
	DecisionFault
)

// decide classifies an ownership-check error into a tagged outcome so the
// collaborator fallback below is an explicit precedence rule instead of
// catch/rethrow control flow.
func decide(ownerErr error) Decision {
	switch {
	case ownerErr == nil:
		return DecisionAllowed
	case domain.IsNotFound(ownerErr):
		return DecisionNotFound
	case domain.IsAuthorization(ownerErr):
		return DecisionForbidden
	default:
		return DecisionFault
	}
}

// Guard resolves whether a user may act on a playlist. Decisions are
// computed against current owner and collaboration state on every call.
type Guard struct {
	store     *Store
	directory Directory
}

func NewGuard(store *Store, directory Directory) *Guard {
	return &Guard{store: store, directory: directory}
}

func (g *Guard) VerifyPlaylistOwner(ctx context.Context, playlistID, userID string) error {
	return g.store.VerifyPlaylistOwner(ctx, playlistID, userID)
}

// VerifyPlaylistAccess grants access to the owner or to a registered
// collaborator. A missing playlist is never resolvable via collaboration.
// When the user is not the owner and the collaborator check fails for any
// reason, the ownership error is the one surfaced: callers get a single
// consistent message whether the collaborator row is missing or the lookup
// itself faulted.
func (g *Guard) VerifyPlaylistAccess(ctx context.Context, playlistID, userID string) error {
	ownerErr := g.store.VerifyPlaylistOwner(ctx, playlistID, userID)

	switch decide(ownerErr) {
	case DecisionAllowed:
		return nil
	case DecisionForbidden:
		if err := g.directory.VerifyCollaborator(ctx, playlistID, userID); err != nil {
			return ownerErr
		}
		return nil
	default:
		return ownerErr
	}
}
