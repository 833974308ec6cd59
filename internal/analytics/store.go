package analytics

import "context"

// Store persists visit events, indexed by shortcut for later querying.
type Store interface {
	SaveLinkVisited(ctx context.Context, event *LinkVisitedEvent) error
}
