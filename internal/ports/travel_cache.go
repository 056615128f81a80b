package ports

import "context"

// Port: persistent cache for travel results keyed by a normalized
// coordinate-pair key. Keys are expected to be direction-normalized by the
// caller so one entry serves both directions of a pair.
type TravelCache interface {
	// Look up a cached travel result. The second return reports presence.
	Get(ctx context.Context, pair string) (TravelResult, bool, error)

	// Store a travel result for a pair key.
	Put(ctx context.Context, pair string, result TravelResult) error
}
