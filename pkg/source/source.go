// Package source abstracts where raw graph payloads come from. The analysis
// backend that produces them is an external collaborator; the engine only
// ever sees bytes fetched through a PayloadSource.
package source

import "context"

// PayloadSource fetches the raw graph payload for one capture session.
// Implementations must be safe for concurrent use.
type PayloadSource interface {
	Fetch(ctx context.Context, sessionID string) ([]byte, error)
}
