package track

import "context"

// Provider looks up audio features for a track. A false second value means
// nothing usable was found; providers never fail the caller.
type Provider interface {
	FetchTrack(ctx context.Context, artist, title, album string) (Features, bool)
}
