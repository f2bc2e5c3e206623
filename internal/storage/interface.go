package storage

import (
	"context"

	"github.com/yourname/moodtracker/internal"
)

// HappinessRepository mirrors one happiness collection. Replace swaps the
// whole collection; the in-memory copy held by the caller stays the source
// of truth for the session.
type HappinessRepository interface {
	ListHappiness(ctx context.Context) ([]internal.HappinessEntry, error)
	ReplaceHappiness(ctx context.Context, entries []internal.HappinessEntry) error
}

// MediaRepository mirrors one media collection.
type MediaRepository interface {
	ListMedia(ctx context.Context) ([]internal.MediaEntry, error)
	ReplaceMedia(ctx context.Context, entries []internal.MediaEntry) error
}
