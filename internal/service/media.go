package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourname/moodtracker/internal"
	"github.com/yourname/moodtracker/internal/collection"
	"github.com/yourname/moodtracker/internal/entry"
	"github.com/yourname/moodtracker/internal/schema"
	"github.com/yourname/moodtracker/internal/storage"
)

// MediaRequest carries raw field values for one media entry. ID is optional
// on create; on revise, zero-valued fields keep the stored value. ClearTitle
// drops a stored title, which an empty Title alone cannot express.
type MediaRequest struct {
	ID         string
	Date       string
	Type       string
	Duration   int
	Title      string
	ClearTitle bool
}

func buildMediaEntry(req MediaRequest) (internal.MediaEntry, error) {
	var opts []entry.MediaOption
	if req.ID != "" {
		opts = append(opts, entry.WithID(req.ID))
	}
	if req.Title != "" {
		opts = append(opts, entry.WithTitle(req.Title))
	}
	return entry.NewMediaEntry(req.Date, req.Type, req.Duration, opts...)
}

// LogMedia validates the whole batch before anything is inserted; one
// invalid request fails the batch with the combined message list.
func LogMedia(ctx context.Context, repo storage.MediaRepository, reqs []MediaRequest) ([]internal.MediaEntry, error) {
	entries := make([]internal.MediaEntry, 0, len(reqs))
	var failures []string
	for _, req := range reqs {
		e, err := buildMediaEntry(req)
		if err != nil {
			var verr *schema.ValidationError
			if errors.As(err, &verr) {
				failures = append(failures, verr.Errors...)
				continue
			}
			return nil, err
		}
		entries = append(entries, e)
	}
	if len(failures) > 0 {
		return nil, schema.NewValidationError(failures)
	}

	list, err := repo.ListMedia(ctx)
	if err != nil {
		return nil, fmt.Errorf("load media entries: %w", err)
	}

	updated := collection.AddMedia(list, entries...)
	if err := repo.ReplaceMedia(ctx, updated); err != nil {
		return nil, fmt.Errorf("save media entries: %w", err)
	}
	return updated, nil
}

// ReviseMedia replaces the entry with the given id. Zero-valued request
// fields inherit the stored values, so a caller can change one field
// without restating the rest; set ClearTitle to remove a stored title.
func ReviseMedia(ctx context.Context, repo storage.MediaRepository, id string, req MediaRequest) ([]internal.MediaEntry, error) {
	list, err := repo.ListMedia(ctx)
	if err != nil {
		return nil, fmt.Errorf("load media entries: %w", err)
	}

	var existing *internal.MediaEntry
	for i := range list {
		if list[i].ID == id {
			existing = &list[i]
			break
		}
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	merged := MediaRequest{
		ID:       id,
		Date:     req.Date,
		Type:     req.Type,
		Duration: req.Duration,
		Title:    req.Title,
	}
	if merged.Date == "" {
		merged.Date = existing.Date
	}
	if merged.Type == "" {
		merged.Type = existing.Type
	}
	if merged.Duration == 0 {
		merged.Duration = existing.Duration
	}
	if merged.Title == "" && !req.ClearTitle {
		merged.Title = existing.Title
	}

	e, err := buildMediaEntry(merged)
	if err != nil {
		return nil, err
	}

	result := collection.UpdateMedia(list, e)
	if err := repo.ReplaceMedia(ctx, result); err != nil {
		return nil, fmt.Errorf("save media entries: %w", err)
	}
	return result, nil
}

// RemoveMedia deletes every entry whose id appears in ids. Unknown ids are
// ignored.
func RemoveMedia(ctx context.Context, repo storage.MediaRepository, ids []string) ([]internal.MediaEntry, error) {
	list, err := repo.ListMedia(ctx)
	if err != nil {
		return nil, fmt.Errorf("load media entries: %w", err)
	}

	result := collection.DeleteMedia(list, ids)
	if err := repo.ReplaceMedia(ctx, result); err != nil {
		return nil, fmt.Errorf("save media entries: %w", err)
	}
	return result, nil
}

// ListMedia returns the collection sorted by date descending, optionally
// narrowed to a single date.
func ListMedia(ctx context.Context, repo storage.MediaRepository, date string) ([]internal.MediaEntry, error) {
	list, err := repo.ListMedia(ctx)
	if err != nil {
		return nil, fmt.Errorf("load media entries: %w", err)
	}
	if date == "" {
		return collection.SortMedia(list), nil
	}

	filtered := make([]internal.MediaEntry, 0, len(list))
	for _, e := range list {
		if e.Date == date {
			filtered = append(filtered, e)
		}
	}
	return collection.SortMedia(filtered), nil
}
