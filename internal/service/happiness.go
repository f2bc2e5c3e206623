// Package service wires entry factories, collection reducers and the
// persistence bridge into the operations the presentation layer calls.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourname/moodtracker/internal"
	"github.com/yourname/moodtracker/internal/collection"
	"github.com/yourname/moodtracker/internal/entry"
	"github.com/yourname/moodtracker/internal/storage"
)

// ErrNotFound signals an edit aimed at an entry that is not in the
// collection.
var ErrNotFound = errors.New("entry not found")

// LogHappiness validates and inserts one happiness entry, replacing any
// entry already on that date, and returns the new collection.
func LogHappiness(ctx context.Context, repo storage.HappinessRepository, date string, happiness int) ([]internal.HappinessEntry, error) {
	e, err := entry.NewHappinessEntry(date, happiness)
	if err != nil {
		return nil, err
	}

	list, err := repo.ListHappiness(ctx)
	if err != nil {
		return nil, fmt.Errorf("load happiness entries: %w", err)
	}

	updated := collection.AddHappiness(list, e)
	if err := repo.ReplaceHappiness(ctx, updated); err != nil {
		return nil, fmt.Errorf("save happiness entries: %w", err)
	}
	return updated, nil
}

// ReviseHappiness replaces the entry identified by (oldDate, oldHappiness)
// with a freshly validated one. Moving an entry onto an occupied date evicts
// the occupant.
func ReviseHappiness(ctx context.Context, repo storage.HappinessRepository, old internal.HappinessEntry, date string, happiness int) ([]internal.HappinessEntry, error) {
	updated, err := entry.NewHappinessEntry(date, happiness)
	if err != nil {
		return nil, err
	}

	list, err := repo.ListHappiness(ctx)
	if err != nil {
		return nil, fmt.Errorf("load happiness entries: %w", err)
	}

	found := false
	for _, cur := range list {
		if cur.Date == old.Date && cur.Happiness == old.Happiness {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	result := collection.UpdateHappiness(list, old, updated)
	if err := repo.ReplaceHappiness(ctx, result); err != nil {
		return nil, fmt.Errorf("save happiness entries: %w", err)
	}
	return result, nil
}

// RemoveHappiness deletes every entry matching a (date, happiness) pair in
// victims. Pairs not present in the collection are ignored.
func RemoveHappiness(ctx context.Context, repo storage.HappinessRepository, victims []internal.HappinessEntry) ([]internal.HappinessEntry, error) {
	list, err := repo.ListHappiness(ctx)
	if err != nil {
		return nil, fmt.Errorf("load happiness entries: %w", err)
	}

	result := collection.DeleteHappiness(list, victims)
	if err := repo.ReplaceHappiness(ctx, result); err != nil {
		return nil, fmt.Errorf("save happiness entries: %w", err)
	}
	return result, nil
}

// ListHappiness returns the collection sorted by date descending.
func ListHappiness(ctx context.Context, repo storage.HappinessRepository) ([]internal.HappinessEntry, error) {
	list, err := repo.ListHappiness(ctx)
	if err != nil {
		return nil, fmt.Errorf("load happiness entries: %w", err)
	}
	return collection.SortHappiness(list), nil
}
