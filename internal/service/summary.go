package service

import (
	"context"
	"fmt"

	"github.com/yourname/moodtracker/internal"
	"github.com/yourname/moodtracker/internal/collection"
	"github.com/yourname/moodtracker/internal/storage"
)

// DaySummary joins the happiness entry for a date with that day's media
// entries. The join is a lookup by date only; neither collection owns the
// other, and deleting a happiness entry leaves the media entries in place.
type DaySummary struct {
	Date         string
	Happiness    *internal.HappinessEntry
	Media        []internal.MediaEntry
	TotalMinutes int
}

// Summarize builds the day view for a date.
func Summarize(ctx context.Context, happinessRepo storage.HappinessRepository, mediaRepo storage.MediaRepository, date string) (DaySummary, error) {
	if _, err := collection.ParseDate(date); err != nil {
		return DaySummary{}, err
	}

	summary := DaySummary{Date: date}

	happiness, err := happinessRepo.ListHappiness(ctx)
	if err != nil {
		return DaySummary{}, fmt.Errorf("load happiness entries: %w", err)
	}
	for _, e := range happiness {
		if e.Date == date {
			e := e
			summary.Happiness = &e
			break
		}
	}

	media, err := mediaRepo.ListMedia(ctx)
	if err != nil {
		return DaySummary{}, fmt.Errorf("load media entries: %w", err)
	}
	for _, e := range media {
		if e.Date == date {
			summary.Media = append(summary.Media, e)
			summary.TotalMinutes += e.Duration
		}
	}
	summary.Media = collection.SortMedia(summary.Media)

	return summary, nil
}
