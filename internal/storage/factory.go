package storage

import "github.com/yourname/moodtracker/internal"

func NewFileRepositories(happinessFile, mediaFile string, logger internal.Logger) (HappinessRepository, MediaRepository, error) {
	store, err := NewFileStore(happinessFile, mediaFile, logger)
	if err != nil {
		return nil, nil, err
	}
	return store, store, nil
}
