package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/yourname/moodtracker/internal"
)

// FileStore keeps both collections in memory and mirrors them to one JSON
// file each. Writes are debounced through per-collection save workers and
// flushed synchronously on Close. A failed mirror write is logged and
// dropped; it never blocks the in-memory state from advancing.
type FileStore struct {
	happiness []internal.HappinessEntry
	media     []internal.MediaEntry
	mu        sync.RWMutex

	happinessFile string
	mediaFile     string

	saveHappinessChan chan struct{}
	saveMediaChan     chan struct{}
	shutdownChan      chan struct{}
	closeOnce         sync.Once
	saveDelay         time.Duration

	logger internal.Logger
}

// NewFileStore loads both collections from their files. Store paths are
// explicit arguments; nothing in this package names a default location.
func NewFileStore(happinessFile, mediaFile string, logger internal.Logger) (*FileStore, error) {
	s := &FileStore{
		happinessFile:     happinessFile,
		mediaFile:         mediaFile,
		saveHappinessChan: make(chan struct{}, 1),
		saveMediaChan:     make(chan struct{}, 1),
		shutdownChan:      make(chan struct{}),
		saveDelay:         500 * time.Millisecond,
		logger:            logger,
	}

	if err := loadJSONFile(happinessFile, &s.happiness); err != nil {
		logger.Errorf("storage: failed to load happiness entries: %v", err)
		return nil, err
	}
	if err := loadJSONFile(mediaFile, &s.media); err != nil {
		logger.Errorf("storage: failed to load media entries: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveHappinessChan, s.saveHappiness, "happiness entries")
	go s.saveWorker(s.saveMediaChan, s.saveMedia, "media entries")

	return s, nil
}

// loadJSONFile decodes the file into out. A missing or empty file is an
// empty collection, not an error.
func loadJSONFile(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStore) saveHappiness() error {
	s.mu.RLock()
	entries := append([]internal.HappinessEntry{}, s.happiness...)
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.happinessFile, entries)
}

func (s *FileStore) saveMedia() error {
	s.mu.RLock()
	entries := append([]internal.MediaEntry{}, s.media...)
	s.mu.RUnlock()
	return atomicWriteFileJSON(s.mediaFile, entries)
}

func (s *FileStore) saveWorker(signal <-chan struct{}, save func() error, what string) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-signal:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// Close stops the save workers and flushes both collections synchronously.
// Closing an already closed store is a no-op.
func (s *FileStore) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.shutdownChan)

		if err = s.saveHappiness(); err != nil {
			return
		}
		err = s.saveMedia()
	})
	return err
}

// --- HappinessRepository ---

func (s *FileStore) ListHappiness(ctx context.Context) ([]internal.HappinessEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]internal.HappinessEntry{}, s.happiness...), nil
}

func (s *FileStore) ReplaceHappiness(ctx context.Context, entries []internal.HappinessEntry) error {
	s.mu.Lock()
	s.happiness = append([]internal.HappinessEntry{}, entries...)
	s.mu.Unlock()

	select {
	case s.saveHappinessChan <- struct{}{}:
	default:
	}
	return nil
}

// --- MediaRepository ---

func (s *FileStore) ListMedia(ctx context.Context) ([]internal.MediaEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]internal.MediaEntry{}, s.media...), nil
}

func (s *FileStore) ReplaceMedia(ctx context.Context, entries []internal.MediaEntry) error {
	s.mu.Lock()
	s.media = append([]internal.MediaEntry{}, entries...)
	s.mu.Unlock()

	select {
	case s.saveMediaChan <- struct{}{}:
	default:
	}
	return nil
}

// --- Compile-time assertions ---
var _ HappinessRepository = (*FileStore)(nil)
var _ MediaRepository = (*FileStore)(nil)
