package stats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vovakirdan/letter-isles/internal/islands"
)

const storageKey = "letter-crash-stats"

// BlobStore is the persistence boundary the recorder writes through.
// *storage.Store satisfies it.
type BlobStore interface {
	SaveBlob(key string, data []byte) error
	LoadBlob(key string) ([]byte, error)
}

// Recorder owns the durable PlayStats. Callers mutate through the Record*
// helpers; every mutation is written through immediately.
type Recorder struct {
	store BlobStore
	now   func() time.Time
	stats PlayStats
}

// NewRecorder loads existing stats (or starts fresh) and begins a session.
func NewRecorder(store BlobStore, now func() time.Time) (*Recorder, error) {
	if now == nil {
		now = time.Now
	}
	s, err := load(store, now())
	if err != nil {
		return nil, err
	}
	r := &Recorder{store: store, now: now, stats: StartSession(s, now())}
	if err := r.flush(); err != nil {
		return nil, err
	}
	return r, nil
}

// Read loads the stored record without starting a session. Used by the
// read-only stats views.
func Read(store BlobStore, now time.Time) (PlayStats, error) {
	return load(store, now)
}

func load(store BlobStore, now time.Time) (PlayStats, error) {
	raw, err := store.LoadBlob(storageKey)
	if err != nil {
		return PlayStats{}, fmt.Errorf("stats: load: %w", err)
	}
	if raw == nil {
		return New(now), nil
	}
	s := New(now)
	if err := json.Unmarshal(raw, &s); err != nil {
		// A corrupt record should not brick the game.
		return New(now), nil
	}
	return s, nil
}

func (r *Recorder) flush() error {
	raw, err := json.Marshal(r.stats)
	if err != nil {
		return fmt.Errorf("stats: marshal: %w", err)
	}
	if err := r.store.SaveBlob(storageKey, raw); err != nil {
		return fmt.Errorf("stats: save: %w", err)
	}
	return nil
}

// Stats returns a copy of the current record.
func (r *Recorder) Stats() PlayStats { return r.stats }

// Word records a typed word.
func (r *Recorder) Word(word string) error {
	r.stats = RecordWord(r.stats, word)
	return r.flush()
}

// LetterCrash records a crashed letter.
func (r *Recorder) LetterCrash() error {
	r.stats = RecordLetterCrash(r.stats)
	return r.flush()
}

// DimensionVisit records a first visit to a dimension.
func (r *Recorder) DimensionVisit(d islands.Dimension) error {
	r.stats = RecordDimensionVisit(r.stats, d)
	return r.flush()
}

// Tick folds elapsed play time into the total.
func (r *Recorder) Tick() error {
	r.stats = UpdatePlayTime(r.stats, r.now())
	return r.flush()
}
