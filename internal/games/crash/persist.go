package crash

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/letter-isles/internal/islands"
)

// SaveKey is the blob-store key for the persisted progress subset.
const SaveKey = "letter-crash-save"

// BlobStore is the persistence surface needed by the crash game.
type BlobStore interface {
	SaveBlob(key string, data []byte) error
	LoadBlob(key string) ([]byte, error)
}

// PersistedState is the subset of Store that survives across sessions.
// Session state (word, blocks, phase, build mode, active mini-game) is
// deliberately not part of it.
type PersistedState struct {
	Stars             int                       `json:"stars"`
	Gems              int                       `json:"gems"`
	OwnedItems        []string                  `json:"ownedItems"`
	PlacedDecorations []PlacedDecoration        `json:"placedDecorations"`
	UnlockedBridges   []string                  `json:"unlockedBridges"`
	LetterProgress    map[string]LetterProgress `json:"letterProgress"`
	LearningMode      bool                      `json:"learningMode"`
	Accessibility     Accessibility             `json:"accessibility"`
	ParentSettings    ParentSettings            `json:"parentSettings"`
}

// Persisted snapshots the store's durable subset.
func (s *Store) Persisted() PersistedState {
	return PersistedState{
		Stars:             s.Stars,
		Gems:              s.Gems,
		OwnedItems:        append([]string{}, s.OwnedItems...),
		PlacedDecorations: append([]PlacedDecoration{}, s.PlacedDecorations...),
		UnlockedBridges:   s.sortedBridges(),
		LetterProgress:    copyProgress(s.LetterProgress),
		LearningMode:      s.LearningMode,
		Accessibility:     s.Accessibility,
		ParentSettings:    s.ParentSettings,
	}
}

// persistedPatch mirrors PersistedState with optional fields so that
// saves written by older builds load with defaults for anything they
// lack, field by field.
type persistedPatch struct {
	Stars             *int                      `json:"stars"`
	Gems              *int                      `json:"gems"`
	OwnedItems        []string                  `json:"ownedItems"`
	PlacedDecorations []PlacedDecoration        `json:"placedDecorations"`
	UnlockedBridges   []string                  `json:"unlockedBridges"`
	LetterProgress    map[string]LetterProgress `json:"letterProgress"`
	LearningMode      *bool                     `json:"learningMode"`
	Accessibility     *Accessibility            `json:"accessibility"`
	ParentSettings    *ParentSettings           `json:"parentSettings"`
}

// Restore merges a persisted snapshot into the store. Missing fields
// keep their defaults; present fields replace wholesale.
func (s *Store) restore(data []byte) error {
	var p persistedPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("crash: decode save: %w", err)
	}

	if p.Stars != nil {
		s.Stars = *p.Stars
	}
	if p.Gems != nil {
		s.Gems = *p.Gems
	}
	if p.OwnedItems != nil {
		s.OwnedItems = p.OwnedItems
	}
	if p.PlacedDecorations != nil {
		s.PlacedDecorations = p.PlacedDecorations
	}
	if p.UnlockedBridges != nil {
		s.UnlockedBridges = map[string]bool{}
		for _, k := range p.UnlockedBridges {
			s.UnlockedBridges[k] = true
		}
	}
	if p.LetterProgress != nil {
		s.LetterProgress = p.LetterProgress
	}
	if p.LearningMode != nil {
		s.LearningMode = *p.LearningMode
	}
	if p.Accessibility != nil {
		s.Accessibility = *p.Accessibility
	}
	if p.ParentSettings != nil {
		ps := *p.ParentSettings
		if ps.EnabledDimensions == nil {
			ps.EnabledDimensions = append([]islands.Dimension{}, islands.Dimensions...)
		}
		s.ParentSettings = ps
	}
	return nil
}

// Load pulls the saved progress from the blob store into s. A missing
// or corrupt save leaves the defaults in place and is not an error; a
// store read failure is.
func (s *Store) Load(store BlobStore) error {
	data, err := store.LoadBlob(SaveKey)
	if err != nil {
		return fmt.Errorf("crash: load save: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := s.restore(data); err != nil {
		// Treat an unreadable save like a fresh start rather than
		// locking the player out.
		return nil
	}
	return nil
}

// StoreSaver returns a Saver that writes snapshots into the blob store.
// Write failures are swallowed; gameplay must not stall on disk.
func StoreSaver(store BlobStore) Saver {
	return func(state PersistedState) {
		data, err := json.Marshal(state)
		if err != nil {
			return
		}
		_ = store.SaveBlob(SaveKey, data)
	}
}

func copyProgress(in map[string]LetterProgress) map[string]LetterProgress {
	out := make(map[string]LetterProgress, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
