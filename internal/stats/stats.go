// Package stats tracks local play statistics: play time, words typed,
// letters crashed, dimensions visited. All transforms are pure and take
// an explicit clock so they can be tested without sleeping.
package stats

import (
	"fmt"
	"time"

	"github.com/vovakirdan/letter-isles/internal/islands"
)

// MaxWordHistory bounds the typed-word ring.
const MaxWordHistory = 50

// TimeOfDay buckets the current hour for greeting text.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// PlayStats is the accumulated local record. DimensionsVisited keeps
// first-visit order; WordHistory keeps the last MaxWordHistory words.
type PlayStats struct {
	TotalPlayTimeMs     int64               `json:"totalPlayTimeMs"`
	SessionsToday       int                 `json:"sessionsToday"`
	TotalLettersCrashed int                 `json:"totalLettersCrashed"`
	TotalWordsTyped     int                 `json:"totalWordsTyped"`
	DimensionsVisited   []islands.Dimension `json:"dimensionsVisited"`
	WordHistory         []string            `json:"wordHistory"`
	SessionStartedAt    int64               `json:"sessionStartedAt"`
}

// New returns empty stats with the session clock set to now.
func New(now time.Time) PlayStats {
	return PlayStats{
		DimensionsVisited: []islands.Dimension{},
		WordHistory:       []string{},
		SessionStartedAt:  now.UnixMilli(),
	}
}

// RecordWord appends a typed word, evicting the oldest past the cap.
func RecordWord(s PlayStats, word string) PlayStats {
	history := append(append([]string{}, s.WordHistory...), word)
	if len(history) > MaxWordHistory {
		history = history[1:]
	}
	s.TotalWordsTyped++
	s.WordHistory = history
	return s
}

// RecordLetterCrash bumps the crashed-letter counter.
func RecordLetterCrash(s PlayStats) PlayStats {
	s.TotalLettersCrashed++
	return s
}

// RecordDimensionVisit records a first visit; repeat visits are no-ops.
func RecordDimensionVisit(s PlayStats, d islands.Dimension) PlayStats {
	for _, seen := range s.DimensionsVisited {
		if seen == d {
			return s
		}
	}
	s.DimensionsVisited = append(append([]islands.Dimension{}, s.DimensionsVisited...), d)
	return s
}

// UpdatePlayTime folds the elapsed session time into the total and
// restarts the session clock.
func UpdatePlayTime(s PlayStats, now time.Time) PlayStats {
	s.TotalPlayTimeMs += now.UnixMilli() - s.SessionStartedAt
	s.SessionStartedAt = now.UnixMilli()
	return s
}

// StartSession begins a new session.
func StartSession(s PlayStats, now time.Time) PlayStats {
	s.SessionsToday++
	s.SessionStartedAt = now.UnixMilli()
	return s
}

// MostTypedWord returns the most frequent word in the history, or "" when
// the history is empty. Ties go to the word seen first.
func MostTypedWord(s PlayStats) string {
	counts := make(map[string]int, len(s.WordHistory))
	for _, w := range s.WordHistory {
		counts[w]++
	}
	max := 0
	best := ""
	for _, w := range s.WordHistory {
		if counts[w] > max {
			max = counts[w]
			best = w
		}
	}
	return best
}

// GetTimeOfDay buckets the hour: morning before noon, afternoon before
// five, evening after.
func GetTimeOfDay(now time.Time) TimeOfDay {
	switch h := now.Hour(); {
	case h < 12:
		return Morning
	case h < 17:
		return Afternoon
	default:
		return Evening
	}
}

// FormatPlayTime renders a duration in whole minutes, e.g. "1h 5m" or "42m".
func FormatPlayTime(ms int64) string {
	minutes := ms / 60000
	hours := minutes / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
