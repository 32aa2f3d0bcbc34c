package journal

import "github.com/google/uuid"

// EntryStore is the append-only journal collection.
type EntryStore interface {
	// Append persists the entry and fills in its store-assigned ID.
	Append(entry *Entry) error
	// ListByUser returns all of a user's entries ordered by date ascending.
	ListByUser(userID uuid.UUID) ([]Entry, error)
}

// ProfileStore reads and merge-updates the mood fields of a user profile.
// MergeMoodUpdate must leave fields it does not name untouched.
type ProfileStore interface {
	MoodHistory(userID uuid.UUID) (map[string]string, error)
	MergeMoodUpdate(userID uuid.UUID, currentMood, lastActiveHour string, history map[string]string) error
}
