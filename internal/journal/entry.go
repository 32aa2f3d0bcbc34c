package journal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Entry is one saved journal record: the mood picked that moment and the
// answered questions. Entries are append-only; the app never updates or
// deletes them.
type Entry struct {
	ID        uuid.UUID                             `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID                             `gorm:"type:uuid;not null;index" json:"user_id"`
	Date      time.Time                             `gorm:"not null;index" json:"date"`
	Mood      string                                `gorm:"size:30;not null" json:"mood"`
	Answers   datatypes.JSONType[map[string]string] `gorm:"type:jsonb;not null" json:"answers"`
	CreatedAt time.Time                             `json:"created_at"`
}

func (Entry) TableName() string { return "journal_entries" }

// DayBucket groups one calendar day's entries for the paged journal view.
// Derived on every fetch, never persisted.
type DayBucket struct {
	Day     time.Time `json:"day"`
	Entries []Entry   `json:"entries"`
}
