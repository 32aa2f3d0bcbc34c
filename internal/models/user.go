package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is the mood-journal profile document. MoodHistory maps a minute-key
// (yyyy-MM-dd_HHmm) to the mood name recorded at that minute; at most one
// entry per key, newer writes overwrite.
type User struct {
	ID              uuid.UUID                             `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email           string                                `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Username        string                                `gorm:"not null;size:100" json:"username"`
	Password        string                                `gorm:"not null" json:"-"`
	ProfileImageURL string                                `gorm:"type:text" json:"profile_image_url"`
	CurrentMood     string                                `gorm:"size:30" json:"current_mood"`
	LastActiveHour  string                                `gorm:"size:2" json:"last_active_hour"`
	MoodHistory     datatypes.JSONType[map[string]string] `gorm:"type:jsonb" json:"mood_history"`
	CreatedAt       time.Time                             `json:"created_at"`
	UpdatedAt       time.Time                             `json:"updated_at"`
	DeletedAt       gorm.DeletedAt                        `gorm:"index" json:"-"`
}
