package repository

import (
	"github.com/google/uuid"
	"github.com/moodworks/moodlog-backend/internal/journal"
	"gorm.io/gorm"
)

// EntryRepo is the Postgres-backed journal.EntryStore.
type EntryRepo struct {
	db *gorm.DB
}

func NewEntryRepo(db *gorm.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

func (r *EntryRepo) Append(entry *journal.Entry) error {
	return r.db.Create(entry).Error
}

func (r *EntryRepo) ListByUser(userID uuid.UUID) ([]journal.Entry, error) {
	var entries []journal.Entry
	err := r.db.Where("user_id = ?", userID).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}
