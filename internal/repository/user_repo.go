package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/moodworks/moodlog-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepo reads and updates user profiles. It implements
// journal.ProfileStore for the aggregator's mood-history merge.
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) ByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) MoodHistory(userID uuid.UUID) (map[string]string, error) {
	user, err := r.ByID(userID)
	if err != nil {
		return nil, err
	}
	history := user.MoodHistory.Data()
	if history == nil {
		history = make(map[string]string)
	}
	return history, nil
}

// MergeMoodUpdate writes only the three mood fields; everything else on the
// profile is preserved.
func (r *UserRepo) MergeMoodUpdate(userID uuid.UUID, currentMood, lastActiveHour string, history map[string]string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"current_mood":     currentMood,
			"last_active_hour": lastActiveHour,
			"mood_history":     datatypes.NewJSONType(history),
		}).Error
}

func (r *UserRepo) SetProfileImageURL(userID uuid.UUID, url string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_image_url", url).Error
}
