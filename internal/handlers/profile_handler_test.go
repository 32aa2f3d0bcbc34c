package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodworks/moodlog-backend/internal/dto"
	"github.com/moodworks/moodlog-backend/internal/models"
	"github.com/moodworks/moodlog-backend/internal/repository"
	"gorm.io/datatypes"
)

type stubProfileSource struct {
	user     *models.User
	byIDErr  error
	imageURL string
}

func (s *stubProfileSource) ByID(userID uuid.UUID) (*models.User, error) {
	if s.byIDErr != nil {
		return nil, s.byIDErr
	}
	return s.user, nil
}

func (s *stubProfileSource) SetProfileImageURL(userID uuid.UUID, url string) error {
	s.imageURL = url
	return nil
}

func newProfileApp(source *stubProfileSource, userID uuid.UUID) *fiber.App {
	handler := NewProfileHandler(source)

	app := fiber.New()
	app.Use(authenticated(userID))
	app.Get("/profile", handler.Get)
	app.Put("/profile/image", handler.UpdateImage)
	return app
}

func TestProfileGet(t *testing.T) {
	userID := uuid.New()
	today := time.Now().UTC().Format("2006-01-02")
	source := &stubProfileSource{user: &models.User{
		Username:       "maria",
		Email:          "maria@example.com",
		CurrentMood:    "Sad",
		LastActiveHour: "14",
		MoodHistory: datatypes.NewJSONType(map[string]string{
			today + "_0900":   "Happy",
			today + "_1400":   "Sad",
			"2024-04-30_0900": "Happy",
		}),
	}}
	app := newProfileApp(source, userID)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var profile dto.ProfileResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if profile.Username != "maria" || profile.CurrentMood != "Sad" {
		t.Errorf("identity = (%q, %q), want (maria, Sad)", profile.Username, profile.CurrentMood)
	}
	if profile.ReportCount != 3 {
		t.Errorf("report count = %d, want the full history size 3", profile.ReportCount)
	}

	if len(profile.TodayMoods) != 2 {
		t.Fatalf("today's slices = %v, want today's two moods only", profile.TodayMoods)
	}
	want := []dto.MoodSlice{
		{Mood: "Happy", Emoji: "😊", Color: "#FFCC00", Count: 1},
		{Mood: "Sad", Emoji: "😢", Color: "#007AFF", Count: 1},
	}
	for i, slice := range profile.TodayMoods {
		if slice != want[i] {
			t.Errorf("slice %d = %+v, want %+v", i, slice, want[i])
		}
	}
}

func TestProfileGetUserNotFound(t *testing.T) {
	source := &stubProfileSource{byIDErr: repository.ErrUserNotFound}
	app := newProfileApp(source, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestProfileUpdateImageRejectsRelativeURL(t *testing.T) {
	source := &stubProfileSource{}
	app := newProfileApp(source, uuid.New())

	resp := putJSON(t, app, "/profile/image", dto.UpdateProfileImageRequest{URL: "avatars/1.png"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if source.imageURL != "" {
		t.Errorf("image URL stored = %q, want no write for a relative URL", source.imageURL)
	}
}
