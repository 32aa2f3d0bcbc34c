package handlers

import (
	"errors"
	"net/url"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/moodworks/moodlog-backend/internal/dto"
	"github.com/moodworks/moodlog-backend/internal/journal"
	"github.com/moodworks/moodlog-backend/internal/middleware"
	"github.com/moodworks/moodlog-backend/internal/models"
	"github.com/moodworks/moodlog-backend/internal/mood"
	"github.com/moodworks/moodlog-backend/internal/repository"
)

// ProfileSource is the slice of the user repository the profile screen needs.
type ProfileSource interface {
	ByID(userID uuid.UUID) (*models.User, error)
	SetProfileImageURL(userID uuid.UUID, url string) error
}

type ProfileHandler struct {
	users ProfileSource
}

func NewProfileHandler(users ProfileSource) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Get returns the profile screen's data: identity fields, the report count
// badge, and today's mood distribution for the pie chart.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	user, err := h.users.ByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	history := user.MoodHistory.Data()
	dist := journal.ComputeTodayDistribution(history, time.Now().UTC())

	slices := make([]dto.MoodSlice, 0, len(dist))
	for name, count := range dist {
		variant, _ := mood.Lookup(name)
		slices = append(slices, dto.MoodSlice{
			Mood:  name,
			Emoji: variant.Emoji,
			Color: variant.Color,
			Count: count,
		})
	}
	sort.Slice(slices, func(i, j int) bool { return slices[i].Mood < slices[j].Mood })

	return c.JSON(dto.ProfileResponse{
		Username:        user.Username,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
		CurrentMood:     user.CurrentMood,
		LastActiveHour:  user.LastActiveHour,
		ReportCount:     len(history),
		TodayMoods:      slices,
	})
}

// UpdateImage stores the URL of an already-uploaded profile image. Upload and
// CDN concerns live outside this service.
func (h *ProfileHandler) UpdateImage(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileImageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if u, err := url.Parse(req.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "url must be absolute",
		})
	}

	if err := h.users.SetProfileImageURL(userID, req.URL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile image",
		})
	}

	return c.JSON(fiber.Map{"message": "Profile image updated"})
}
