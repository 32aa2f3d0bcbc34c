package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/moodworks/moodlog-backend/internal/cooldown"
	"github.com/moodworks/moodlog-backend/internal/dto"
	"github.com/moodworks/moodlog-backend/internal/middleware"
	"github.com/moodworks/moodlog-backend/internal/mood"
)

type MoodHandler struct {
	sessions *cooldown.Sessions
}

func NewMoodHandler(sessions *cooldown.Sessions) *MoodHandler {
	return &MoodHandler{sessions: sessions}
}

// List returns the mood catalog for the selection grid.
func (h *MoodHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"moods": mood.Variants()})
}

// Select registers a mood selection behind the cooldown gate and returns the
// variant's tip and question set. Unknown mood names get the default variant.
func (h *MoodHandler) Select(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SelectMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Mood == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "mood is required",
		})
	}

	decision := h.sessions.TryRegisterSelection(userID, time.Now())
	if !decision.Allowed {
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.CooldownResponse{
			Error:      true,
			Message:    "You can choose a new mood shortly",
			RetryAfter: decision.RetryAfter,
		})
	}

	variant, _ := mood.Lookup(req.Mood)
	return c.JSON(dto.SelectMoodResponse{
		Mood:      req.Mood,
		Emoji:     variant.Emoji,
		Tip:       variant.Tip,
		Questions: variant.Questions,
	})
}

// ResetCooldown drops the caller's session gate, mirroring the client
// navigating away from the mood screen.
func (h *MoodHandler) ResetCooldown(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	h.sessions.Reset(userID)
	return c.JSON(fiber.Map{"message": "Cooldown reset"})
}
