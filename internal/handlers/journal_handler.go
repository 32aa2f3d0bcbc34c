package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/moodworks/moodlog-backend/internal/dto"
	"github.com/moodworks/moodlog-backend/internal/journal"
	"github.com/moodworks/moodlog-backend/internal/middleware"
)

type JournalHandler struct {
	aggregator *journal.Aggregator
}

func NewJournalHandler(aggregator *journal.Aggregator) *JournalHandler {
	return &JournalHandler{aggregator: aggregator}
}

func (h *JournalHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateEntryRequest
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

	entry, err := h.aggregator.RecordEntry(userID, req.Mood, req.Answers, time.Now())
	if err != nil {
		if errors.Is(err, journal.ErrEmptyAnswers) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Please fill in at least one answer",
			})
		}
		// Partial failure: one of the two writes may have landed. The user
		// recovers by repeating the action; nothing is rolled back.
		slog.Error("journal entry write failed", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not save your entry",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *JournalHandler) Days(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	buckets, err := h.aggregator.FetchDayBuckets(userID)
	if err != nil {
		slog.Error("day bucket fetch failed", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch journal entries",
		})
	}

	return c.JSON(dto.DayBucketsResponse{Days: buckets, Total: len(buckets)})
}

// LocateDay maps a calendar-picker date to its bucket index.
func (h *JournalHandler) LocateDay(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "date must be yyyy-MM-dd",
		})
	}

	buckets, err := h.aggregator.FetchDayBuckets(userID)
	if err != nil {
		slog.Error("day bucket fetch failed", "user_id", userID.String(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch journal entries",
		})
	}

	index, ok := journal.LocateBucketForDate(buckets, date)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "No entries for that day",
		})
	}

	return c.JSON(dto.LocateBucketResponse{
		Index: index,
		Day:   buckets[index].Day.Format("2006-01-02"),
	})
}
