package dto

import "github.com/moodworks/moodlog-backend/internal/journal"

type CreateEntryRequest struct {
	Mood    string            `json:"mood"`
	Answers map[string]string `json:"answers"`
}

type DayBucketsResponse struct {
	Days  []journal.DayBucket `json:"days"`
	Total int                 `json:"total"`
}

type LocateBucketResponse struct {
	Index int    `json:"index"`
	Day   string `json:"day"`
}

type SelectMoodRequest struct {
	Mood string `json:"mood"`
}

type SelectMoodResponse struct {
	Mood      string   `json:"mood"`
	Emoji     string   `json:"emoji"`
	Tip       string   `json:"tip"`
	Questions []string `json:"questions"`
}

type CooldownResponse struct {
	Error      bool   `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}
