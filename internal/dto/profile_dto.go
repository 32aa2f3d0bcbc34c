package dto

// MoodSlice is one slice of the today's-mood pie chart.
type MoodSlice struct {
	Mood  string `json:"mood"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

type ProfileResponse struct {
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	ProfileImageURL string      `json:"profile_image_url"`
	CurrentMood     string      `json:"current_mood"`
	LastActiveHour  string      `json:"last_active_hour"`
	ReportCount     int         `json:"report_count"`
	TodayMoods      []MoodSlice `json:"today_moods"`
}

type UpdateProfileImageRequest struct {
	URL string `json:"url"`
}
