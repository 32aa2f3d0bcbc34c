package journal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	// ErrEmptyAnswers is returned before any store call when every answer is
	// blank after trimming.
	ErrEmptyAnswers = errors.New("at least one answer is required")
	// ErrPersistEntry marks a failed entry append.
	ErrPersistEntry = errors.New("failed to persist journal entry")
	// ErrHistoryMerge marks a failed mood-history merge-update.
	ErrHistoryMerge = errors.New("failed to update mood history")
	// ErrFetchEntries marks a failed entry listing.
	ErrFetchEntries = errors.New("failed to fetch journal entries")
)

const (
	// historyKeyLayout keys moodHistory at minute granularity. A second
	// selection in the same minute overwrites the first.
	historyKeyLayout = "2006-01-02_1504"
	hourLayout       = "15"
	dayLayout        = "2006-01-02"
)

// Aggregator merges new journal entries into the append-only entry
// collection and the compacted per-user mood history, and derives the
// day-bucket and distribution views the profile and calendar screens render.
type Aggregator struct {
	entries  EntryStore
	profiles ProfileStore
}

func NewAggregator(entries EntryStore, profiles ProfileStore) *Aggregator {
	return &Aggregator{entries: entries, profiles: profiles}
}

// RecordEntry appends a journal entry and merges the (minute, mood) pair into
// the user's mood history. The two writes are independent and both are
// attempted even if the other fails; a partial failure is recoverable by the
// user repeating the action, so there is no rollback.
func (a *Aggregator) RecordEntry(userID uuid.UUID, mood string, answers map[string]string, now time.Time) (*Entry, error) {
	// All derived keys (minute key, hour, day buckets) use UTC so an entry
	// always lands on the same calendar day as the distribution that reads it.
	now = now.UTC()

	cleaned := pruneAnswers(answers)
	if len(cleaned) == 0 {
		return nil, ErrEmptyAnswers
	}

	entry := &Entry{
		ID:      uuid.New(),
		UserID:  userID,
		Date:    now,
		Mood:    mood,
		Answers: datatypes.NewJSONType(cleaned),
	}

	var errs []error
	if err := a.entries.Append(entry); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrPersistEntry, err))
	}

	if err := a.mergeHistory(userID, mood, now); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrHistoryMerge, err))
	}

	if len(errs) > 0 {
		return entry, errors.Join(errs...)
	}
	return entry, nil
}

// mergeHistory is a read-merge-write: last writer wins on concurrent updates
// for the same user. The cooldown gate keeps legitimate concurrency near
// zero and the worst case loses one minute-granularity key.
func (a *Aggregator) mergeHistory(userID uuid.UUID, mood string, now time.Time) error {
	history, err := a.profiles.MoodHistory(userID)
	if err != nil {
		return err
	}
	if history == nil {
		history = make(map[string]string)
	}

	history[now.Format(historyKeyLayout)] = mood

	return a.profiles.MergeMoodUpdate(userID, mood, now.Format(hourLayout), history)
}

// FetchDayBuckets groups all of the user's entries by UTC calendar day,
// ascending. An empty entry set yields an empty slice, not an error.
func (a *Aggregator) FetchDayBuckets(userID uuid.UUID) ([]DayBucket, error) {
	entries, err := a.entries.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchEntries, err)
	}

	grouped := make(map[time.Time][]Entry)
	for _, e := range entries {
		day := startOfDay(e.Date)
		grouped[day] = append(grouped[day], e)
	}

	days := make([]time.Time, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	buckets := make([]DayBucket, 0, len(days))
	for _, day := range days {
		buckets = append(buckets, DayBucket{Day: day, Entries: grouped[day]})
	}
	return buckets, nil
}

// ComputeTodayDistribution tallies the moods recorded on referenceDay.
// An empty result means insufficient data, not an error.
func ComputeTodayDistribution(history map[string]string, referenceDay time.Time) map[string]int {
	prefix := referenceDay.Format(dayLayout)

	dist := make(map[string]int)
	for key, mood := range history {
		if strings.HasPrefix(key, prefix) {
			dist[mood]++
		}
	}
	return dist
}

// LocateBucketForDate finds the bucket whose day matches date's calendar day,
// ignoring time of day. ok is false when no entries exist for that day.
func LocateBucketForDate(buckets []DayBucket, date time.Time) (int, bool) {
	day := startOfDay(date)
	for i, b := range buckets {
		if b.Day.Equal(day) {
			return i, true
		}
	}
	return 0, false
}

// pruneAnswers drops questions whose answer is blank after trimming. Answers
// that survive are stored as typed, untrimmed.
func pruneAnswers(answers map[string]string) map[string]string {
	cleaned := make(map[string]string, len(answers))
	for question, answer := range answers {
		if strings.TrimSpace(answer) == "" {
			continue
		}
		cleaned[question] = answer
	}
	return cleaned
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
