package storage

import "time"

// Storage formats for the date and timestamp columns. Dates are kept at
// day granularity; timestamps keep full precision. Both are TEXT columns
// so stored values sort lexically in chronological order.
const (
	DateFormat      = "2006-01-02"
	TimestampFormat = time.RFC3339Nano
)

// EntryRecord represents a journal entry in the database.
type EntryRecord struct {
	ID          string    // UUID, assigned at creation, immutable
	Title       string
	Content     string
	Tags        []string  // Client-supplied order, stored as a JSON array
	MoodScore   *int      // 1-10, nil when analysis has not populated it
	MoodEmotion string    // Empty when absent
	AISummary   string    // Empty when absent
	Date        time.Time // Calendar day (UTC midnight)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
