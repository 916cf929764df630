package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_entry_store.go -package=mocks journal-ai/internal/storage EntryStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// EntryStore defines the interface for journal entry storage operations.
type EntryStore interface {
	// Insert stores a new entry.
	Insert(ctx context.Context, entry *EntryRecord) error
	// GetByID gets an entry by its ID. Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*EntryRecord, error)
	// List returns entries ordered by creation time descending.
	// A negative limit means no limit.
	List(ctx context.Context, limit, skip int) ([]*EntryRecord, error)
	// Replace overwrites title, content, tags, mood fields and updated_at
	// of an existing entry. The id, date and created_at columns are never
	// touched. Returns ErrNotFound if the id does not exist.
	Replace(ctx context.Context, entry *EntryRecord) error
	// Delete removes an entry by ID. Returns ErrNotFound if the id does not exist.
	Delete(ctx context.Context, id string) error
	// ListMoodSince returns entries whose date is on or after the given day
	// and whose mood score is present, ordered ascending by date.
	ListMoodSince(ctx context.Context, since time.Time) ([]*EntryRecord, error)
	// ListDistinctTags returns the distinct non-empty tag values across all
	// entries in ascending lexical order.
	ListDistinctTags(ctx context.Context) ([]string, error)
}

// EntryRepo provides methods for journal entry operations.
// It implements the EntryStore interface.
type EntryRepo struct {
	db *sql.DB
}

// NewEntryRepo creates a new EntryRepo.
func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

const entryColumns = "id, title, content, tags, mood_score, mood_emotion, ai_summary, date, created_at, updated_at"

// Insert stores a new entry.
func (r *EntryRepo) Insert(ctx context.Context, entry *EntryRecord) error {
	tagsJSON, err := json.Marshal(tagsOrEmpty(entry.Tags))
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO entries (`+entryColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Title, entry.Content, string(tagsJSON),
		nullableInt(entry.MoodScore), nullableString(entry.MoodEmotion), nullableString(entry.AISummary),
		entry.Date.Format(DateFormat),
		entry.CreatedAt.Format(TimestampFormat),
		entry.UpdatedAt.Format(TimestampFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	return nil
}

// GetByID gets an entry by its ID.
// Returns nil and ErrNotFound if not found.
func (r *EntryRepo) GetByID(ctx context.Context, id string) (*EntryRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM entries WHERE id = ?", id)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query entry: %w", err)
	}

	return entry, nil
}

// List returns entries ordered by creation time descending, with
// skip/limit pagination. A negative limit returns all remaining rows.
func (r *EntryRepo) List(ctx context.Context, limit, skip int) ([]*EntryRecord, error) {
	if limit < 0 {
		limit = -1 // SQLite: LIMIT -1 means unbounded
	}
	if skip < 0 {
		skip = 0
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM entries ORDER BY created_at DESC LIMIT ? OFFSET ?",
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectEntries(rows)
}

// Replace overwrites the mutable fields of an existing entry.
// Returns ErrNotFound if the id does not exist.
func (r *EntryRepo) Replace(ctx context.Context, entry *EntryRecord) error {
	tagsJSON, err := json.Marshal(tagsOrEmpty(entry.Tags))
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE entries SET title = ?, content = ?, tags = ?,
		 mood_score = ?, mood_emotion = ?, ai_summary = ?, updated_at = ?
		 WHERE id = ?`,
		entry.Title, entry.Content, string(tagsJSON),
		nullableInt(entry.MoodScore), nullableString(entry.MoodEmotion), nullableString(entry.AISummary),
		entry.UpdatedAt.Format(TimestampFormat),
		entry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an entry by ID.
// Returns ErrNotFound if the id does not exist.
func (r *EntryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListMoodSince returns entries dated on or after the given day whose mood
// score is present, ordered ascending by date. The comparison is done on
// the ISO date strings, which sort chronologically.
func (r *EntryRepo) ListMoodSince(ctx context.Context, since time.Time) ([]*EntryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+entryColumns+` FROM entries
		 WHERE date >= ? AND mood_score IS NOT NULL
		 ORDER BY date ASC`,
		since.Format(DateFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return collectEntries(rows)
}

// ListDistinctTags returns the distinct non-empty tag values across all
// entries in ascending lexical order, using SQLite's json_each to unnest
// the JSON tags column.
func (r *EntryRepo) ListDistinctTags(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT je.value FROM entries, json_each(entries.tags) AS je
		 WHERE je.value <> '' ORDER BY je.value ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	return tags, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanEntry.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*EntryRecord, error) {
	var (
		entry        EntryRecord
		tagsJSON     string
		moodScore    sql.NullInt64
		moodEmotion  sql.NullString
		aiSummary    sql.NullString
		dateStr      string
		createdAtStr string
		updatedAtStr string
	)

	err := s.Scan(&entry.ID, &entry.Title, &entry.Content, &tagsJSON,
		&moodScore, &moodEmotion, &aiSummary,
		&dateStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tagsJSON), &entry.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}

	if moodScore.Valid {
		score := int(moodScore.Int64)
		entry.MoodScore = &score
	}
	entry.MoodEmotion = moodEmotion.String
	entry.AISummary = aiSummary.String

	if entry.Date, err = time.Parse(DateFormat, dateStr); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	if entry.CreatedAt, err = time.Parse(TimestampFormat, createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	if entry.UpdatedAt, err = time.Parse(TimestampFormat, updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}

	return &entry, nil
}

func collectEntries(rows *sql.Rows) ([]*EntryRecord, error) {
	entries := []*EntryRecord{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v string) any {
	if v == "" {
		return nil
	}
	return v
}
