package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_journal_service.go -package=mocks -mock_names=JournalService=MockJournalService journal-ai/internal/service JournalService

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"journal-ai/internal/storage"
)

// EntryInput carries the client-supplied fields of a journal entry.
type EntryInput struct {
	Title   string
	Content string
	Tags    []string
}

// MoodTrendPoint is a single dated mood observation in the weekly trend.
type MoodTrendPoint struct {
	Date        string
	MoodScore   int
	MoodEmotion string
}

// WeeklyMoodStats aggregates the mood of the trailing seven days.
type WeeklyMoodStats struct {
	Trends            []MoodTrendPoint
	AverageMood       float64
	MostCommonEmotion string
	TotalEntries      int
}

// JournalService provides journal entry operations.
type JournalService interface {
	// CreateEntry validates the input, runs mood analysis and persists a new entry.
	CreateEntry(ctx context.Context, in EntryInput) (*storage.EntryRecord, error)
	// GetEntry returns an entry by ID. Returns ErrNotFound if absent.
	GetEntry(ctx context.Context, id string) (*storage.EntryRecord, error)
	// ListEntries returns entries ordered by creation time descending.
	// A negative limit means no limit.
	ListEntries(ctx context.Context, limit, skip int) ([]*storage.EntryRecord, error)
	// UpdateEntry re-runs mood analysis and replaces the mutable fields of an
	// existing entry. The id, date and created_at fields survive untouched.
	// Returns ErrNotFound if absent.
	UpdateEntry(ctx context.Context, id string, in EntryInput) (*storage.EntryRecord, error)
	// DeleteEntry removes an entry by ID. Returns ErrNotFound if absent.
	DeleteEntry(ctx context.Context, id string) error
	// WeeklyTrends aggregates mood over entries dated within the trailing
	// seven days (rolling cutoff, inclusive).
	WeeklyTrends(ctx context.Context) (*WeeklyMoodStats, error)
	// ListTags returns the distinct non-empty tags across all entries in
	// ascending lexical order.
	ListTags(ctx context.Context) ([]string, error)
}

// journalService implements JournalService.
type journalService struct {
	store    storage.EntryStore
	analyzer MoodAnalyzer
	logger   *slog.Logger
}

// NewJournalService creates a new JournalService.
func NewJournalService(store storage.EntryStore, analyzer MoodAnalyzer) JournalService {
	return &journalService{
		store:    store,
		analyzer: analyzer,
		logger:   slog.Default(),
	}
}

// CreateEntry validates the input, runs mood analysis synchronously and
// persists the composed entry. The analyzer call has no side effect, so a
// persistence failure needs no compensation.
func (s *journalService) CreateEntry(ctx context.Context, in EntryInput) (*storage.EntryRecord, error) {
	if err := validateEntryInput(in); err != nil {
		return nil, err
	}

	mood := s.analyzer.Analyze(ctx, in.Title, in.Content)

	now := time.Now().UTC()
	score := mood.Score
	entry := &storage.EntryRecord{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Content:     in.Content,
		Tags:        tagsOrEmpty(in.Tags),
		MoodScore:   &score,
		MoodEmotion: mood.Emotion,
		AISummary:   mood.Summary,
		Date:        truncateToDay(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Insert(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to store entry", "error", err)
		return nil, WrapError(err, "failed to store entry")
	}

	s.logger.InfoContext(ctx, "entry created", "id", entry.ID, "mood_score", score, "mood_emotion", mood.Emotion)
	return entry, nil
}

// GetEntry returns an entry by ID.
func (s *journalService) GetEntry(ctx context.Context, id string) (*storage.EntryRecord, error) {
	entry, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, WrapError(err, "failed to fetch entry")
	}
	return entry, nil
}

// ListEntries returns entries ordered by creation time descending.
func (s *journalService) ListEntries(ctx context.Context, limit, skip int) ([]*storage.EntryRecord, error) {
	entries, err := s.store.List(ctx, limit, skip)
	if err != nil {
		return nil, WrapError(err, "failed to list entries")
	}
	return entries, nil
}

// UpdateEntry re-runs mood analysis against the new content and replaces
// title, content, tags, mood fields and updated_at as one document replace.
// Concurrent updates to the same entry race with last-write-wins semantics.
func (s *journalService) UpdateEntry(ctx context.Context, id string, in EntryInput) (*storage.EntryRecord, error) {
	if err := validateEntryInput(in); err != nil {
		return nil, err
	}

	mood := s.analyzer.Analyze(ctx, in.Title, in.Content)

	score := mood.Score
	entry := &storage.EntryRecord{
		ID:          id,
		Title:       in.Title,
		Content:     in.Content,
		Tags:        tagsOrEmpty(in.Tags),
		MoodScore:   &score,
		MoodEmotion: mood.Emotion,
		AISummary:   mood.Summary,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.store.Replace(ctx, entry); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.ErrorContext(ctx, "failed to update entry", "id", id, "error", err)
		return nil, WrapError(err, "failed to update entry")
	}

	updated, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, WrapError(err, "failed to fetch updated entry")
	}

	s.logger.InfoContext(ctx, "entry updated", "id", id, "mood_score", score, "mood_emotion", mood.Emotion)
	return updated, nil
}

// DeleteEntry removes an entry by ID. A repeated delete of the same id
// yields ErrNotFound, not an internal error.
func (s *journalService) DeleteEntry(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return WrapError(err, "failed to delete entry")
	}

	s.logger.InfoContext(ctx, "entry deleted", "id", id)
	return nil
}

// WeeklyTrends selects entries dated within the last seven calendar days
// (rolling now-7d cutoff, inclusive) whose mood score is present, ordered
// ascending by date, and computes the average score and the most frequent
// emotion. Zero qualifying entries yield a defined neutral default.
func (s *journalService) WeeklyTrends(ctx context.Context) (*WeeklyMoodStats, error) {
	cutoff := truncateToDay(time.Now().UTC().AddDate(0, 0, -7))

	entries, err := s.store.ListMoodSince(ctx, cutoff)
	if err != nil {
		return nil, WrapError(err, "failed to fetch mood trends")
	}

	if len(entries) == 0 {
		return &WeeklyMoodStats{
			Trends:            []MoodTrendPoint{},
			AverageMood:       float64(FallbackMoodScore),
			MostCommonEmotion: FallbackMoodEmotion,
			TotalEntries:      0,
		}, nil
	}

	trends := make([]MoodTrendPoint, 0, len(entries))
	counts := make(map[string]int)
	order := make([]string, 0, len(entries)) // Emotions in first-encountered order
	total := 0

	for _, entry := range entries {
		trends = append(trends, MoodTrendPoint{
			Date:        entry.Date.Format(storage.DateFormat),
			MoodScore:   *entry.MoodScore,
			MoodEmotion: entry.MoodEmotion,
		})
		if counts[entry.MoodEmotion] == 0 {
			order = append(order, entry.MoodEmotion)
		}
		counts[entry.MoodEmotion]++
		total += *entry.MoodScore
	}

	// Ties break toward the emotion first encountered in date order
	mostCommon := order[0]
	for _, emotion := range order {
		if counts[emotion] > counts[mostCommon] {
			mostCommon = emotion
		}
	}

	average := math.Round(float64(total)/float64(len(entries))*10) / 10

	return &WeeklyMoodStats{
		Trends:            trends,
		AverageMood:       average,
		MostCommonEmotion: mostCommon,
		TotalEntries:      len(entries),
	}, nil
}

// ListTags returns the distinct non-empty tags across all entries.
func (s *journalService) ListTags(ctx context.Context) ([]string, error) {
	tags, err := s.store.ListDistinctTags(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list tags")
	}
	return tags, nil
}

func validateEntryInput(in EntryInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Message: "cannot be empty"}
	}
	if strings.TrimSpace(in.Content) == "" {
		return &ValidationError{Field: "content", Message: "cannot be empty"}
	}
	return nil
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
