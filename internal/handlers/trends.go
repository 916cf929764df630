package handlers

import (
	"net/http"

	"journal-ai/internal/contextutil"
	"journal-ai/internal/service"
)

// TrendsHandler handles HTTP requests for the weekly mood trend aggregate.
type TrendsHandler struct {
	journal service.JournalService
}

// NewTrendsHandler creates a new TrendsHandler.
func NewTrendsHandler(journal service.JournalService) *TrendsHandler {
	return &TrendsHandler{journal: journal}
}

// MoodTrendResponse is a single dated mood observation.
type MoodTrendResponse struct {
	Date        string `json:"date"`
	MoodScore   int    `json:"mood_score"`
	MoodEmotion string `json:"mood_emotion"`
}

// WeeklyMoodStatsResponse represents the weekly mood trend payload.
type WeeklyMoodStatsResponse struct {
	WeeklyTrends      []MoodTrendResponse `json:"weekly_trends"`
	AverageMood       float64             `json:"average_mood"`
	MostCommonEmotion string              `json:"most_common_emotion"`
	TotalEntries      int                 `json:"total_entries"`
}

// ServeHTTP handles GET /api/mood-trends/weekly.
func (h *TrendsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	stats, err := h.journal.WeeklyTrends(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch mood trends", "error", err)
		writeServiceError(w, err, "Failed to fetch mood trends")
		return
	}

	trends := make([]MoodTrendResponse, 0, len(stats.Trends))
	for _, point := range stats.Trends {
		trends = append(trends, MoodTrendResponse{
			Date:        point.Date,
			MoodScore:   point.MoodScore,
			MoodEmotion: point.MoodEmotion,
		})
	}

	writeJSON(w, http.StatusOK, WeeklyMoodStatsResponse{
		WeeklyTrends:      trends,
		AverageMood:       stats.AverageMood,
		MostCommonEmotion: stats.MostCommonEmotion,
		TotalEntries:      stats.TotalEntries,
	})
}
