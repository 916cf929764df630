package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"journal-ai/internal/contextutil"
	"journal-ai/internal/service"
	"journal-ai/internal/storage"
)

// defaultListLimit applies when the caller does not supply a limit.
const defaultListLimit = 50

// EntryHandler handles HTTP requests for journal entry CRUD operations.
type EntryHandler struct {
	journal service.JournalService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(journal service.JournalService) *EntryHandler {
	return &EntryHandler{journal: journal}
}

// EntryRequest represents the HTTP request payload for creating or updating
// an entry.
type EntryRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// EntryResponse represents a journal entry in HTTP responses. The date is a
// plain calendar day; timestamps are RFC 3339.
type EntryResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	MoodScore   *int     `json:"mood_score,omitempty"`
	MoodEmotion string   `json:"mood_emotion,omitempty"`
	AISummary   string   `json:"ai_summary,omitempty"`
	Date        string   `json:"date"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func toEntryResponse(entry *storage.EntryRecord) EntryResponse {
	return EntryResponse{
		ID:          entry.ID,
		Title:       entry.Title,
		Content:     entry.Content,
		Tags:        entry.Tags,
		MoodScore:   entry.MoodScore,
		MoodEmotion: entry.MoodEmotion,
		AISummary:   entry.AISummary,
		Date:        entry.Date.Format(storage.DateFormat),
		CreatedAt:   entry.CreatedAt.Format(storage.TimestampFormat),
		UpdatedAt:   entry.UpdatedAt.Format(storage.TimestampFormat),
	}
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.journal.CreateEntry(ctx, service.EntryInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create entry", "error", err)
		writeServiceError(w, err, "Failed to create journal entry")
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// List handles GET /api/entries with optional limit and skip query parameters.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	skip := 0
	if raw := r.URL.Query().Get("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "skip must be an integer")
			return
		}
		skip = parsed
	}

	entries, err := h.journal.ListEntries(ctx, limit, skip)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list entries", "error", err)
		writeServiceError(w, err, "Failed to fetch entries")
		return
	}

	resp := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, toEntryResponse(entry))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	entry, err := h.journal.GetEntry(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "failed to fetch entry", "id", id, "error", err)
		writeServiceError(w, err, "Failed to fetch entry")
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Update handles PUT /api/entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	entry, err := h.journal.UpdateEntry(ctx, id, service.EntryInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		logger.WarnContext(ctx, "failed to update entry", "id", id, "error", err)
		writeServiceError(w, err, "Failed to update entry")
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	if err := h.journal.DeleteEntry(ctx, id); err != nil {
		logger.WarnContext(ctx, "failed to delete entry", "id", id, "error", err)
		writeServiceError(w, err, "Failed to delete entry")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Entry deleted successfully"})
}
