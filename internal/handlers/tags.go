package handlers

import (
	"net/http"

	"journal-ai/internal/contextutil"
	"journal-ai/internal/service"
)

// TagsHandler handles HTTP requests for the distinct tag aggregate.
type TagsHandler struct {
	journal service.JournalService
}

// NewTagsHandler creates a new TagsHandler.
func NewTagsHandler(journal service.JournalService) *TagsHandler {
	return &TagsHandler{journal: journal}
}

// TagsResponse represents the tag list payload.
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// ServeHTTP handles GET /api/tags.
func (h *TagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	tags, err := h.journal.ListTags(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch tags", "error", err)
		writeServiceError(w, err, "Failed to fetch tags")
		return
	}

	writeJSON(w, http.StatusOK, TagsResponse{Tags: tags})
}
