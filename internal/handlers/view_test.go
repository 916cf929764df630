package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"journal-ai/internal/service"
	"journal-ai/internal/service/mocks"
	"journal-ai/internal/storage"
)

func newViewRouter(h *ViewHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/entries/{id}/view", h.ServeHTTP)
	return r
}

func TestViewHandler_RendersMarkdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	score := 8
	entry := &storage.EntryRecord{
		ID:          "entry-1",
		Title:       "Hiking Day",
		Content:     "# Morning\n\nWe reached the **summit** before noon.",
		Tags:        []string{"hiking", "outdoors"},
		MoodScore:   &score,
		MoodEmotion: "excited",
		AISummary:   "An energizing day outdoors.",
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	mockJournal := mocks.NewMockJournalService(ctrl)
	mockJournal.EXPECT().GetEntry(gomock.Any(), "entry-1").Return(entry, nil)

	router := newViewRouter(NewViewHandler(mockJournal))
	req := httptest.NewRequest(http.MethodGet, "/api/entries/entry-1/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	body := w.Body.String()
	for _, want := range []string{
		"<strong>summit</strong>",
		"Hiking Day",
		"2026-09-01",
		"excited (8/10)",
		"An energizing day outdoors.",
		"hiking, outdoors",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestViewHandler_UnscoredEntryOmitsMood(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entry := &storage.EntryRecord{
		ID:      "entry-2",
		Title:   "Quick Note",
		Content: "Plain text only.",
		Tags:    []string{},
		Date:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}

	mockJournal := mocks.NewMockJournalService(ctrl)
	mockJournal.EXPECT().GetEntry(gomock.Any(), "entry-2").Return(entry, nil)

	router := newViewRouter(NewViewHandler(mockJournal))
	req := httptest.NewRequest(http.MethodGet, "/api/entries/entry-2/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, http.StatusOK)
	}
	if strings.Contains(w.Body.String(), "/10)") {
		t.Error("unscored entry should not show a mood rating")
	}
}

func TestViewHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJournal := mocks.NewMockJournalService(ctrl)
	mockJournal.EXPECT().GetEntry(gomock.Any(), "missing").Return(nil, service.ErrNotFound)

	router := newViewRouter(NewViewHandler(mockJournal))
	req := httptest.NewRequest(http.MethodGet, "/api/entries/missing/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("ServeHTTP() status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestFormatMood(t *testing.T) {
	score := 3
	tests := []struct {
		name  string
		entry *storage.EntryRecord
		want  string
	}{
		{"scored", &storage.EntryRecord{MoodScore: &score, MoodEmotion: "sad"}, "sad (3/10)"},
		{"no score", &storage.EntryRecord{MoodEmotion: "sad"}, ""},
		{"no emotion", &storage.EntryRecord{MoodScore: &score}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMood(tt.entry); got != tt.want {
				t.Errorf("formatMood() = %q, want %q", got, tt.want)
			}
		})
	}
}
