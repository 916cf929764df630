package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"journal-ai/internal/service"
	"journal-ai/internal/service/mocks"
	"journal-ai/internal/storage"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockJournal := mocks.NewMockJournalService(ctrl)

	entry := &storage.EntryRecord{
		ID:      "entry-1",
		Title:   "Day One",
		Content: "Great day",
		Tags:    []string{},
		Date:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	mockJournal.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(entry, nil).AnyTimes()
	mockJournal.EXPECT().ListEntries(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*storage.EntryRecord{}, nil).AnyTimes()
	mockJournal.EXPECT().GetEntry(gomock.Any(), gomock.Any()).Return(entry, nil).AnyTimes()
	mockJournal.EXPECT().UpdateEntry(gomock.Any(), gomock.Any(), gomock.Any()).Return(entry, nil).AnyTimes()
	mockJournal.EXPECT().DeleteEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockJournal.EXPECT().WeeklyTrends(gomock.Any()).Return(&service.WeeklyMoodStats{
		Trends:            []service.MoodTrendPoint{},
		AverageMood:       5.0,
		MostCommonEmotion: "neutral",
	}, nil).AnyTimes()
	mockJournal.EXPECT().ListTags(gomock.Any()).Return([]string{}, nil).AnyTimes()

	db, err := storage.New(filepath.Join(t.TempDir(), "router.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewRouter(&Deps{
		Journal:     mockJournal,
		DB:          db,
		CORSOrigins: []string{"*"},
	})
}

func TestNewRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{http.MethodGet, "/api/", "", http.StatusOK},
		{http.MethodPost, "/api/entries", `{"title":"Day One","content":"Great day"}`, http.StatusOK},
		{http.MethodGet, "/api/entries", "", http.StatusOK},
		{http.MethodGet, "/api/entries/entry-1", "", http.StatusOK},
		{http.MethodPut, "/api/entries/entry-1", `{"title":"Day One","content":"Great day"}`, http.StatusOK},
		{http.MethodDelete, "/api/entries/entry-1", "", http.StatusOK},
		{http.MethodGet, "/api/entries/entry-1/view", "", http.StatusOK},
		{http.MethodGet, "/api/mood-trends/weekly", "", http.StatusOK},
		{http.MethodGet, "/api/tags", "", http.StatusOK},
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodGet, "/api/nonexistent", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestNewRouter_Root(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["message"] != "Journal App API" {
		t.Errorf("root message = %q, want %q", resp["message"], "Journal App API")
	}
}

func TestNewRouter_AppliesCORS(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/entries", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %v, want %v", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q, want request origin echoed", got)
	}
}
