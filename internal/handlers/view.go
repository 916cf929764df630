package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghhtml "github.com/yuin/goldmark/renderer/html"

	"journal-ai/internal/contextutil"
	"journal-ai/internal/service"
	"journal-ai/internal/storage"
)

// ViewHandler serves journal entries as rendered HTML pages.
type ViewHandler struct {
	journal  service.JournalService
	parser   goldmark.Markdown
	template *template.Template
}

// entryPageData holds template data for rendered entry pages.
type entryPageData struct {
	Title   string
	Date    string
	Mood    string
	Summary string
	Tags    string
	Content template.HTML
}

// NewViewHandler creates a new handler for serving entry pages.
func NewViewHandler(journal service.JournalService) *ViewHandler {
	tmpl := template.Must(template.New("entry").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    :root {
      color-scheme: dark;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 760px;
      line-height: 1.7;
      background: #0b1020;
      color: #e4ecff;
    }
    header {
      margin-bottom: 2rem;
      border-bottom: 1px solid rgba(148, 163, 184, 0.2);
      padding-bottom: 1.5rem;
    }
    h1 {
      margin-top: 0;
      color: #fff;
      font-size: 2rem;
    }
    article {
      background: rgba(15, 23, 42, 0.85);
      border: 1px solid rgba(99, 102, 241, 0.2);
      border-radius: 16px;
      padding: 2rem;
    }
    article p {
      color: #cbd5f5;
    }
    blockquote {
      border-left: 4px solid rgba(96, 165, 250, 0.6);
      padding-left: 1rem;
      margin-left: 0;
      color: #93c5fd;
    }
    .meta {
      color: #94a3b8;
      font-size: 0.95rem;
      margin-top: 0.5rem;
    }
    .summary {
      color: #a5b4fc;
      font-style: italic;
      margin-top: 0.75rem;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="meta">{{.Date}}{{if .Mood}} &middot; {{.Mood}}{{end}}{{if .Tags}} &middot; {{.Tags}}{{end}}</p>
    {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
  </header>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &ViewHandler{
		journal: journal,
		parser: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.Typographer,
			),
			goldmark.WithRendererOptions(
				ghhtml.WithHardWraps(),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
		template: tmpl,
	}
}

// ServeHTTP renders the requested entry as an HTML page.
func (h *ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	entry, err := h.journal.GetEntry(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "failed to fetch entry for view", "id", id, "error", err)
		writeServiceError(w, err, "Failed to fetch entry")
		return
	}

	var buf bytes.Buffer
	if err := h.parser.Convert([]byte(entry.Content), &buf); err != nil {
		logger.ErrorContext(ctx, "failed to render entry", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render entry")
		return
	}

	pageData := entryPageData{
		Title:   entry.Title,
		Date:    entry.Date.Format(storage.DateFormat),
		Mood:    formatMood(entry),
		Summary: entry.AISummary,
		Tags:    strings.Join(entry.Tags, ", "),
		Content: template.HTML(buf.String()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, pageData); err != nil {
		logger.ErrorContext(ctx, "failed to execute entry template", "id", id, "error", err)
	}
}

func formatMood(entry *storage.EntryRecord) string {
	if entry.MoodScore == nil || entry.MoodEmotion == "" {
		return ""
	}
	return fmt.Sprintf("%s (%d/10)", entry.MoodEmotion, *entry.MoodScore)
}
