package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks journal-ai/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_mood_analyzer.go -package=mocks journal-ai/internal/service MoodAnalyzer

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
)

// LLMClient is an interface for interacting with an LLM API.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// Chat sends a system instruction and a user message to the LLM and
	// returns the reply.
	Chat(ctx context.Context, system, user string) (string, error)
}

// Emotions is the fixed vocabulary the analyzer asks the model to pick from.
var Emotions = []string{
	"happy", "sad", "anxious", "excited", "calm",
	"angry", "grateful", "stressed", "content", "melancholy",
}

// Fallback values substituted whenever analysis fails.
const (
	FallbackMoodScore   = 5
	FallbackMoodEmotion = "neutral"
	FallbackSummary     = "Analysis temporarily unavailable"
)

const moodSystemPrompt = `You are a mood analysis expert. Analyze the given journal entry and provide:
1. A mood score from 1-10 (where 1 is very negative/sad, 10 is very positive/happy)
2. A primary emotion category (happy, sad, anxious, excited, calm, angry, grateful, stressed, content, melancholy)
3. A brief 2-3 sentence summary of the entry

Respond in this exact JSON format:
{
    "mood_score": 7,
    "mood_emotion": "content",
    "summary": "Brief summary here"
}`

// MoodResult is the outcome of analyzing an entry. It is always usable:
// failed analysis yields the fallback values, never an error.
type MoodResult struct {
	Score   int
	Emotion string
	Summary string
}

// MoodAnalyzer derives a mood score, emotion label and summary from entry
// text. The contract is total: implementations never fail, substituting a
// neutral fallback when the external model is unavailable or returns
// unusable output.
type MoodAnalyzer interface {
	Analyze(ctx context.Context, title, content string) MoodResult
}

// moodAnalyzer implements MoodAnalyzer over an external LLM.
type moodAnalyzer struct {
	llm    LLMClient
	logger *slog.Logger
}

// NewMoodAnalyzer creates a new MoodAnalyzer backed by the given LLM client.
func NewMoodAnalyzer(llm LLMClient) MoodAnalyzer {
	return &moodAnalyzer{
		llm:    llm,
		logger: slog.Default(),
	}
}

// Analyze sends the entry text to the LLM and parses the reply. A single
// attempt is made, synchronously; any transport failure, non-JSON reply,
// missing key or out-of-range score yields the fallback triple.
func (a *moodAnalyzer) Analyze(ctx context.Context, title, content string) MoodResult {
	user := "Title: " + title + "\n\nContent: " + content +
		"\n\nPlease analyze this journal entry for mood and provide a summary."

	reply, err := a.llm.Chat(ctx, moodSystemPrompt, user)
	if err != nil {
		a.logger.WarnContext(ctx, "mood analysis failed, using fallback", "error", err)
		return fallbackMoodResult()
	}

	var parsed struct {
		MoodScore   *int    `json:"mood_score"`
		MoodEmotion *string `json:"mood_emotion"`
		Summary     *string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &parsed); err != nil {
		a.logger.WarnContext(ctx, "mood analysis returned non-JSON reply, using fallback", "error", err)
		return fallbackMoodResult()
	}

	if parsed.MoodScore == nil || parsed.MoodEmotion == nil || parsed.Summary == nil {
		a.logger.WarnContext(ctx, "mood analysis reply missing keys, using fallback")
		return fallbackMoodResult()
	}
	if *parsed.MoodScore < 1 || *parsed.MoodScore > 10 {
		a.logger.WarnContext(ctx, "mood analysis score out of range, using fallback", "score", *parsed.MoodScore)
		return fallbackMoodResult()
	}

	return MoodResult{
		Score:   *parsed.MoodScore,
		Emotion: *parsed.MoodEmotion,
		Summary: *parsed.Summary,
	}
}

func fallbackMoodResult() MoodResult {
	return MoodResult{
		Score:   FallbackMoodScore,
		Emotion: FallbackMoodEmotion,
		Summary: FallbackSummary,
	}
}

// stripCodeFence removes a surrounding Markdown code fence, which chat
// models commonly wrap JSON replies in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:] // Drop the language tag line ("json" etc.)
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
