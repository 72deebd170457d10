package analyzer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MikeSquared-Agency/scribe/internal/anthropic"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func completionServer(t *testing.T, text string, onPrompt func(string)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if onPrompt != nil && len(req.Messages) > 0 {
			onPrompt(req.Messages[0].Content)
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": text},
			},
			"stop_reason": "end_turn",
		})
	}))
}

func TestAnalyzeConversation_Success(t *testing.T) {
	analysisJSON, _ := json.Marshal(Analysis{
		Summary: "Alice and Bob planned lunch.",
		OverallSentiment: Sentiment{
			Sentiment:   "positive",
			Confidence:  0.9,
			Explanation: "Friendly planning",
		},
		KeyTopics: []string{"lunch"},
		Actionables: []Actionable{
			{Action: "Book a table", Assignee: "Alice", Deadline: "Friday", Priority: "medium"},
		},
	})

	var gotPrompt string
	server := completionServer(t, string(analysisJSON), func(p string) { gotPrompt = p })
	defer server.Close()

	llm := anthropic.NewClient("test-key", "test-model")
	llm.SetTestTransport(server.URL)

	a := New(llm, discardLogger())
	result, err := a.AnalyzeConversation(context.Background(),
		"01/15/25, 10:30 AM - Alice: Lunch on Friday?", []string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Summary != "Alice and Bob planned lunch." {
		t.Errorf("summary = %q", result.Summary)
	}
	if result.OverallSentiment.Sentiment != "positive" {
		t.Errorf("sentiment = %q", result.OverallSentiment.Sentiment)
	}
	if len(result.Actionables) != 1 || result.Actionables[0].Assignee != "Alice" {
		t.Errorf("actionables = %+v", result.Actionables)
	}

	if !strings.Contains(gotPrompt, "Alice, Bob") {
		t.Error("prompt missing participant list")
	}
	if !strings.Contains(gotPrompt, "Lunch on Friday?") {
		t.Error("prompt missing chat text")
	}
}

func TestAnalyzeConversation_FencedJSON(t *testing.T) {
	fenced := "Here is the analysis:\n```json\n{\"summary\":\"fenced\",\"overall_sentiment\":{\"sentiment\":\"neutral\",\"confidence\":0.8,\"explanation\":\"x\"}}\n```"
	server := completionServer(t, fenced, nil)
	defer server.Close()

	llm := anthropic.NewClient("test-key", "test-model")
	llm.SetTestTransport(server.URL)

	a := New(llm, discardLogger())
	result, err := a.AnalyzeConversation(context.Background(), "text", []string{"Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Summary != "fenced" {
		t.Errorf("summary = %q, want fenced block contents", result.Summary)
	}
}

func TestAnalyzeConversation_ProseFallsBackNeutral(t *testing.T) {
	server := completionServer(t, "I could not produce JSON, sorry.", nil)
	defer server.Close()

	llm := anthropic.NewClient("test-key", "test-model")
	llm.SetTestTransport(server.URL)

	a := New(llm, discardLogger())
	result, err := a.AnalyzeConversation(context.Background(), "text", []string{"Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OverallSentiment.Sentiment != "neutral" {
		t.Errorf("fallback sentiment = %q, want neutral", result.OverallSentiment.Sentiment)
	}
	if !strings.Contains(result.Summary, "could not produce JSON") {
		t.Errorf("fallback summary should carry raw text, got %q", result.Summary)
	}
}

func TestQuickSummary_TruncatesLongChats(t *testing.T) {
	var gotPrompt string
	server := completionServer(t, "Short summary.", func(p string) { gotPrompt = p })
	defer server.Close()

	llm := anthropic.NewClient("test-key", "test-model")
	llm.SetTestTransport(server.URL)

	a := New(llm, discardLogger())
	long := strings.Repeat("x", 10000)
	summary, err := a.QuickSummary(context.Background(), long)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "Short summary." {
		t.Errorf("summary = %q", summary)
	}
	if strings.Count(gotPrompt, "x") > quickSummaryMaxChars {
		t.Errorf("prompt carries %d chat chars, want at most %d", strings.Count(gotPrompt, "x"), quickSummaryMaxChars)
	}
}

func TestParseAnalysisResponse_BracesInsideProse(t *testing.T) {
	raw := `The result is {"summary":"embedded","overall_sentiment":{"sentiment":"mixed","confidence":0.6,"explanation":"y"}} as requested.`
	result := parseAnalysisResponse(raw)

	if result.Summary != "embedded" {
		t.Errorf("summary = %q, want brace-scan extraction", result.Summary)
	}
	if result.OverallSentiment.Sentiment != "mixed" {
		t.Errorf("sentiment = %q", result.OverallSentiment.Sentiment)
	}
}

func TestFallbackAnalysis_TruncatesSummary(t *testing.T) {
	raw := strings.Repeat("a", 600)
	result := fallbackAnalysis(raw)

	if len(result.Summary) != 503 { // 500 chars + "..."
		t.Errorf("fallback summary length = %d", len(result.Summary))
	}
	if !strings.HasSuffix(result.Summary, "...") {
		t.Error("expected truncation marker")
	}
}
