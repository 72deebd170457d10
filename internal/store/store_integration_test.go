//go:build integration

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/MikeSquared-Agency/scribe/internal/analyzer"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestIntegration_SaveAndReadAnalysis(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	start := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	end := start.Add(5 * time.Minute)

	rec := ChatRecord{
		Filename:     "integration-test.txt",
		Participants: []string{"Alice", "Bob"},
		MessageCount: 12,
		RangeStart:   &start,
		RangeEnd:     &end,
		Model:        "test-model",
	}
	analysis := &analyzer.Analysis{
		Summary: "Integration test chat.",
		OverallSentiment: analyzer.Sentiment{
			Sentiment:  "neutral",
			Confidence: 0.7,
		},
		KeyTopics: []string{"testing"},
	}

	chatID, err := s.SaveAnalysis(ctx, rec, analysis)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.GetAnalysis(ctx, chatID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Summary != analysis.Summary {
		t.Errorf("summary = %q, want %q", got.Summary, analysis.Summary)
	}

	recent, err := s.ListRecent(ctx, 5)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	found := false
	for _, r := range recent {
		if r.ID == chatID {
			found = true
			if r.MessageCount != 12 {
				t.Errorf("message_count = %d, want 12", r.MessageCount)
			}
			if len(r.Participants) != 2 {
				t.Errorf("participants = %v", r.Participants)
			}
		}
	}
	if !found {
		t.Error("saved chat missing from recent list")
	}
}
