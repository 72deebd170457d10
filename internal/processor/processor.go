// Package processor orchestrates the chat upload pipeline: parse,
// validate, analyze, persist, announce.
package processor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/scribe/internal/analyzer"
	"github.com/MikeSquared-Agency/scribe/internal/hermes"
	"github.com/MikeSquared-Agency/scribe/internal/store"
	"github.com/MikeSquared-Agency/scribe/internal/whatsapp"
)

// ErrNoMessages marks an upload that parsed cleanly but contained no
// recognisable human messages. The API boundary turns this into a
// user-facing validation failure, not a server error.
var ErrNoMessages = errors.New("no messages recognised in chat export")

// ErrAnalysisUnavailable is returned when no Anthropic key is configured.
var ErrAnalysisUnavailable = errors.New("analyzer not configured")

// Processor runs the pipeline. Store and hermes are optional — without a
// database the service is stateless, without NATS nothing is announced.
type Processor struct {
	store    *store.Store
	analyzer *analyzer.Analyzer
	hermes   *hermes.Client
	model    string
	logger   *slog.Logger
}

func New(s *store.Store, a *analyzer.Analyzer, h *hermes.Client, model string, logger *slog.Logger) *Processor {
	return &Processor{
		store:    s,
		analyzer: a,
		hermes:   h,
		model:    model,
		logger:   logger,
	}
}

// UploadResult is everything the pipeline produced for one upload.
type UploadResult struct {
	ChatID   uuid.UUID
	Parsed   whatsapp.Result
	Analysis *analyzer.Analysis
}

// ProcessUpload runs the full pipeline over decoded export text.
func (p *Processor) ProcessUpload(ctx context.Context, filename, content string) (*UploadResult, error) {
	chat := whatsapp.Parse(content)
	parsed := chat.Result()

	p.logger.Info("chat parsed",
		"filename", filename,
		"messages", len(parsed.Messages),
		"message_count", parsed.MessageCount,
	)

	if parsed.MessageCount == 0 {
		return nil, ErrNoMessages
	}
	if p.analyzer == nil {
		return nil, ErrAnalysisUnavailable
	}

	analysis, err := p.analyzer.AnalyzeConversation(ctx, parsed.Text, parsed.Participants)
	if err != nil {
		return nil, err
	}

	result := &UploadResult{Parsed: parsed, Analysis: analysis}

	if p.store != nil {
		rec := store.ChatRecord{
			Filename:     filename,
			Participants: parsed.Participants,
			MessageCount: parsed.MessageCount,
			Model:        p.model,
		}
		if start, end, ok := chat.DateRange(); ok {
			rec.RangeStart, rec.RangeEnd = &start, &end
		}

		chatID, err := p.store.SaveAnalysis(ctx, rec, analysis)
		if err != nil {
			// Analysis succeeded; losing the record is not worth failing
			// the request over.
			p.logger.Error("failed to persist analysis", "filename", filename, "error", err)
		} else {
			result.ChatID = chatID
		}
	}

	if p.hermes != nil {
		evt := hermes.ChatAnalyzedEvent{
			ChatID:       eventChatID(result.ChatID),
			Filename:     filename,
			Participants: parsed.Participants,
			MessageCount: parsed.MessageCount,
			Sentiment:    analysis.OverallSentiment.Sentiment,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := p.hermes.Publish(hermes.SubjectChatAnalyzed, evt); err != nil {
			p.logger.Warn("failed to publish analyzed event", "error", err)
		}
	}

	return result, nil
}

// eventChatID renders a chat id for the analyzed event. Without a persisted
// record there is no id to announce; an empty string lets subscribers tell
// "not persisted" apart from a real id.
func eventChatID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
