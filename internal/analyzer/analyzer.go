// Package analyzer produces conversation summaries, sentiment and
// actionables from parsed chat text via the Anthropic API.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MikeSquared-Agency/scribe/internal/anthropic"
)

// Lower temperature keeps analysis output consistent across runs.
const analysisTemperature = 0.3

const quickSummaryMaxChars = 3000

type Analyzer struct {
	llm    *anthropic.Client
	logger *slog.Logger
}

func New(llm *anthropic.Client, logger *slog.Logger) *Analyzer {
	return &Analyzer{llm: llm, logger: logger}
}

// AnalyzeConversation runs the full analysis over the canonical chat text.
// The returned Analysis is always usable: if the model strays from JSON, a
// neutral fallback carrying the raw summary text is returned instead of an
// error.
func (a *Analyzer) AnalyzeConversation(ctx context.Context, chatText string, participants []string) (*Analysis, error) {
	prompt := fmt.Sprintf(analysisUserPrompt, strings.Join(participants, ", "), chatText)

	a.logger.Info("analyzing conversation",
		"participants", len(participants),
		"text_len", len(chatText),
	)

	raw, err := a.llm.Complete(ctx, systemPrompt,
		[]anthropic.Message{{Role: "user", Content: prompt}},
		4000, analysisTemperature)
	if err != nil {
		return nil, fmt.Errorf("llm analysis: %w", err)
	}

	analysis := parseAnalysisResponse(raw)

	a.logger.Info("analysis complete",
		"sentiment", analysis.OverallSentiment.Sentiment,
		"topics", len(analysis.KeyTopics),
		"actionables", len(analysis.Actionables),
	)

	return analysis, nil
}

// QuickSummary returns a short prose summary without the full structured
// analysis. Long chats are truncated to keep the completion cheap.
func (a *Analyzer) QuickSummary(ctx context.Context, chatText string) (string, error) {
	if len(chatText) > quickSummaryMaxChars {
		chatText = chatText[:quickSummaryMaxChars]
	}

	prompt := fmt.Sprintf(quickSummaryPrompt, chatText)

	summary, err := a.llm.Complete(ctx, "",
		[]anthropic.Message{{Role: "user", Content: prompt}},
		300, 0)
	if err != nil {
		return "", fmt.Errorf("llm summary: %w", err)
	}

	return summary, nil
}
