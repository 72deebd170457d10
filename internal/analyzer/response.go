package analyzer

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	bareJSONRe   = regexp.MustCompile(`(?s)(\{.*\})`)
)

// parseAnalysisResponse extracts the Analysis JSON from a model completion.
// Models occasionally wrap the JSON in markdown fences or preamble text, so
// the raw text is tried first, then a fenced block, then the widest brace
// span. If none parses, a neutral fallback analysis carries the raw text.
func parseAnalysisResponse(raw string) *Analysis {
	if analysis, ok := unmarshalAnalysis(raw); ok {
		return analysis
	}

	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		if analysis, ok := unmarshalAnalysis(m[1]); ok {
			return analysis
		}
	}

	if m := bareJSONRe.FindStringSubmatch(raw); m != nil {
		if analysis, ok := unmarshalAnalysis(m[1]); ok {
			return analysis
		}
	}

	return fallbackAnalysis(raw)
}

func unmarshalAnalysis(s string) (*Analysis, bool) {
	var analysis Analysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &analysis); err != nil {
		return nil, false
	}
	return &analysis, true
}

// fallbackAnalysis preserves whatever the model said as the summary so the
// caller still gets a response instead of a hard failure.
func fallbackAnalysis(raw string) *Analysis {
	summary := raw
	if len(summary) > 500 {
		summary = summary[:500] + "..."
	}

	return &Analysis{
		Summary: summary,
		OverallSentiment: Sentiment{
			Sentiment:   "neutral",
			Confidence:  0.5,
			Explanation: "Could not parse structured analysis",
		},
		ParticipantSentiments: []ParticipantSentiment{},
		KeyTopics:             []string{},
		Actionables:           []Actionable{},
		ConversationInsights: Insights{
			Tone:            "unknown",
			EngagementLevel: "unknown",
			KeyPoints:       []string{},
		},
	}
}
