package analyzer

// Analysis is the structured output of a full conversation analysis.
type Analysis struct {
	Summary               string                 `json:"summary"`
	OverallSentiment      Sentiment              `json:"overall_sentiment"`
	ParticipantSentiments []ParticipantSentiment `json:"participant_sentiments"`
	KeyTopics             []string               `json:"key_topics"`
	Actionables           []Actionable           `json:"actionables"`
	ConversationInsights  Insights               `json:"conversation_insights"`
}

// Sentiment is an overall mood classification with a confidence score.
type Sentiment struct {
	Sentiment   string  `json:"sentiment"` // positive | negative | neutral | mixed
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// ParticipantSentiment is a per-speaker sentiment classification.
type ParticipantSentiment struct {
	Participant string `json:"participant"`
	Sentiment   string `json:"sentiment"`
	Explanation string `json:"explanation"`
}

// Actionable is a task, commitment or follow-up extracted from the chat.
type Actionable struct {
	Action      string `json:"action"`
	Assignee    string `json:"assignee"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"` // high | medium | low | not specified
	Context     string `json:"context"`
	MentionedAt string `json:"mentioned_at"`
}

// Insights captures the conversation's overall texture.
type Insights struct {
	Tone            string   `json:"tone"`
	EngagementLevel string   `json:"engagement_level"`
	KeyPoints       []string `json:"key_points"`
}
