package whatsapp

import "time"

// isoLayout is how timestamps are serialised for the API and event payloads.
// Exports carry no timezone information, so neither does the output.
const isoLayout = "2006-01-02T15:04:05"

// Message is a single message from a WhatsApp export. Content may span
// multiple physical lines joined by "\n".
type Message struct {
	Timestamp time.Time
	Sender    string
	Content   string
	IsSystem  bool
}

// Chat holds the parsed message sequence in original export order.
type Chat struct {
	Messages []Message
}

// MessageRecord is the wire form of a single message.
type MessageRecord struct {
	Timestamp string `json:"timestamp"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	IsSystem  bool   `json:"is_system"`
}

// DateRange is the wire form of the conversation's timestamp span.
// Both fields are null when the chat has no messages.
type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// Result is the structured output consumed by the API boundary and the
// AI analysis pipeline.
type Result struct {
	Messages     []MessageRecord `json:"messages"`
	Participants []string        `json:"participants"`
	MessageCount int             `json:"message_count"`
	DateRange    DateRange       `json:"date_range"`
	Text         string          `json:"text"`
}
