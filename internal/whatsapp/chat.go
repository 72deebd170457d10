package whatsapp

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// canonicalLayout is the single fixed output dialect used by Text,
// regardless of which dialect the export arrived in.
const canonicalLayout = "01/02/06, 03:04 PM"

// Participants returns the distinct senders of non-system messages,
// lexicographically sorted.
func (c *Chat) Participants() []string {
	seen := make(map[string]bool)
	for _, msg := range c.Messages {
		if !msg.IsSystem {
			seen[msg.Sender] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MessageCount returns the number of non-system messages.
func (c *Chat) MessageCount() int {
	n := 0
	for _, msg := range c.Messages {
		if !msg.IsSystem {
			n++
		}
	}
	return n
}

// DateRange returns the min and max timestamp across all messages, system
// ones included. ok is false for an empty chat.
func (c *Chat) DateRange() (start, end time.Time, ok bool) {
	if len(c.Messages) == 0 {
		return time.Time{}, time.Time{}, false
	}

	start, end = c.Messages[0].Timestamp, c.Messages[0].Timestamp
	for _, msg := range c.Messages[1:] {
		if msg.Timestamp.Before(start) {
			start = msg.Timestamp
		}
		if msg.Timestamp.After(end) {
			end = msg.Timestamp
		}
	}
	return start, end, true
}

// Text renders the chat in the canonical output dialect, one message per
// line in original order. This is a lossy one-way canonicalisation, not a
// round trip of the input. System messages are skipped unless includeSystem.
func (c *Chat) Text(includeSystem bool) string {
	var lines []string
	for _, msg := range c.Messages {
		if msg.IsSystem && !includeSystem {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s - %s: %s",
			msg.Timestamp.Format(canonicalLayout), msg.Sender, msg.Content))
	}
	return strings.Join(lines, "\n")
}

// Result folds the chat into the wire record the API boundary and the
// analysis pipeline consume. Canonical text excludes system messages.
func (c *Chat) Result() Result {
	records := make([]MessageRecord, 0, len(c.Messages))
	for _, msg := range c.Messages {
		records = append(records, MessageRecord{
			Timestamp: msg.Timestamp.Format(isoLayout),
			Sender:    msg.Sender,
			Content:   msg.Content,
			IsSystem:  msg.IsSystem,
		})
	}

	var dateRange DateRange
	if start, end, ok := c.DateRange(); ok {
		s, e := start.Format(isoLayout), end.Format(isoLayout)
		dateRange = DateRange{Start: &s, End: &e}
	}

	return Result{
		Messages:     records,
		Participants: c.Participants(),
		MessageCount: c.MessageCount(),
		DateRange:    dateRange,
		Text:         c.Text(false),
	}
}
