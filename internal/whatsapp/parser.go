// Package whatsapp parses WhatsApp chat exports into structured messages.
//
// An export is a plain-text file where some lines open a new message
// (timestamp + sender + content in one of several known dialects) and the
// rest are continuations of the message above them. The parser is a single
// pass over the lines with one open accumulator; it never fails on a bad
// line, it only ever produces fewer messages.
package whatsapp

import (
	"regexp"
	"strings"
)

// dialect is one recognised header-line syntax. The regexes capture
// (timestamp, sender, content); sender capture is non-greedy up to the
// first colon. dayFirst tells the timestamp fallback chain which day/month
// ordering this dialect implies.
type dialect struct {
	re       *regexp.Regexp
	dayFirst bool
}

// Tested in order, first match wins. The dash separator may be an ASCII
// hyphen or an en-dash depending on the exporting client.
var dialects = []dialect{
	// 1/15/25, 10:30 AM - John: Message
	{re: regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4},\s+\d{1,2}:\d{2}(?:\s*[AP]M)?)\s*[-–]\s*([^:]+?):\s*(.*)`)},
	// [1/15/25, 10:30:45 AM] John: Message
	{re: regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4},\s+\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AP]M)?)\]\s*([^:]+?):\s*(.*)`)},
	// 15/01/25, 10:30 - John: Message (DD/MM/YY, 24h)
	{re: regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4},\s+\d{1,2}:\d{2}(?::\d{2})?)\s*[-–]\s*([^:]+?):\s*(.*)`), dayFirst: true},
	// 2025-01-15, 10:30 - John: Message (ISO-like)
	{re: regexp.MustCompile(`^(\d{4}-\d{1,2}-\d{1,2},\s+\d{1,2}:\d{2}(?::\d{2})?(?:\s*[AP]M)?)\s*[-–]\s*([^:]+?):\s*(.*)`)},
}

// Parse turns decoded export text into an ordered message sequence.
// Lines that merely resemble a header but carry an unparsable timestamp are
// demoted to continuations; leading lines before the first real header
// (export boilerplate) are dropped.
func Parse(content string) *Chat {
	chat := &Chat{}
	var current *Message

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if msg, ok := matchHeader(line); ok {
			if current != nil {
				chat.Messages = append(chat.Messages, *current)
			}
			current = &msg
			continue
		}

		// Continuation of the message under construction.
		if current != nil {
			current.Content += "\n" + line
		}
	}

	if current != nil {
		chat.Messages = append(chat.Messages, *current)
	}

	return chat
}

// matchHeader tests a line against each dialect in priority order. A
// structural match only counts if its timestamp normalises; otherwise the
// line falls through to continuation handling.
func matchHeader(line string) (Message, bool) {
	for _, d := range dialects {
		m := d.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		ts, err := parseTimestamp(m[1], d.dayFirst)
		if err != nil {
			continue
		}

		body := strings.TrimSpace(m[3])
		return Message{
			Timestamp: ts,
			Sender:    strings.TrimSpace(m[2]),
			Content:   body,
			IsSystem:  IsSystemMessage(body),
		}, true
	}
	return Message{}, false
}
