package whatsapp

import "strings"

// Known group/administrative notification phrasings. Case-insensitive
// substring match; unrecognised phrasings pass as human messages, which is
// an accepted limitation of the allow-list approach.
var systemPhrases = []string{
	"messages and calls are end-to-end encrypted",
	"changed the subject",
	"changed this group's icon",
	"added",
	"left",
	"removed",
	"you created group",
	"created group",
	"changed their phone number",
	"security code changed",
}

// IsSystemMessage reports whether content is a system notification rather
// than human conversation. Pure function of the content text.
func IsSystemMessage(content string) bool {
	lower := strings.ToLower(content)
	for _, phrase := range systemPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
