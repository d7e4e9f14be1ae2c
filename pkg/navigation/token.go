package navigation

import "strings"

// Callback token grammar: "<verb>_<id>" for simple actions and
// "content_<key>|<back-token>" for content leaves, where the back token is
// itself a valid token. Leaf tokens carry their own return address, so the
// tree can be arbitrarily deep without a server-side navigation stack.
const (
	TokenSuggestions    = "suggestions"
	TokenModeStudy      = "mode_study"
	TokenModeQuestion   = "mode_question"
	TokenEuStructure    = "eu_structure"
	TokenChooseEurocode = "choose_eurocode"
	TokenEN1990Main     = "en1990_main"
	TokenEN1990Sections = "en1990_sections"
	TokenBackStart      = "back_start"

	rolePrefix    = "user_"
	sectionPrefix = "section_"
	contentPrefix = "content_"
)

// ContentToken is a parsed content-leaf token.
type ContentToken struct {
	Key  string
	Back string
}

// ParseContentToken splits "content_<key>|<back>". A token without both
// parts is malformed and reported as not-ok; callers treat that as a
// not-found condition, never as a transport error.
func ParseContentToken(data string) (ContentToken, bool) {
	if !strings.HasPrefix(data, contentPrefix) {
		return ContentToken{}, false
	}
	payload := strings.TrimPrefix(data, contentPrefix)
	key, back, found := strings.Cut(payload, "|")
	if !found || key == "" || back == "" {
		return ContentToken{}, false
	}
	return ContentToken{Key: key, Back: back}, true
}

// ContentTokenFor builds a leaf token embedding its return address.
func ContentTokenFor(key, backToken string) string {
	return contentPrefix + key + "|" + backToken
}

// RoleFromToken extracts the role tag from a "user_<role>" token.
func RoleFromToken(data string) (string, bool) {
	if !strings.HasPrefix(data, rolePrefix) {
		return "", false
	}
	role := strings.TrimPrefix(data, rolePrefix)
	if role == "" {
		return "", false
	}
	return role, true
}

// SectionFromToken extracts the section id from a "section_<id>" token.
func SectionFromToken(data string) (string, bool) {
	if !strings.HasPrefix(data, sectionPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(data, sectionPrefix)
	if id == "" {
		return "", false
	}
	return id, true
}
