package entity

// Document is one canned reference passage of the structured corpus,
// addressed by the content key embedded in menu leaf tokens.
type Document struct {
	Id         int64
	ContentKey string
	Title      string
	Content    string
}
