package entity

import "time"

// HistoryEntry is one resolved question/answer pair. Immutable once written.
type HistoryEntry struct {
	Id       int64
	UserId   int64
	Question string
	Answer   string
	Date     time.Time
}
