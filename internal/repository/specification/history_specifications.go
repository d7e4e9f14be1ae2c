package specification

import "gorm.io/gorm"

// QuestionContains matches history rows whose stored question contains the
// given fragment as a case-sensitive substring. POSITION is used instead of
// LIKE so metacharacters in user questions cannot widen the match.
type QuestionContains struct {
	Fragment string
}

func (s QuestionContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("POSITION(? IN question) > 0", s.Fragment)
}

// ByContentKey filters documents by their lookup key
type ByContentKey struct {
	Key string
}

func (s ByContentKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("content_key = ?", s.Key)
}
