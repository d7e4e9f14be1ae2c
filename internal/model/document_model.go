package model

type Document struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	ContentKey string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title      string `gorm:"type:varchar(255);not null"`
	Content    string `gorm:"type:text;not null"`
}

func (Document) TableName() string {
	return "documents"
}
