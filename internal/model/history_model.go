package model

import "time"

type History struct {
	Id       int64     `gorm:"primaryKey;autoIncrement"`
	UserId   int64     `gorm:"not null;index"`
	Question string    `gorm:"type:text;not null"`
	Answer   string    `gorm:"type:text;not null"`
	Date     time.Time `gorm:"not null"`
}

func (History) TableName() string {
	return "history"
}
