package model

type User struct {
	UserId int64  `gorm:"primaryKey;autoIncrement:false"`
	Role   string `gorm:"type:varchar(50);not null;default:'engineer'"`
}

func (User) TableName() string {
	return "users"
}
