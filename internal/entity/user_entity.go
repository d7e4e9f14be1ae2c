package entity

// User is a chat-platform user. UserId is the platform-assigned numeric id.
type User struct {
	UserId int64
	Role   string
}
