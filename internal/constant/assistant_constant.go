package constant

// User roles selected on the start menu. Persisted per user, last write wins.
const (
	RoleStudent   = "student"
	RoleEngineer  = "engineer"
	RoleOldschool = "oldschool"

	// Applied when a user has never picked a role or the stored value is stale.
	RoleDefault = RoleEngineer
)

// ValidRole reports whether role is one of the known role tags.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleEngineer, RoleOldschool:
		return true
	}
	return false
}

// Fixed user-visible strings. The bot speaks Russian to its users.
const (
	MsgContentPlaceholder = "Текст пока не добавлен."
	MsgUnknownAction      = "Неизвестное действие. Вернитесь в главное меню."
	MsgSuggestionThanks   = "Спасибо! Предложение будет учтено ✅"
	MsgResolverApology    = "Извините, сейчас не удалось получить ответ. Попробуйте задать вопрос позже."
	MsgCachePrefix        = "📌 Из истории вопросов:\n\n"
)
