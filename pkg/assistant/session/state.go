package session

// State is the ephemeral per-conversation state. It routes the next
// free-text message: exactly one of the two flags may be set, or neither.
type State struct {
	ChatId      string `json:"chat_id"`
	UserId      int64  `json:"user_id"`
	SuggestMode bool   `json:"suggest_mode"`
	AiMode      bool   `json:"ai_mode"`
}

func New(chatId string, userId int64) *State {
	return &State{
		ChatId: chatId,
		UserId: userId,
	}
}

// EnterSuggestMode arms suggestion capture. Arming one mode disarms the
// other so that at most one flag is ever true.
func (s *State) EnterSuggestMode() {
	s.SuggestMode = true
	s.AiMode = false
}

// EnterAiMode arms question capture for the answer resolver.
func (s *State) EnterAiMode() {
	s.AiMode = true
	s.SuggestMode = false
}

// Clear resets both flags. Called on return-to-root and after a free-text
// message has been consumed.
func (s *State) Clear() {
	s.SuggestMode = false
	s.AiMode = false
}
