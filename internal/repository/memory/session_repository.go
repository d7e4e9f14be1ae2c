package memory

import (
	"time"

	"structai-be/pkg/assistant/session"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Conversations idle for an hour lose their flags, which is equivalent
	// to a return-to-root for routing purposes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(state *session.State) {
	r.cache.Set(state.ChatId, state, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(chatId string) (*session.State, bool) {
	if x, found := r.cache.Get(chatId); found {
		return x.(*session.State), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(chatId string) {
	r.cache.Delete(chatId)
}
