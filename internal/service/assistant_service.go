package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"structai-be/internal/constant"
	"structai-be/internal/dto"
	"structai-be/internal/pkg/logger"
	"structai-be/internal/repository/memory"
	"structai-be/pkg/assistant/resolver"
	"structai-be/pkg/assistant/session"
	"structai-be/pkg/navigation"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IAssistantService handles the two transport event kinds.
type IAssistantService interface {
	Start(ctx context.Context, userId int64, chatId string) (*dto.RenderResponse, error)
	HandleCallback(ctx context.Context, request *dto.CallbackRequest) (*dto.RenderResponse, error)
	HandleMessage(ctx context.Context, request *dto.MessageRequest) (*dto.RenderResponse, error)
}

type assistantService struct {
	sessionRepo     *memory.SessionRepository
	machine         *navigation.Machine
	answerResolver  *resolver.Resolver
	pubSub          *gochannel.GoChannel
	suggestionTopic string
	sysLogger       logger.ILogger

	// One logical actor per user conversation: events for the same user
	// are handled to completion in order, users never block each other.
	userLocks sync.Map // int64 -> *sync.Mutex
}

func NewAssistantService(
	sessionRepo *memory.SessionRepository,
	machine *navigation.Machine,
	answerResolver *resolver.Resolver,
	pubSub *gochannel.GoChannel,
	suggestionTopic string,
	sysLogger logger.ILogger,
) IAssistantService {
	return &assistantService{
		sessionRepo:     sessionRepo,
		machine:         machine,
		answerResolver:  answerResolver,
		pubSub:          pubSub,
		suggestionTopic: suggestionTopic,
		sysLogger:       sysLogger,
	}
}

func (s *assistantService) lockUser(userId int64) func() {
	v, _ := s.userLocks.LoadOrStore(userId, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *assistantService) loadState(chatId string, userId int64) *session.State {
	state, found := s.sessionRepo.Get(chatId)
	if !found {
		state = session.New(chatId, userId)
	}
	return state
}

// Start renders the root menu for a fresh conversation.
func (s *assistantService) Start(ctx context.Context, userId int64, chatId string) (*dto.RenderResponse, error) {
	unlock := s.lockUser(userId)
	defer unlock()

	state := s.loadState(chatId, userId)
	state.Clear()
	s.sessionRepo.Save(state)

	render := s.machine.Root()
	return toRenderResponse(render), nil
}

func (s *assistantService) HandleCallback(ctx context.Context, request *dto.CallbackRequest) (*dto.RenderResponse, error) {
	unlock := s.lockUser(request.UserId)
	defer unlock()

	state := s.loadState(request.ChatId, request.UserId)
	render := s.machine.Handle(ctx, request.UserId, request.Token, state)
	s.sessionRepo.Save(state)

	return toRenderResponse(render), nil
}

// HandleMessage routes free text by the session flags. A message consumes
// the active flag; with no flag armed the text is ignored.
func (s *assistantService) HandleMessage(ctx context.Context, request *dto.MessageRequest) (*dto.RenderResponse, error) {
	unlock := s.lockUser(request.UserId)
	defer unlock()

	state := s.loadState(request.ChatId, request.UserId)

	switch {
	case state.SuggestMode:
		state.Clear()
		s.sessionRepo.Save(state)

		if err := s.publishSuggestion(request); err != nil {
			s.sysLogger.Error("assistant", "publish suggestion failed", map[string]interface{}{
				"user_id": request.UserId,
				"error":   err.Error(),
			})
		}
		return &dto.RenderResponse{Text: constant.MsgSuggestionThanks}, nil

	case state.AiMode:
		state.Clear()
		s.sessionRepo.Save(state)

		answer := s.answerResolver.Resolve(ctx, request.UserId, request.Text)
		return &dto.RenderResponse{Text: answer}, nil

	default:
		// No flag armed: the bot stays silent on stray text.
		return &dto.RenderResponse{}, nil
	}
}

func (s *assistantService) publishSuggestion(request *dto.MessageRequest) error {
	payload := dto.PublishSuggestionMessage{
		Date:     time.Now(),
		Username: request.Username,
		UserId:   request.UserId,
		Text:     request.Text,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal suggestion: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payloadJson)
	return s.pubSub.Publish(s.suggestionTopic, msg)
}

func toRenderResponse(render *navigation.Render) *dto.RenderResponse {
	return &dto.RenderResponse{
		Text:    render.Text,
		Buttons: render.Buttons,
		Edit:    render.Edit,
	}
}
