package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"structai-be/internal/dto"
	"structai-be/pkg/suggestion"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// SuggestionWriter is the sink side of the suggestion topic.
type SuggestionWriter interface {
	Append(entry suggestion.Entry) error
}

const defaultAppendAttempts = 3

// consumerService drains the suggestion topic into the spreadsheet log so
// that the conversation handler never waits on file I/O.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sink      SuggestionWriter

	appendAttempts int
	appendPause    time.Duration
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sink SuggestionWriter,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		sink:           sink,
		appendAttempts: defaultAppendAttempts,
		appendPause:    time.Second,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

// processMessage always ends in an Ack. A Nack on a persistently broken
// sink would make gochannel redeliver in a tight loop, so write failures
// get a bounded retry and then a dead-letter log line carrying the full
// payload.
func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.PublishSuggestionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal suggestion message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	entry := suggestion.Entry{
		Date:     payload.Date,
		Username: payload.Username,
		UserId:   payload.UserId,
		Text:     payload.Text,
	}

	var err error
	for attempt := 1; attempt <= cs.appendAttempts; attempt++ {
		if err = cs.sink.Append(entry); err == nil {
			msg.Ack()
			return
		}
		if attempt < cs.appendAttempts {
			time.Sleep(cs.appendPause)
		}
	}

	log.Printf("[ERROR] Dropping suggestion after %d attempts (user %d, %q): %v",
		cs.appendAttempts, payload.UserId, payload.Text, err)
	msg.Ack()
}
