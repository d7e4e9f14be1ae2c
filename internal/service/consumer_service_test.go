package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"structai-be/internal/dto"
	"structai-be/pkg/suggestion"
)

func TestConsumerWritesSuggestionToSpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suggestions.xlsx")
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })

	consumer := NewConsumerService(pubSub, testTopic, suggestion.NewXlsxSink(path))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, consumer.Consume(ctx))

	payload, err := json.Marshal(dto.PublishSuggestionMessage{
		Date:     time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		Username: "ivan",
		UserId:   42,
		Text:     "добавьте EN 1993",
	})
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(testTopic, message.NewMessage(watermill.NewUUID(), payload)))

	assert.Eventually(t, func() bool {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return false
		}
		defer f.Close()
		rows, err := f.GetRows("Предложения")
		if err != nil || len(rows) < 2 {
			return false
		}
		return rows[1][3] == "добавьте EN 1993"
	}, 3*time.Second, 50*time.Millisecond, "suggestion must land in the spreadsheet")
}

type flakyWriter struct {
	mu       sync.Mutex
	failFor  int // number of leading Append calls that fail
	calls    int
	appended []suggestion.Entry
}

func (w *flakyWriter) Append(entry suggestion.Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.calls <= w.failFor {
		return errors.New("disk full")
	}
	w.appended = append(w.appended, entry)
	return nil
}

func (w *flakyWriter) snapshot() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calls, len(w.appended)
}

func newTestConsumer(pubSub *gochannel.GoChannel, sink SuggestionWriter) *consumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      testTopic,
		sink:           sink,
		appendAttempts: 3,
		appendPause:    time.Millisecond,
	}
}

func TestConsumerRetriesTransientSinkFailure(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })

	writer := &flakyWriter{failFor: 2}
	consumer := newTestConsumer(pubSub, writer)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, consumer.Consume(ctx))

	payload, err := json.Marshal(dto.PublishSuggestionMessage{UserId: 42, Text: "текст"})
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(testTopic, message.NewMessage(watermill.NewUUID(), payload)))

	assert.Eventually(t, func() bool {
		calls, appended := writer.snapshot()
		return calls == 3 && appended == 1
	}, 3*time.Second, 10*time.Millisecond, "the third attempt must land the entry")
}

func TestConsumerDropsSuggestionAfterExhaustedRetries(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })

	writer := &flakyWriter{failFor: 3}
	consumer := newTestConsumer(pubSub, writer)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, consumer.Consume(ctx))

	first, err := json.Marshal(dto.PublishSuggestionMessage{UserId: 1, Text: "пропадает"})
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(testTopic, message.NewMessage(watermill.NewUUID(), first)))

	second, err := json.Marshal(dto.PublishSuggestionMessage{UserId: 2, Text: "доходит"})
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(testTopic, message.NewMessage(watermill.NewUUID(), second)))

	// The first message fails all three attempts and is acked, not
	// redelivered; the second one is processed right after it.
	assert.Eventually(t, func() bool {
		_, appended := writer.snapshot()
		return appended == 1
	}, 3*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	calls, appended := writer.snapshot()
	assert.Equal(t, 4, calls, "three failed attempts for the first message, one for the second")
	assert.Equal(t, 1, appended)
	assert.Equal(t, "доходит", writer.appended[0].Text)
}

func TestConsumerAcksMalformedPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suggestions.xlsx")
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { pubSub.Close() })

	consumer := NewConsumerService(pubSub, testTopic, suggestion.NewXlsxSink(path))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, consumer.Consume(ctx))

	require.NoError(t, pubSub.Publish(testTopic, message.NewMessage(watermill.NewUUID(), []byte("not json"))))

	// Acked without writing: the file is never created.
	time.Sleep(200 * time.Millisecond)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "malformed payloads are dropped, not written")
}
