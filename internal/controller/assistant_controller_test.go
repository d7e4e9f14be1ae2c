package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structai-be/internal/dto"
	"structai-be/internal/pkg/serverutils"
	"structai-be/pkg/navigation"
)

type stubAssistantService struct {
	lastCallback *dto.CallbackRequest
	lastMessage  *dto.MessageRequest
}

func (s *stubAssistantService) Start(_ context.Context, userId int64, chatId string) (*dto.RenderResponse, error) {
	return &dto.RenderResponse{
		Text:    "welcome",
		Buttons: [][]navigation.Button{{{Text: "b", CallbackData: "user_student"}}},
	}, nil
}

func (s *stubAssistantService) HandleCallback(_ context.Context, req *dto.CallbackRequest) (*dto.RenderResponse, error) {
	s.lastCallback = req
	return &dto.RenderResponse{Text: "callback", Edit: true}, nil
}

func (s *stubAssistantService) HandleMessage(_ context.Context, req *dto.MessageRequest) (*dto.RenderResponse, error) {
	s.lastMessage = req
	return &dto.RenderResponse{Text: "message"}, nil
}

func newTestApp(svc *stubAssistantService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewAssistantController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestStartEndpoint(t *testing.T) {
	svc := &stubAssistantService{}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/api/assistant/v1/start", fiber.Map{"user_id": 42, "chat_id": "c1"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "welcome", data["text"])
}

func TestStartEndpointRequiresIds(t *testing.T) {
	app := newTestApp(&stubAssistantService{})

	resp := postJSON(t, app, "/api/assistant/v1/start", fiber.Map{"user_id": 42})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
}

func TestCallbackEndpoint(t *testing.T) {
	svc := &stubAssistantService{}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/api/assistant/v1/callback", fiber.Map{
		"user_id": 42, "chat_id": "c1", "token": "mode_question",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, svc.lastCallback)
	assert.Equal(t, "mode_question", svc.lastCallback.Token)
}

func TestCallbackEndpointValidatesToken(t *testing.T) {
	svc := &stubAssistantService{}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/api/assistant/v1/callback", fiber.Map{"user_id": 42, "chat_id": "c1"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, svc.lastCallback, "invalid requests must not reach the service")
}

func TestMessageEndpoint(t *testing.T) {
	svc := &stubAssistantService{}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/api/assistant/v1/message", fiber.Map{
		"user_id": 42, "chat_id": "c1", "username": "ivan", "text": "вопрос",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, svc.lastMessage)
	assert.Equal(t, "вопрос", svc.lastMessage.Text)
	assert.Equal(t, "ivan", svc.lastMessage.Username)
}

func TestMessageEndpointValidatesText(t *testing.T) {
	svc := &stubAssistantService{}
	app := newTestApp(svc)

	resp := postJSON(t, app, "/api/assistant/v1/message", fiber.Map{"user_id": 42, "chat_id": "c1"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, svc.lastMessage)
}
