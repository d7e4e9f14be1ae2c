package controller

import (
	"structai-be/internal/dto"
	"structai-be/internal/pkg/serverutils"
	"structai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
	Message(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("start", c.Start)
	h.Post("callback", c.Callback)
	h.Post("message", c.Message)
}

func (c *assistantController) Start(ctx *fiber.Ctx) error {
	var req dto.CallbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	// The start command carries no token; only the ids are required.
	if req.UserId == 0 || req.ChatId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "user_id and chat_id are required")
	}

	res, err := c.assistantService.Start(ctx.Context(), req.UserId, req.ChatId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success render start menu", res))
}

func (c *assistantController) Callback(ctx *fiber.Ctx) error {
	var req dto.CallbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.HandleCallback(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success handle callback", res))
}

func (c *assistantController) Message(ctx *fiber.Ctx) error {
	var req dto.MessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.HandleMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success handle message", res))
}
