package handler

import (
	"jobswipe/internal/delivery/http/dto"
	"jobswipe/internal/delivery/http/middleware"
	"jobswipe/internal/pkg/response"
	"jobswipe/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

// postMessageRequest carries only the text; the sender is taken from the
// caller's token.
type postMessageRequest struct {
	Text string `json:"text"`
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/matches/:match_id/messages")
	grp.Get("/", h.List)
	grp.Post("/", h.Post)
}

func (h *ChatHandler) List(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := matchIDParam(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Thread(c.Context(), actor, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMessageListResponse(items))
}

func (h *ChatHandler) Post(c fiber.Ctx) error {
	actor, err := actorFromCtx(c)
	if err != nil {
		return err
	}
	id, err := matchIDParam(c)
	if err != nil {
		return err
	}

	var req postMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	msg, err := h.uc.Post(c.Context(), actor, id, req.Text)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewMessageResponse(msg))
}
