package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/chat"
	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// ChatHandler expone el asistente de catálogo para el widget web (protegido).
type ChatHandler struct {
	router *chat.Router
	log    *logger.Logger
}

// NewChatHandler construye el handler.
func NewChatHandler(router *chat.Router, log *logger.Logger) *ChatHandler {
	return &ChatHandler{router: router, log: log}
}

// Chat godoc
// @Summary      Enviar mensaje al asistente de catálogo
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	reply, err := h.router.Process(in.Message)
	if err != nil {
		return respondInternal(c, h.log, err)
	}
	return c.JSON(dto.ChatResponse{Reply: reply})
}
