package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/chat"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// textSender es el contrato mínimo para responder por WhatsApp.
// Lo implementa *whatsapp.Client; la interfaz evita acoplar la capa HTTP a la Graph API.
type textSender interface {
	SendText(ctx context.Context, to, body string) error
}

// WebhookHandler recibe los eventos de la Cloud API de WhatsApp (público,
// autenticado por el verify token de Meta en lugar de JWT).
type WebhookHandler struct {
	router      *chat.Router
	sender      textSender
	verifyToken string
	log         *logger.Logger
}

// NewWebhookHandler construye el handler del webhook.
func NewWebhookHandler(router *chat.Router, sender textSender, verifyToken string, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{router: router, sender: sender, verifyToken: verifyToken, log: log}
}

// ── Payload entrante de la Graph API ──────────────────────────────────────────

type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// Verify responde el handshake de suscripción de Meta.
// Devuelve el challenge en texto plano si mode y token coinciden; 403 si no.
func (h *WebhookHandler) Verify(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		return c.SendString(challenge)
	}
	return c.SendStatus(fiber.StatusForbidden)
}

// Receive procesa los eventos entrantes. Responde 200 EVENT_RECEIVED para que
// Meta no reintente; la respuesta al usuario se envía en background.
func (h *WebhookHandler) Receive(c *fiber.Ctx) error {
	var payload webhookPayload
	if err := c.BodyParser(&payload); err != nil {
		h.log.Warn().Err(err).Msg("webhook WhatsApp: payload no parseable")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Type != "text" {
					continue
				}
				reply, err := h.router.Process(msg.Text.Body)
				if err != nil {
					h.log.Error().Err(err).Msg("webhook WhatsApp: fallo procesando mensaje")
					continue
				}
				go h.reply(msg.From, reply)
			}
		}
	}
	return c.SendString("EVENT_RECEIVED")
}

// reply envía la respuesta fire-and-forget; el error solo se registra.
func (h *WebhookHandler) reply(to, body string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := h.sender.SendText(ctx, to, body); err != nil {
		h.log.Error().Err(err).Str("to", to).Msg("webhook WhatsApp: fallo enviando respuesta")
	}
}
