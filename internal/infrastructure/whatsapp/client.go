// Package whatsapp implementa el envío de mensajes salientes vía la
// Cloud API de WhatsApp (Meta Graph). Usa net/http de la librería estándar;
// no requiere SDK oficial.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/cotizador-api/pkg/config"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// Client envía mensajes de texto por la Graph API.
// Si Token o PhoneID están vacíos, SendText es un no-op con warning:
// el webhook sigue funcionando en entornos sin credenciales.
type Client struct {
	cfg        config.WhatsAppConfig
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente de la Cloud API.
func NewClient(cfg config.WhatsAppConfig, log *logger.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
		log: log,
	}
}

// ── Estructuras del protocolo Graph API ───────────────────────────────────────

type textMessage struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

type textPayload struct {
	Body string `json:"body"`
}

type graphErrorResponse struct {
	Error *struct {
		Type    string `json:"type"`
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SendText envía un mensaje de texto al número indicado (formato internacional sin '+').
func (c *Client) SendText(ctx context.Context, to, body string) error {
	if c.cfg.Token == "" || c.cfg.PhoneID == "" {
		c.log.Warn().Str("to", to).Msg("WhatsApp sin credenciales: mensaje saliente omitido")
		return nil
	}

	url := fmt.Sprintf("https://graph.facebook.com/%s/%s/messages", c.cfg.APIVersion, c.cfg.PhoneID)

	payload := textMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textPayload{Body: body},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("whatsapp: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("whatsapp: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("whatsapp: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("whatsapp: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("whatsapp: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp graphErrorResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return fmt.Errorf("whatsapp: Graph error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return fmt.Errorf("whatsapp: Graph HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	return nil
}
