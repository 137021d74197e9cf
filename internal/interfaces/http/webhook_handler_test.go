package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/internal/application/chat"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	apphttp "github.com/jhoicas/cotizador-api/internal/interfaces/http"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

const testVerifyToken = "verify-secret"

// stubCatalog catálogo fijo para el router del asistente.
type stubCatalog struct {
	hits []*entity.ProductWithPrice
	err  error
}

func (s *stubCatalog) Search(string, int) ([]*entity.ProductWithPrice, error) {
	return s.hits, s.err
}

// fakeSender captura el mensaje saliente y señala por canal, porque la
// respuesta del webhook se envía en una goroutine aparte.
type fakeSender struct {
	mu   sync.Mutex
	to   string
	body string
	sent chan struct{}
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(chan struct{}, 1)}
}

func (s *fakeSender) SendText(_ context.Context, to, body string) error {
	s.mu.Lock()
	s.to, s.body = to, body
	s.mu.Unlock()
	s.sent <- struct{}{}
	return nil
}

func (s *fakeSender) last() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.to, s.body
}

// buildWebhookApp registra el webhook como lo hace el router real: público,
// GET para el handshake y POST para los eventos.
func buildWebhookApp(sender *fakeSender) *fiber.App {
	app := fiber.New()
	h := apphttp.NewWebhookHandler(chat.NewRouter(&stubCatalog{}), sender, testVerifyToken, logger.Nop())
	app.Get("/api/webhook/whatsapp", h.Verify)
	app.Post("/api/webhook/whatsapp", h.Receive)
	return app
}

func postWebhook(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/whatsapp", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Handshake de verificación
// ──────────────────────────────────────────────────────────────────────────────

func TestWebhookVerify_TokenCorrectoDevuelveChallenge(t *testing.T) {
	app := buildWebhookApp(newFakeSender())

	req := httptest.NewRequest(http.MethodGet,
		"/api/webhook/whatsapp?hub.mode=subscribe&hub.verify_token="+testVerifyToken+"&hub.challenge=1158201444", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "1158201444", string(body), "debe devolver el challenge en texto plano")
}

func TestWebhookVerify_TokenIncorrectoRetorna403(t *testing.T) {
	app := buildWebhookApp(newFakeSender())

	for _, url := range []string{
		"/api/webhook/whatsapp?hub.mode=subscribe&hub.verify_token=otro&hub.challenge=1",
		"/api/webhook/whatsapp?hub.mode=unsubscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=1",
	} {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode, url)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Eventos entrantes
// ──────────────────────────────────────────────────────────────────────────────

func TestWebhookReceive_MensajeDeTextoGeneraRespuesta(t *testing.T) {
	sender := newFakeSender()
	app := buildWebhookApp(sender)

	resp := postWebhook(t, app, `{"entry":[{"changes":[{"value":{"messages":[{"from":"5215550001","type":"text","text":{"body":"hi"}}]}}]}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "EVENT_RECEIVED", string(body))

	select {
	case <-sender.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("la respuesta saliente nunca se envió")
	}
	to, reply := sender.last()
	assert.Equal(t, "5215550001", to)
	assert.Contains(t, reply, "Sales Assistant", "un saludo debe responder con la bienvenida")
}

func TestWebhookReceive_CuerpoMalformadoRetorna500(t *testing.T) {
	sender := newFakeSender()
	app := buildWebhookApp(sender)

	resp := postWebhook(t, app, `{"entry":[`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, sender.sent, "no debe enviarse ninguna respuesta saliente")
}

func TestWebhookReceive_EventoNoTextoSeIgnora(t *testing.T) {
	sender := newFakeSender()
	app := buildWebhookApp(sender)

	resp := postWebhook(t, app, `{"entry":[{"changes":[{"value":{"messages":[{"from":"5215550001","type":"image"}]}}]}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case <-sender.sent:
		t.Fatal("un evento no-texto no debe generar respuesta saliente")
	case <-time.After(100 * time.Millisecond):
	}
}
