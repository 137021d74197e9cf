package chat

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// fakeSearcher registra las llamadas y devuelve resultados fijos.
type fakeSearcher struct {
	hits     []*entity.ProductWithPrice
	err      error
	lastTerm string
	calls    int
}

func (s *fakeSearcher) Search(term string, limit int) ([]*entity.ProductWithPrice, error) {
	s.calls++
	s.lastTerm = term
	if s.err != nil {
		return nil, s.err
	}
	if len(s.hits) > limit {
		return s.hits[:limit], nil
	}
	return s.hits, nil
}

func hit(partCode, name, price, vendor string) *entity.ProductWithPrice {
	pw := &entity.ProductWithPrice{
		Product: entity.Product{ID: partCode, PartCode: partCode, Name: name},
	}
	if price != "" {
		pw.Latest = &entity.PriceEntry{
			Price:    decimal.RequireFromString(price),
			Currency: "USD",
			Vendor:   vendor,
		}
	}
	return pw
}

// ──────────────────────────────────────────────────────────────────────────────
// Saludo y soporte
// ──────────────────────────────────────────────────────────────────────────────

func TestProcess_SaludoExacto(t *testing.T) {
	r := NewRouter(&fakeSearcher{})

	for _, msg := range []string{"hi", "Hello", "HEY", "start", "menu", "hi there"} {
		reply, err := r.Process(msg)
		require.NoError(t, err)
		assert.Equal(t, replyGreeting, reply, "mensaje %q debe saludar", msg)
	}
}

// "hiya" no es saludo: el prefijo requiere palabra completa más espacio.
func TestProcess_PrefijoSinEspacioNoEsSaludo(t *testing.T) {
	s := &fakeSearcher{}
	r := NewRouter(s)

	reply, err := r.Process("hiya")

	require.NoError(t, err)
	assert.NotEqual(t, replyGreeting, reply)
	assert.Equal(t, 1, s.calls, "debe caer a la búsqueda de producto")
}

func TestProcess_Soporte(t *testing.T) {
	r := NewRouter(&fakeSearcher{})

	for _, msg := range []string{"help", "I need SUPPORT now", "contact please", "give me a human"} {
		reply, err := r.Process(msg)
		require.NoError(t, err)
		assert.Equal(t, replySupport, reply, "mensaje %q debe ir a soporte", msg)
	}
}

// El saludo tiene prioridad sobre soporte cuando ambos matchean.
func TestProcess_SaludoGanaASoporte(t *testing.T) {
	r := NewRouter(&fakeSearcher{})

	reply, err := r.Process("hi help")

	require.NoError(t, err)
	assert.Equal(t, replyGreeting, reply)
}

func TestProcess_MensajeVacio(t *testing.T) {
	r := NewRouter(&fakeSearcher{})

	reply, err := r.Process("   ")

	require.NoError(t, err)
	assert.Equal(t, replyEmpty, reply)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta de producto
// ──────────────────────────────────────────────────────────────────────────────

func TestProcess_RemueveRellenoInicial(t *testing.T) {
	s := &fakeSearcher{hits: []*entity.ProductWithPrice{hit("SW-100", "Switch", "199.99", "Cisco")}}
	r := NewRouter(s)

	_, err := r.Process("price of the SW-100")

	require.NoError(t, err)
	assert.Equal(t, "SW-100", s.lastTerm, "el relleno inicial debe eliminarse completo")
}

func TestProcess_ConsultaCortaNoBusca(t *testing.T) {
	s := &fakeSearcher{}
	r := NewRouter(s)

	reply, err := r.Process("x")

	require.NoError(t, err)
	assert.Equal(t, replyTooShort, reply)
	assert.Equal(t, 0, s.calls, "no debe tocar el catálogo con menos de 2 caracteres")
}

// El relleno se remueve antes de validar el largo: "price of x" también es corta.
func TestProcess_ConsultaCortaTrasRemoverRelleno(t *testing.T) {
	s := &fakeSearcher{}
	r := NewRouter(s)

	reply, err := r.Process("price of x")

	require.NoError(t, err)
	assert.Equal(t, replyTooShort, reply)
	assert.Equal(t, 0, s.calls)
}

func TestProcess_ResultadoUnico(t *testing.T) {
	s := &fakeSearcher{hits: []*entity.ProductWithPrice{hit("SW-100", "Switch 24 puertos", "199.99", "Cisco")}}
	r := NewRouter(s)

	reply, err := r.Process("SW-100")

	require.NoError(t, err)
	assert.Contains(t, reply, "✅ **Found it!**")
	assert.Contains(t, reply, "*SW-100*")
	assert.Contains(t, reply, "💲 Price: $199.99")
	assert.Contains(t, reply, "🏭 OEM: Cisco")
}

// Producto sin historial de precios: "Price on Request" y OEM desconocido.
func TestProcess_ResultadoUnicoSinPrecio(t *testing.T) {
	s := &fakeSearcher{hits: []*entity.ProductWithPrice{hit("NEW-1", "Producto nuevo", "", "")}}
	r := NewRouter(s)

	reply, err := r.Process("NEW-1")

	require.NoError(t, err)
	assert.Contains(t, reply, "Price on Request")
	assert.Contains(t, reply, "Unknown OEM")
}

func TestProcess_MultiplesResultados(t *testing.T) {
	s := &fakeSearcher{hits: []*entity.ProductWithPrice{
		hit("SW-100", "Switch 24 puertos", "199.99", "Cisco"),
		hit("SW-200", "Switch 48 puertos", "1299.50", "Cisco"),
	}}
	r := NewRouter(s)

	reply, err := r.Process("switch")

	require.NoError(t, err)
	assert.Contains(t, reply, `🔎 I found 2 products matching "switch":`)
	assert.Contains(t, reply, "1. *SW-100* - $199.99")
	assert.Contains(t, reply, "2. *SW-200* - $1,299.50")
	assert.Contains(t, reply, "Reply with the exact Part Code for details.")
}

// La consulta original se refleja tal cual en la respuesta de no encontrado.
func TestProcess_SinResultadosEcoDeLaConsulta(t *testing.T) {
	s := &fakeSearcher{}
	r := NewRouter(s)

	reply, err := r.Process("XYZ-999")

	require.NoError(t, err)
	assert.Contains(t, reply, `couldn't find any products matching "XYZ-999"`)
}

func TestProcess_ErrorDelCatalogoSePropaga(t *testing.T) {
	s := &fakeSearcher{err: errors.New("db caída")}
	r := NewRouter(s)

	_, err := r.Process("SW-100")

	assert.Error(t, err)
}

func TestProcess_NombreLargoSeTrunca(t *testing.T) {
	longName := strings.Repeat("a", 80)
	s := &fakeSearcher{hits: []*entity.ProductWithPrice{
		hit("P-1", longName, "10", ""),
		hit("P-2", "corto", "20", ""),
	}}
	r := NewRouter(s)

	reply, err := r.Process("producto")

	require.NoError(t, err)
	assert.Contains(t, reply, strings.Repeat("a", 50)+"...")
	assert.NotContains(t, reply, strings.Repeat("a", 51))
}

func TestProcess_TruncadoNoRompeMultibyte(t *testing.T) {
	// 49 runas ASCII + "ñññ": el corte cae en medio de los caracteres de dos bytes.
	longName := strings.Repeat("a", 49) + "ñññ"
	s := &fakeSearcher{hits: []*entity.ProductWithPrice{
		hit("P-1", longName, "10", ""),
		hit("P-2", "corto", "20", ""),
	}}
	r := NewRouter(s)

	reply, err := r.Process("producto")

	require.NoError(t, err)
	assert.True(t, utf8.ValidString(reply))
	assert.Contains(t, reply, strings.Repeat("a", 49)+"ñ...")
	assert.NotContains(t, reply, "ññ")
}

// ──────────────────────────────────────────────────────────────────────────────
// FormatMoney
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount   string
		code     string
		expected string
	}{
		{"199.99", "USD", "$199.99"},
		{"1299.5", "USD", "$1,299.50"},
		{"1000000", "USD", "$1,000,000.00"},
		{"42", "EUR", "€42.00"},
		{"42", "GBP", "£42.00"},
		{"1300", "JPY", "¥1,300"},
	}
	for _, c := range cases {
		got := FormatMoney(decimal.RequireFromString(c.amount), c.code)
		assert.Equal(t, c.expected, got, "monto %s %s", c.amount, c.code)
	}
}
