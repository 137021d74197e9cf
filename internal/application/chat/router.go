// Package chat implementa el asistente de ventas por palabras clave.
//
// La clasificación es una pasada única sobre una lista ordenada de reglas
// (predicado, respuesta): gana la primera que matchea. El orden ES la política
// de desempate — saludo, luego soporte, luego búsqueda de producto como
// fallback. Sin estado entre mensajes.
package chat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// CatalogSearcher es el contrato mínimo que el router necesita del catálogo.
type CatalogSearcher interface {
	Search(term string, limit int) ([]*entity.ProductWithPrice, error)
}

// Vocabularios de intención. greetings matchea igualdad exacta o prefijo
// palabra+espacio ("hi there" sí, "hiya" no); supportWords matchea substring.
var (
	greetings    = []string{"hi", "hello", "hey", "start", "menu"}
	supportWords = []string{"help", "support", "contact", "agent", "human"}

	// fillerRe elimina las palabras de relleno iniciales de una consulta de
	// producto ("price of the SW-100" -> "SW-100").
	fillerRe = regexp.MustCompile(`(?i)^((?:price|cost|check|find|search|show|me|of|for|the)\s+)+`)
)

// Plantillas de respuesta. El texto es parte del contrato de salida
// (los adaptadores web y WhatsApp entregan estas cadenas tal cual).
const (
	replyEmpty = "Please type something."

	replyGreeting = "Hello! 👋 I'm your Sales Assistant.\n\nI can help you with:\n🔍 **Checking Prices** (e.g., 'Price of Cisco Switch')\n📦 **Stock Availability**\n📞 **Contacting Support**\n\nJust type what you need!"

	replySupport = "📞 **Contact Support**\n\nYou can reach our sales team at:\n📧 sales@company.com\n📱 +1-234-567-890\n\nOr just ask me about a product!"

	replyTooShort = "Could you please be more specific? I need at least 2 characters to search for a product."

	priceOnRequest = "Price on Request"
	unknownOEM     = "Unknown OEM"

	maxResults = 5  // tope de resultados para no inundar la conversación
	maxNameLen = 50 // truncado de nombres en el listado múltiple
	minTermLen = 2  // mínimo de caracteres para disparar una búsqueda
)

// rule una regla de intención: predicado sobre el texto normalizado y
// generador de respuesta sobre el texto original.
type rule struct {
	matches func(lower string) bool
	respond func(raw, lower string) (string, error)
}

// Router clasificador de mensajes del asistente.
type Router struct {
	catalog CatalogSearcher
	rules   []rule
}

// NewRouter construye el router con sus reglas en orden de prioridad.
func NewRouter(catalog CatalogSearcher) *Router {
	r := &Router{catalog: catalog}
	r.rules = []rule{
		{matches: isGreeting, respond: func(_, _ string) (string, error) { return replyGreeting, nil }},
		{matches: isSupport, respond: func(_, _ string) (string, error) { return replySupport, nil }},
		// Fallback: todo lo demás se trata como consulta de producto.
		{matches: func(string) bool { return true }, respond: r.productQuery},
	}
	return r
}

// Process clasifica un mensaje y devuelve la respuesta.
// Un error significa fallo de infraestructura (store); el adaptador decide
// cómo degradar (la clasificación en sí nunca falla).
func (r *Router) Process(message string) (string, error) {
	text := strings.TrimSpace(message)
	if text == "" {
		return replyEmpty, nil
	}
	lower := strings.ToLower(text)

	for _, rl := range r.rules {
		if rl.matches(lower) {
			return rl.respond(text, lower)
		}
	}
	// Inalcanzable: la última regla siempre matchea.
	return replyEmpty, nil
}

func isGreeting(lower string) bool {
	for _, w := range greetings {
		if lower == w || strings.HasPrefix(lower, w+" ") {
			return true
		}
	}
	return false
}

func isSupport(lower string) bool {
	for _, w := range supportWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// productQuery busca en el catálogo tras remover el relleno inicial.
func (r *Router) productQuery(raw, _ string) (string, error) {
	query := strings.TrimSpace(fillerRe.ReplaceAllString(raw, ""))

	if len(query) < minTermLen {
		return replyTooShort, nil
	}

	hits, err := r.catalog.Search(query, maxResults)
	if err != nil {
		return "", err
	}

	switch len(hits) {
	case 0:
		return fmt.Sprintf("❌ Sorry, I couldn't find any products matching \"%s\".\n\nPlease try:\n- Checking the Part Code\n- Using a simpler keyword (e.g. \"Switch\")", query), nil
	case 1:
		return singleResult(hits[0]), nil
	default:
		return multipleResults(query, hits), nil
	}
}

// singleResult tarjeta detallada de un único producto.
func singleResult(hit *entity.ProductWithPrice) string {
	price := priceOnRequest
	oem := unknownOEM
	if hit.Latest != nil {
		price = FormatMoney(hit.Latest.Price, hit.Latest.Currency)
		if hit.Latest.Vendor != "" {
			oem = hit.Latest.Vendor
		}
	}
	return fmt.Sprintf("✅ **Found it!**\n\n*%s*\n%s\n\n💲 Price: %s\n🏭 OEM: %s",
		hit.Product.PartCode, hit.Product.Name, price, oem)
}

// multipleResults listado numerado con instrucción de respuesta.
func multipleResults(query string, hits []*entity.ProductWithPrice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔎 I found %d products matching \"%s\":\n\n", len(hits), query)
	for i, hit := range hits {
		price := "N/A"
		if hit.Latest != nil {
			price = FormatMoney(hit.Latest.Price, hit.Latest.Currency)
		}
		fmt.Fprintf(&b, "%d. *%s* - %s\n   _%s_\n", i+1, hit.Product.PartCode, price, truncate(hit.Product.Name, maxNameLen))
	}
	b.WriteString("\nReply with the exact Part Code for details.")
	return b.String()
}

// truncate corta por runas, nunca a mitad de un carácter multibyte.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
