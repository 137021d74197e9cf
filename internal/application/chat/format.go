package chat

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer formatea números con agrupación y decimales del locale en-US,
// el mismo locale que usa el resto de la salida del asistente.
var printer = message.NewPrinter(language.AmericanEnglish)

// FormatMoney renderiza un monto como "$1,299.99": símbolo de la moneda más
// el número agrupado con los decimales propios de la moneda (JPY no lleva,
// USD lleva dos). Para monedas sin símbolo estrecho conocido se antepone el
// código ISO ("COP 1,299.99"), que es lo que muestra el formateo en-US.
func FormatMoney(amount decimal.Decimal, code string) string {
	digits := 2
	if unit, err := currency.ParseISO(code); err == nil {
		digits, _ = currency.Standard.Rounding(unit)
	}
	f, _ := amount.Float64()
	grouped := printer.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
	return moneySymbol(code) + grouped
}

// moneySymbol devuelve el símbolo estrecho en-US de la moneda, o "<CODE> " como
// prefijo cuando no hay símbolo propio o el código no es ISO 4217 válido.
func moneySymbol(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " "
	}
	switch unit {
	case currency.USD:
		return "$"
	case currency.EUR:
		return "€"
	case currency.GBP:
		return "£"
	case currency.JPY:
		return "¥"
	default:
		return unit.String() + " "
	}
}
