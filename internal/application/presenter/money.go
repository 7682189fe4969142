package presenter

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formato francés: separador de miles con espacio fino, coma decimal.
var printer = message.NewPrinter(language.French)

// FCFA formatea un importe en francs CFA (sin decimales, el FCFA no los usa).
func FCFA(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("%v FCFA", number.Decimal(f, number.MaxFractionDigits(0)))
}

// Percent formatea un porcentaje con un decimal como máximo.
func Percent(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("%v %%", number.Decimal(f, number.MaxFractionDigits(1)))
}
