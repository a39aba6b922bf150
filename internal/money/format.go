package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = gomoney.BRL

// Format renders an amount with the symbol and separators of the currency.
// Unknown currency codes fall back to DefaultCurrency.
func Format(d decimal.Decimal, currency string) string {
	if gomoney.GetCurrency(currency) == nil {
		currency = DefaultCurrency
	}

	cents := Round(d).Shift(Places).IntPart()
	return gomoney.New(cents, currency).Display()
}

// FormatPercent renders a percentage with one fraction digit using the
// number formatting of the locale, e.g. "12,5%" for pt-BR.
func FormatPercent(d decimal.Decimal, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%.1f%%", d.InexactFloat64())
}
