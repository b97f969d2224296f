package utils

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders whole-unit amounts the way the storefront shows prices, e.g. "15 000 ₽".
type CurrencyFormatter struct {
	printer *message.Printer
	sign    string
}

func NewCurrencyFormatter(locale, sign string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &CurrencyFormatter{printer: message.NewPrinter(tag), sign: sign}, nil
}

// Number formats amount with the locale's digit grouping only.
func (f *CurrencyFormatter) Number(amount int) string {
	return f.printer.Sprintf("%d", amount)
}

func (f *CurrencyFormatter) Format(amount int) string {
	if f.sign == "" {
		return f.Number(amount)
	}
	return f.Number(amount) + " " + f.sign
}
