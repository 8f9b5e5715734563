// Package export renders payroll data into local files: the payroll report as
// PDF or XLSX and individual pay vouchers as PDF. Amounts are taken from the
// backend verbatim; the only arithmetic here is summing totals for footers.
package export

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// RoundMoney normalizes an amount to two decimals using banker's rounding
// (half to even). Applied uniformly before display and before summation so
// on-screen and exported figures agree.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// MoneyFormatter renders amounts with the locale's digit grouping and exactly
// two fraction digits. The same formatter backs REPL tables and exports.
type MoneyFormatter struct {
	p *message.Printer
}

// NewMoneyFormatter builds a formatter for the given BCP 47 locale tag.
// An unparseable tag falls back to Spanish.
func NewMoneyFormatter(locale string) *MoneyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	return &MoneyFormatter{p: message.NewPrinter(tag)}
}

func (f *MoneyFormatter) Format(d decimal.Decimal) string {
	v, _ := RoundMoney(d).Float64()
	return f.p.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
