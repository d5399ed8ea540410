package receipt

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Layout defaults. The header names the vendor, the footer is the closing
// thank-you line. Both are overridable through configuration.
const (
	DefaultLineLength = 40
	DefaultHeader     = "ФОП Джонсонюк Борис"
	DefaultFooter     = "Дякуємо за покупку!"
)

const (
	separatorWidth = 30
	nameFieldWidth = 10
)

// Printable is a fully populated receipt ready for text rendering.
type Printable struct {
	Items     []ComputedLineItem
	Payment   Payment
	Total     decimal.Decimal
	Rest      decimal.Decimal
	CreatedAt time.Time
}

// Format renders a receipt as fixed-width plain text suitable for a small
// thermal printer. Layout, top to bottom: header, "=" separator, one line per
// product, "-" separator, total, payment, rest, "=" separator, timestamp,
// footer. Product names are cut to their first 10 runes and right-padded to a
// 10-rune field; after assembly every line is independently cut to the first
// lineLength runes, so a short lineLength may clip separators and amounts too.
// Truncation counts runes, not bytes, so Cyrillic text is never split
// mid-character. A zero or negative lineLength yields empty lines; Format
// never fails.
func Format(r Printable, lineLength int, header, footer string) string {
	lines := make([]string, 0, len(r.Items)+9)

	lines = append(lines, header)
	lines = append(lines, strings.Repeat("=", separatorWidth))
	for _, item := range r.Items {
		lines = append(lines, item.Quantity.String()+" x "+padName(item.Name)+" "+item.Total.StringFixed(2))
	}
	lines = append(lines, strings.Repeat("-", separatorWidth))
	lines = append(lines, "СУМА\t"+r.Total.StringFixed(2))
	lines = append(lines, capitalize(r.Payment.Type)+"\t"+r.Payment.Amount.StringFixed(2))
	lines = append(lines, "Решта\t"+r.Rest.StringFixed(2))
	lines = append(lines, strings.Repeat("=", separatorWidth))
	lines = append(lines, r.CreatedAt.Format("02.01.2006 15:04"))
	lines = append(lines, footer)

	for i, line := range lines {
		lines[i] = truncate(line, lineLength)
	}
	return strings.Join(lines, "\n")
}

// padName cuts the name to the first 10 runes and right-pads it with spaces
// to a 10-rune field.
func padName(name string) string {
	runes := []rune(name)
	if len(runes) > nameFieldWidth {
		runes = runes[:nameFieldWidth]
	}
	return string(runes) + strings.Repeat(" ", nameFieldWidth-len(runes))
}

// capitalize upper-cases the first rune and lower-cases the remainder,
// e.g. "cash" -> "Cash", "CARD" -> "Card".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// truncate keeps the first n runes of s. Negative n is treated as zero.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
