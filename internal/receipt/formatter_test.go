package receipt

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formatTime = time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)

func printable(items []LineItem, payment Payment) Printable {
	c := Compute(items, payment)
	return Printable{
		Items:     c.Items,
		Payment:   c.Payment,
		Total:     c.Total,
		Rest:      c.Rest,
		CreatedAt: formatTime,
	}
}

func TestFormatFullLayout(t *testing.T) {
	t.Parallel()

	r := printable(
		[]LineItem{{Name: "Product", Price: d("10.0"), Quantity: d("2")}},
		Payment{Type: "cash", Amount: d("20.0")},
	)

	got := Format(r, DefaultLineLength, DefaultHeader, DefaultFooter)

	want := strings.Join([]string{
		"ФОП Джонсонюк Борис",
		"==============================",
		"2 x Product    20.00",
		"------------------------------",
		"СУМА\t20.00",
		"Cash\t20.00",
		"Решта\t0.00",
		"==============================",
		"30.08.2026 14:05",
		"Дякуємо за покупку!",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatLineCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []LineItem
	}{
		{name: "no products", items: nil},
		{name: "one product", items: []LineItem{{Name: "A", Price: d("1"), Quantity: d("1")}}},
		{name: "three products", items: []LineItem{
			{Name: "A", Price: d("1"), Quantity: d("1")},
			{Name: "B", Price: d("2"), Quantity: d("2")},
			{Name: "C", Price: d("3"), Quantity: d("3")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := printable(tt.items, Payment{Type: "cash", Amount: d("100")})
			got := Format(r, DefaultLineLength, DefaultHeader, DefaultFooter)

			// 9 static lines plus one per product.
			assert.Len(t, strings.Split(got, "\n"), 9+len(tt.items))
		})
	}
}

func TestFormatZeroProducts(t *testing.T) {
	t.Parallel()

	r := printable(nil, Payment{Type: "card", Amount: d("55.5")})
	got := Format(r, DefaultLineLength, DefaultHeader, DefaultFooter)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "СУМА\t0.00", lines[3])
	assert.Equal(t, "Card\t55.50", lines[4])
	assert.Equal(t, "Решта\t55.50", lines[5])
}

func TestFormatNameFieldWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		itemName string
		want     string
	}{
		{name: "short name is right-padded", itemName: "Tea", want: "1 x Tea        5.00"},
		{name: "long name is cut to ten chars", itemName: "Extraordinary", want: "1 x Extraordin 5.00"},
		{name: "cyrillic name is cut by rune", itemName: "Молоко літр преміум", want: "1 x Молоко літ 5.00"},
		{name: "exactly ten chars untouched", itemName: "Abcdefghij", want: "1 x Abcdefghij 5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := printable(
				[]LineItem{{Name: tt.itemName, Price: d("5"), Quantity: d("1")}},
				Payment{Type: "cash", Amount: d("5")},
			)
			got := Format(r, DefaultLineLength, DefaultHeader, DefaultFooter)

			assert.Equal(t, tt.want, strings.Split(got, "\n")[2])
		})
	}
}

func TestFormatTruncatesEveryLine(t *testing.T) {
	t.Parallel()

	r := printable(
		[]LineItem{{Name: "Довгоназва продукту", Price: d("123.45"), Quantity: d("10")}},
		Payment{Type: "готівка", Amount: d("2000")},
	)

	for _, lineLength := range []int{3, 5, 12, 30, 40} {
		got := Format(r, lineLength, DefaultHeader, DefaultFooter)
		for _, line := range strings.Split(got, "\n") {
			assert.LessOrEqual(t, utf8.RuneCountInString(line), lineLength,
				"line %q exceeds %d runes", line, lineLength)
		}
	}
}

func TestFormatShortLineLengthClipsSeparators(t *testing.T) {
	t.Parallel()

	r := printable(nil, Payment{Type: "cash", Amount: d("10")})
	got := Format(r, 5, DefaultHeader, DefaultFooter)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "ФОП Д", lines[0])
	assert.Equal(t, "=====", lines[1])
	assert.Equal(t, "-----", lines[2])
	// The tab counts as one rune toward the limit, so the amount is clipped.
	assert.Equal(t, "СУМА\t", lines[3])
}

func TestFormatNonPositiveLineLength(t *testing.T) {
	t.Parallel()

	r := printable(
		[]LineItem{{Name: "Product", Price: d("10"), Quantity: d("1")}},
		Payment{Type: "cash", Amount: d("10")},
	)

	for _, lineLength := range []int{0, -1, -40} {
		got := Format(r, lineLength, DefaultHeader, DefaultFooter)
		for _, line := range strings.Split(got, "\n") {
			assert.Empty(t, line)
		}
		assert.Len(t, strings.Split(got, "\n"), 10)
	}
}

func TestFormatIdempotent(t *testing.T) {
	t.Parallel()

	r := printable(
		[]LineItem{
			{Name: "Хліб", Price: d("25.50"), Quantity: d("2")},
			{Name: "Сир", Price: d("240"), Quantity: d("0.5")},
		},
		Payment{Type: "card", Amount: d("200")},
	)

	first := Format(r, DefaultLineLength, DefaultHeader, DefaultFooter)
	second := Format(r, DefaultLineLength, DefaultHeader, DefaultFooter)
	assert.Equal(t, first, second)
}

func TestFormatPaymentTypeCapitalized(t *testing.T) {
	t.Parallel()

	tests := []struct {
		paymentType string
		want        string
	}{
		{paymentType: "cash", want: "Cash\t10.00"},
		{paymentType: "CARD", want: "Card\t10.00"},
		{paymentType: "готівка", want: "Готівка\t10.00"},
		{paymentType: "", want: "\t10.00"},
	}

	for _, tt := range tests {
		r := printable(nil, Payment{Type: tt.paymentType, Amount: d("10")})
		got := Format(r, DefaultLineLength, DefaultHeader, DefaultFooter)
		assert.Equal(t, tt.want, strings.Split(got, "\n")[4])
	}
}

func TestFormatNegativeRest(t *testing.T) {
	t.Parallel()

	r := printable(
		[]LineItem{{Name: "Wine", Price: d("150"), Quantity: d("1")}},
		Payment{Type: "cash", Amount: d("100")},
	)
	got := Format(r, DefaultLineLength, DefaultHeader, DefaultFooter)

	assert.Contains(t, got, "Решта\t-50.00")
}
