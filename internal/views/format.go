package views

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Display layouts
const (
	DateLayout  = "02/01/2006"
	ClockLayout = "15:04"
)

var (
	// Location is the zone dates are displayed in
	Location = loadLocation("Asia/Ho_Chi_Minh")

	hundred = decimal.NewFromInt(100)
)

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}

// FormatDate returns the dd/MM/yyyy date and HH:mm time of t in Location
func FormatDate(t time.Time) (string, string) {
	local := t.In(Location)
	return local.Format(DateLayout), local.Format(ClockLayout)
}

// FormatDateString formats an RFC 3339 timestamp; unparseable input is returned unchanged.
func FormatDateString(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	date, _ := FormatDate(t)
	return date
}

// FormatOptionalDate formats t, or returns "" when it is nil
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	date, _ := FormatDate(*t)
	return date
}

// DateTimeCell renders a timestamp as a date line and a clock line
func DateTimeCell(t time.Time) Cell {
	if t.IsZero() {
		return Cell{Kind: CellDateTime, Text: "N/A"}
	}
	date, clock := FormatDate(t)
	return Cell{Kind: CellDateTime, Text: date, SubText: clock}
}

// FormatPrice renders an amount in whole đồng, e.g. "1.250.000 ₫"
func FormatPrice(amount decimal.Decimal) string {
	digits := amount.Round(0).Abs().StringFixed(0)

	var b strings.Builder
	if amount.Round(0).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteString(" ₫")
	return b.String()
}

// FormatPriceFloat is FormatPrice for amounts decoded from JSON numbers
func FormatPriceFloat(amount float64) string {
	return FormatPrice(decimal.NewFromFloat(amount))
}

// DiscountedPrice returns price × (100 − discount) / 100 rounded to whole đồng.
// The discount is clamped to 0..100.
func DiscountedPrice(price, discount float64) decimal.Decimal {
	d := decimal.NewFromFloat(discount)
	if d.IsNegative() {
		d = decimal.Zero
	}
	if d.GreaterThan(hundred) {
		d = hundred
	}
	return decimal.NewFromFloat(price).Mul(hundred.Sub(d)).Div(hundred).Round(0)
}
