// Package format renders amounts, dates and month keys for Turkish-locale display.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	currencySymbol = "₺"
	unknownMonth   = "Bilinmeyen"
	unknownShort   = "Bil"
)

var monthNames = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// FormatCurrency renders an amount as Turkish lira with two decimals,
// e.g. ₺1.234,56 and -₺50,00.
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Round(2)
	sign := ""
	if fixed.IsNegative() {
		sign = "-"
		fixed = fixed.Neg()
	}

	f, _ := fixed.Float64()
	p := message.NewPrinter(language.Turkish)
	return sign + currencySymbol + p.Sprint(number.Decimal(f, number.Scale(2)))
}

// FormatDate renders an ISO-8601 timestamp as dd.MM.yyyy HH:mm in loc.
// Unparseable input is returned unchanged.
func FormatDate(date string, loc *time.Location) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("02.01.2006 15:04")
}

// ParseDate parses the timestamp layouts transactions are stored with.
func ParseDate(date string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, date); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// MonthName renders a YYYY-MM key as "Mart 2024".
func MonthName(monthKey string) string {
	year, name := splitMonthKey(monthKey)
	if name == "" {
		name = unknownMonth
	}
	return name + " " + year
}

// ShortMonthName renders a YYYY-MM key as "Mar 24" for chart axes.
func ShortMonthName(monthKey string) string {
	year, name := splitMonthKey(monthKey)
	short := unknownShort
	if name != "" {
		short = string([]rune(name)[:3])
	}
	if len(year) > 2 {
		year = year[2:]
	}
	return short + " " + year
}

func splitMonthKey(monthKey string) (year, name string) {
	year, month, _ := strings.Cut(monthKey, "-")
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return year, ""
	}
	return year, monthNames[m-1]
}
