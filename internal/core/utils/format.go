package utils

import (
	"fmt"
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/govalues/decimal"
)

const (
	HourLayout        = "3:04 PM"
	FullDateLayout    = "02.01.2006"
	MonthAndDayLayout = "Jan 2"
	HeaderDateLayout  = "Mon, Jan 2"
	ShortDayLayout    = "Mon 2"
)

// CentsToDecimal converts an amount in cents to a two digit decimal.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.MustNew(cents, 2)
}

// DecimalToCents rounds d half to even at two digits and returns it in cents.
func DecimalToCents(d decimal.Decimal) int64 {
	d = d.Round(2).Pad(2)
	cents := int64(d.Coef())
	if d.IsNeg() {
		return -cents
	}
	return cents
}

func FormatAsCurrency(cents int64) string {
	d := CentsToDecimal(cents)
	if d.IsNeg() {
		return "-$" + d.Abs().String()
	}
	return "$" + d.String()
}

// FormatUIPrice renders cents as used in price inputs, e.g. "12.50".
func FormatUIPrice(cents int64) string {
	return CentsToDecimal(cents).String()
}

func ParseUIPrice(s string) (int64, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return 0, domain.NewValidationError("price", fmt.Errorf("invalid price %q", s))
	}
	return DecimalToCents(d), nil
}

func FormatAsHour(t domain.TimeOfDay) string {
	return t.On(time.Time{}).Format(HourLayout)
}

func FormatAsFullDate(d time.Time) string {
	return d.Format(FullDateLayout)
}

func FormatAsMonthAndDay(d time.Time) string {
	return d.Format(MonthAndDayLayout)
}

func FormatAsHeaderDate(d time.Time) string {
	return d.Format(HeaderDateLayout)
}

func FormatAsShortDay(d time.Time) string {
	return d.Format(ShortDayLayout)
}

func WeekDayFullName(d time.Time) string {
	return d.Weekday().String()
}
