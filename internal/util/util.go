package util

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

const (
	orderSuffixMin = 1000
	orderSuffixMax = 9999
)

// NewOrderNumber builds a cart order number: the date as YYYYMMDD followed by a
// random four-digit suffix. Order numbers are informational and not unique.
func NewOrderNumber(now time.Time) string {
	return now.Format("20060102") + fmt.Sprintf("%d", orderSuffixMin+rand.IntN(orderSuffixMax-orderSuffixMin+1))
}

// FormatMoney renders an amount with two decimal places (e.g. "12.50").
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
