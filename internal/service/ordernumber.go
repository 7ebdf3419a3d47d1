package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nextOrderNumber computes the order number following lastInMonth, the
// largest number already allocated in the month containing now. An empty
// lastInMonth starts the month's sequence at YYMM001.
//
// The increment never re-pads: callers rely on the YYMM prefix staying stable
// because in practice a month never reaches 999 orders. What happens past
// 999 is an open question left as-is (the incremented value runs into the
// next month's prefix range); see DESIGN.md.
func nextOrderNumber(now time.Time, lastInMonth string) (string, error) {
	if lastInMonth == "" {
		return now.Format("0601") + "001", nil
	}

	n, err := strconv.ParseInt(lastInMonth, 10, 64)
	if err != nil {
		return "", fmt.Errorf("malformed order number %q: %w", lastInMonth, err)
	}

	return strconv.FormatInt(n+1, 10), nil
}

// monthLockKey derives the advisory-lock key serializing allocations within
// one calendar month, numerically equal to the month's YYMM prefix.
func monthLockKey(now time.Time) int64 {
	return int64(now.Year()%100)*100 + int64(now.Month())
}

// NormalizeName capitalizes each word of a customer name, the way the order
// form always displayed it. A cases.Caser is stateful, so each call gets its
// own.
func NormalizeName(name string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(name)))
}
