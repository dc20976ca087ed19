package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func StrPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FormatMoney renders an amount of minor units (paise) as a decimal string,
// e.g. 45500 -> "455.00". Money never touches floating point.
func FormatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

// NewOrderID builds a creation-time ordered identifier like
// ORD-1756600000000-9f3b2c1a. The millisecond prefix keeps IDs
// monotonically distinguishable, the suffix guards against same-instant
// collisions.
func NewOrderID() string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
