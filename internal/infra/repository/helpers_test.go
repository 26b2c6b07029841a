//go:build unit

package repository

import (
	"strings"

	"github.com/shopspring/decimal"
)

var reservationAmount = decimal.RequireFromString("100.00")

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
