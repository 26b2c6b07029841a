package pricing

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrMalformedLevels = errors.New("malformed member level table")

// Level is one tier of the member level table. Discount is the percent paid, so 90 means 10% off.
type Level struct {
	Code     string          `json:"code" toml:"code"`
	Name     string          `json:"name" toml:"name"`
	Discount decimal.Decimal `json:"discount" toml:"discount"`
	Enabled  *bool           `json:"enabled,omitempty" toml:"enabled"`
}

func (l Level) IsEnabled() bool {
	return l.Enabled == nil || *l.Enabled
}

type TierTable struct {
	levels []Level
}

func NewTierTable(levels []Level) TierTable {
	cp := make([]Level, len(levels))
	copy(cp, levels)
	return TierTable{levels: cp}
}

// ParseLevels decodes the JSON array stored under member/member_levels_json.
func ParseLevels(raw string) (TierTable, error) {
	if strings.TrimSpace(raw) == "" {
		return TierTable{}, nil
	}
	var levels []Level
	if err := json.Unmarshal([]byte(raw), &levels); err != nil {
		return TierTable{}, errors.Join(ErrMalformedLevels, err)
	}
	return NewTierTable(levels), nil
}

func (t TierTable) Levels() []Level {
	cp := make([]Level, len(t.levels))
	copy(cp, t.levels)
	return cp
}

func (t TierTable) Len() int {
	return len(t.levels)
}

func (t TierTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.levels)
}

// DiscountFor matches the member level against code or name, case-insensitively.
// Disabled tiers and percents outside (0, 100) yield no discount.
func (t TierTable) DiscountFor(level string) (decimal.Decimal, bool) {
	level = strings.TrimSpace(level)
	if level == "" {
		return decimal.Zero, false
	}
	for _, lv := range t.levels {
		if !strings.EqualFold(lv.Code, level) && !strings.EqualFold(lv.Name, level) {
			continue
		}
		if !lv.IsEnabled() || !isReducing(lv.Discount) {
			return decimal.Zero, false
		}
		return lv.Discount, true
	}
	return decimal.Zero, false
}

func isReducing(pct decimal.Decimal) bool {
	return pct.IsPositive() && pct.LessThan(hundred)
}
