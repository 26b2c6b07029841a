//go:build unit

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levels.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadLevelFile(t *testing.T) {
	t.Run("decodes levels in file order", func(t *testing.T) {
		path := writeFile(t, `
[[level]]
code = "GOLD"
name = "Gold"
discount = 15

[[level]]
code = "SILVER"
name = "Silver"
discount = 7.5
enabled = false
`)
		levels, err := loadLevelFile(path)
		require.NoError(t, err)
		require.Len(t, levels, 2)

		assert.Equal(t, "GOLD", levels[0].Code)
		assert.True(t, levels[0].Discount.Equal(decimal.NewFromInt(15)))
		assert.True(t, levels[0].IsEnabled())

		assert.Equal(t, "Silver", levels[1].Name)
		assert.True(t, levels[1].Discount.Equal(decimal.RequireFromString("7.5")))
		assert.False(t, levels[1].IsEnabled())
	})

	cases := []struct {
		name string
		body string
	}{
		{name: "unknown key", body: "[[level]]\ncode = \"GOLD\"\nrate = 10\n"},
		{name: "no levels", body: "# empty\n"},
		{name: "malformed", body: "[[level]\ncode = \n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadLevelFile(writeFile(t, tc.body))
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := loadLevelFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestParseSlotTime(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)

	got, err := parseSlotTime("2026-10-20 14:00", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 10, 20, 6, 0, 0, 0, time.UTC)))

	got, err = parseSlotTime("2026-10-20T14:00:00Z", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 10, 20, 14, 0, 0, 0, time.UTC)))

	_, err = parseSlotTime("tomorrow", loc)
	assert.Error(t, err)
}
