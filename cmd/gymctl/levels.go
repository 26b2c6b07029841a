package main

import (
	"context"
	"fmt"

	"gym-reservation-engine/internal/domain/pricing"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Manage the member tier discount table",
}

var levelsImportCmd = &cobra.Command{
	Use:   "import FILE.toml",
	Short: "Replace the tier table with the levels in a TOML file",
	Long: `Replace the tier table stored in system_settings.

The file lists one [[level]] table per tier:

  [[level]]
  code = "GOLD"
  name = "Gold"
  discount = 85   # percent of the base price charged, 0..100
  enabled = true  # optional, defaults to true`,
	Args: cobra.ExactArgs(1),
	RunE: runLevelsImport,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
	levelsCmd.AddCommand(levelsImportCmd)
}

type levelFile struct {
	Levels []levelRow `toml:"level"`
}

type levelRow struct {
	Code     string  `toml:"code"`
	Name     string  `toml:"name"`
	Discount float64 `toml:"discount"`
	Enabled  *bool   `toml:"enabled"`
}

// loadLevelFile decodes the file and rejects keys the importer would silently drop.
func loadLevelFile(path string) ([]pricing.Level, error) {
	var f levelFile
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode %s: unknown key %q", path, undecoded[0].String())
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("decode %s: no [[level]] entries", path)
	}

	levels := make([]pricing.Level, 0, len(f.Levels))
	for _, row := range f.Levels {
		levels = append(levels, pricing.Level{
			Code:     row.Code,
			Name:     row.Name,
			Discount: decimal.NewFromFloat(row.Discount),
			Enabled:  row.Enabled,
		})
	}
	return levels, nil
}

func runLevelsImport(cmd *cobra.Command, args []string) error {
	levels, err := loadLevelFile(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	return withEngine(ctx, func(ctx context.Context, e engine) error {
		if err := e.Settings.ImportMemberLevels(ctx, levels); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d level(s)\n", len(levels))
		return nil
	})
}
