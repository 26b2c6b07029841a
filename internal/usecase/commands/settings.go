package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"gym-reservation-engine/internal/domain/pricing"
	"gym-reservation-engine/internal/pkg/errs"
	"gym-reservation-engine/internal/usecase/shared"
)

type SettingsCommands interface {
	ImportMemberLevels(ctx context.Context, levels []pricing.Level) error
	InvalidateMemberLevels()
}

type settingsCommandsImpl struct {
	uow    shared.UnitOfWork
	tiers  TierDiscounts
	logger *slog.Logger
}

func NewSettingsCommands(uow shared.UnitOfWork, tiers TierDiscounts, logger *slog.Logger) SettingsCommands {
	return &settingsCommandsImpl{uow: uow, tiers: tiers, logger: logger}
}

// ImportMemberLevels replaces the tier table and drops the cached copy.
func (s *settingsCommandsImpl) ImportMemberLevels(ctx context.Context, levels []pricing.Level) error {
	for _, lv := range levels {
		if lv.Code == "" && lv.Name == "" {
			return errs.Mark(errs.New("member level needs a code or a name"), errs.ErrValidation)
		}
		if lv.Discount.IsNegative() {
			return errs.Mark(errs.Newf("member level %q has a negative discount", lv.Code), errs.ErrValidation)
		}
	}

	raw, err := json.Marshal(pricing.NewTierTable(levels))
	if err != nil {
		return errs.Wrap(err, "encode member levels")
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Upsert(ctx, shared.SettingsGroupMember, shared.SettingsKeyMemberLevel, string(raw))
	})
	if err != nil {
		return markRepoErr(err, nil)
	}

	s.tiers.Invalidate()
	s.logger.InfoContext(ctx, "member levels imported", slog.Int("levels", len(levels)))
	return nil
}

func (s *settingsCommandsImpl) InvalidateMemberLevels() {
	s.tiers.Invalidate()
}
