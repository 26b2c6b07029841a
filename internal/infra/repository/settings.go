package repository

import (
	"context"

	"gym-reservation-engine/internal/infra"
	"gym-reservation-engine/internal/infra/db"
)

type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(db db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context, group, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx,
		"SELECT setting_value FROM system_settings WHERE group_key = $1 AND setting_key = $2",
		group, key).Scan(&value)
	if err != nil {
		return "", infra.WrapRepoErr("failed to read setting "+group+"/"+key, err)
	}
	return value, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, group, key, value string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO system_settings (group_key, setting_key, setting_value, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (group_key, setting_key)
		 DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = NOW()`,
		group, key, value)
	if err != nil {
		return infra.WrapRepoErr("failed to write setting "+group+"/"+key, err)
	}
	return nil
}
