package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	value, err := withDBContextResult(d, ctx, func(ctx context.Context) (*string, error) {
		var value *string
		err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
		return value, err
	})
	if err != nil {
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
		return wrapErr(EntitySetting, "set", key, err)
	})
}

func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return wrapErr(EntitySetting, "delete", key, err)
		}
		return nil
	})
}

// LoadBool reads a JSON boolean setting, returning def when it is absent or
// unreadable.
func LoadBool(ctx context.Context, s SettingStore, key string, def bool) bool {
	raw, ok := s.GetSetting(ctx, key)
	if !ok {
		return def
	}
	var v bool
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}
	return v
}

// SaveBool stores a boolean setting as JSON.
func SaveBool(ctx context.Context, s SettingStore, key string, v bool) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.SetSetting(ctx, key, string(raw))
}
