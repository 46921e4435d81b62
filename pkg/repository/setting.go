package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/newsdesk/pkg/domain"
)

// SettingRepository is the typed settings store. Values are kept as text tagged
// with a type and decoded on read, see domain.DecodeSetting.
type SettingRepository struct {
	db *sqlx.DB
}

// settingSQL represents a site setting row
type settingSQL struct {
	Key         string         `db:"setting_key"`
	Value       sql.NullString `db:"setting_value"`
	Type        string         `db:"setting_type"`
	Description sql.NullString `db:"description"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

const settingColumns = "setting_key, setting_value, setting_type, description, updated_at"

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get retrieves a decoded setting by key
func (r *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var row settingSQL
	err := r.db.GetContext(ctx, &row, "SELECT "+settingColumns+" FROM site_settings WHERE setting_key = ?", key)
	if err != nil {
		return nil, mapReadError("get setting", "Setting", err)
	}
	s := row.toRecord().Decode()
	return &s, nil
}

// Set inserts or updates a setting in a single statement. The value is encoded according
// to upd.Type, description is kept unchanged when upd.Description is nil.
func (r *SettingRepository) Set(ctx context.Context, upd domain.SettingUpdate) (*domain.Setting, error) {
	if upd.Key == "" {
		return nil, domain.Invalid("key", "is required")
	}
	if upd.Type == "" {
		upd.Type = domain.SettingText
	}
	stored, err := domain.EncodeSetting(upd.Type, upd.Value)
	if err != nil {
		return nil, fmt.Errorf("encode setting %s: %w", upd.Key, err)
	}

	var desc sql.NullString
	if upd.Description != nil {
		desc = sql.NullString{String: *upd.Description, Valid: true}
	}

	query := `
		INSERT INTO site_settings (setting_key, setting_value, setting_type, description, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(setting_key) DO UPDATE SET
			setting_value = excluded.setting_value,
			setting_type = excluded.setting_type,
			description = COALESCE(excluded.description, site_settings.description),
			updated_at = excluded.updated_at
		RETURNING ` + settingColumns

	var row settingSQL
	err = withRetry(ctx, func() error {
		return r.db.GetContext(ctx, &row, query, upd.Key, stored, string(upd.Type), desc, now())
	})
	if err != nil {
		return nil, fmt.Errorf("set setting: %w", err)
	}
	s := row.toRecord().Decode()
	return &s, nil
}

// Update changes an existing setting, encoding the new value with the stored type
func (r *SettingRepository) Update(ctx context.Context, key string, patch domain.SettingPatch) (*domain.Setting, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var row settingSQL
	if err = tx.GetContext(ctx, &row, "SELECT "+settingColumns+" FROM site_settings WHERE setting_key = ?", key); err != nil {
		return nil, mapReadError("update setting", "Setting", err)
	}

	if patch.SetValue {
		stored, encErr := domain.EncodeSetting(domain.SettingType(row.Type), patch.Value)
		if encErr != nil {
			return nil, fmt.Errorf("encode setting %s: %w", key, encErr)
		}
		row.Value = stored
	}
	if patch.Description != nil {
		row.Description = sql.NullString{String: *patch.Description, Valid: true}
	}
	row.UpdatedAt = now()

	_, err = tx.NamedExecContext(ctx, `
		UPDATE site_settings
		SET setting_value = :setting_value, description = :description, updated_at = :updated_at
		WHERE setting_key = :setting_key`, &row)
	if err != nil {
		return nil, fmt.Errorf("update setting: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit setting update: %w", err)
	}
	s := row.toRecord().Decode()
	return &s, nil
}

// List returns all settings decoded into a single mapping, plus the raw records
func (r *SettingRepository) List(ctx context.Context) (map[string]any, []domain.SettingRecord, error) {
	var rows []settingSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT "+settingColumns+" FROM site_settings ORDER BY setting_key"); err != nil {
		return nil, nil, fmt.Errorf("list settings: %w", err)
	}

	values := make(map[string]any, len(rows))
	records := make([]domain.SettingRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toRecord()
		values[row.Key] = records[i].Decode().Value.Any()
	}
	return values, records, nil
}

// ListByPrefix returns raw records with keys starting with prefix, e.g. "nav_" or "seo_"
func (r *SettingRepository) ListByPrefix(ctx context.Context, prefix string) ([]domain.SettingRecord, error) {
	var rows []settingSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT "+settingColumns+` FROM site_settings WHERE setting_key LIKE ? ESCAPE '\' ORDER BY setting_key`,
		likeEscape(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("list settings by prefix %q: %w", prefix, err)
	}

	records := make([]domain.SettingRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toRecord()
	}
	return records, nil
}

// Delete removes a setting, fails with not found if key is absent
func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM site_settings WHERE setting_key = ?", key)
	if err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return checkAffected("delete setting", "Setting", res)
}

func (s settingSQL) toRecord() domain.SettingRecord {
	rec := domain.SettingRecord{
		Key:       s.Key,
		Type:      domain.SettingType(s.Type),
		UpdatedAt: s.UpdatedAt,
	}
	if s.Value.Valid {
		v := s.Value.String
		rec.Value = &v
	}
	if s.Description.Valid {
		d := s.Description.String
		rec.Description = &d
	}
	return rec
}
