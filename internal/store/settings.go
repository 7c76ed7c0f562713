package store

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/ayusman/skytouch/internal/config"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// configKey is the settings row holding the serialized configuration.
const configKey = "config"

// SettingsRepository persists application settings as key-value pairs.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Get retrieves a raw setting value by key.
func (r *SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Set stores a raw setting value, replacing any existing one.
func (r *SettingsRepository) Set(key, value string) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// LoadConfig retrieves the stored configuration. A missing row yields the
// defaults rather than an error, so a fresh database starts usable.
func (r *SettingsRepository) LoadConfig() (config.Config, error) {
	raw, err := r.Get(configKey)
	if errors.Is(err, ErrNotFound) {
		return config.Default(), nil
	}
	if err != nil {
		return config.Config{}, err
	}
	return config.Load([]byte(raw))
}

// SaveConfig stores the configuration as JSON under the config key.
func (r *SettingsRepository) SaveConfig(cfg config.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.Set(configKey, string(data))
}
