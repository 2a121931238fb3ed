package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chronos-cli/chronos/internal/model"
)

// Config is the root configuration for chronos, stored in
// ~/.chronos/config.json. The file supports single-line // comments
// for documentation purposes.
type Config struct {
	// DailyTargetHours is the stored obligation of a freshly created
	// workday. Editing a day's schedule replaces it with the
	// schedule-derived value.
	DailyTargetHours float64 `json:"daily_target_hours"`
	// Schedule is the default workday schedule as "HH:MM-HH:MM" blocks.
	Schedule []string      `json:"schedule"`
	Outlook  OutlookConfig `json:"outlook"`
}

// OutlookConfig holds Microsoft Graph calendar import settings.
type OutlookConfig struct {
	// TenantID is the Azure AD tenant. Use "common" for personal/multi-tenant accounts.
	TenantID string `json:"tenant_id"`
	// ClientID is the Azure app (client) ID for the OAuth2 device code flow.
	ClientID string `json:"client_id"`
	// Timezone is the IANA timezone for event times (e.g. "Europe/Rome"). Empty = UTC.
	Timezone string `json:"timezone"`
}

const (
	// DefaultTenantID is the Microsoft "common" tenant (supports personal and
	// multi-tenant organisational accounts without additional registration).
	DefaultTenantID = "common"
	// DefaultClientID is the well-known public Azure CLI app ID.
	// It supports device code flow without a client secret and requires no
	// app registration. Replace with your own registered app ID for
	// organisational deployments.
	DefaultClientID = "04b07795-8542-4c4a-95af-30b2c573d5ab"
)

// defaultConfig returns a Config pre-filled with built-in defaults.
func defaultConfig() Config {
	schedule := make([]string, 0, len(model.DefaultSchedule))
	for _, iv := range model.DefaultSchedule {
		schedule = append(schedule, iv.String())
	}
	return Config{
		DailyTargetHours: model.DefaultTargetHours,
		Schedule:         schedule,
		Outlook: OutlookConfig{
			TenantID: DefaultTenantID,
			ClientID: DefaultClientID,
			Timezone: "",
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON
// parsing, allowing human-readable documentation inside the file.
const configTemplate = `// chronos configuration – ~/.chronos/config.json
//
// All settings are optional; the built-in defaults shown below work out
// of the box. Edit this file to customise chronos behaviour.
{
  // Obligation (in hours) assigned to a freshly created workday.
  "daily_target_hours": 8.5,

  // Default workday schedule. Editing a day's schedule replaces the
  // stored target with the value derived from these blocks.
  "schedule": ["08:30-13:00", "14:00-18:30"],

  // ── Microsoft Graph / Outlook calendar import ───────────────────────
  "outlook": {
    // Azure AD tenant ID.
    // • "common"  – personal Microsoft accounts and any organisation (default)
    // • Your organisation's tenant GUID
    "tenant_id": "common",

    // Azure application (client) ID used for the OAuth2 device code flow.
    // The built-in value is the public Azure CLI app – no app registration needed.
    "client_id": "04b07795-8542-4c4a-95af-30b2c573d5ab",

    // IANA timezone for interpreting calendar event times, e.g. "Europe/Rome".
    // Leave empty to use UTC.
    "timezone": ""
  }
}
`

// configFilePath returns the path to ~/.chronos/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".chronos", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.chronos/config.json, creating it with annotated
// defaults on first run.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always
	// get a usable Config even if the file is only partially filled in.
	def := defaultConfig()
	if cfg.DailyTargetHours <= 0 {
		cfg.DailyTargetHours = def.DailyTargetHours
	}
	if len(cfg.Schedule) == 0 {
		cfg.Schedule = def.Schedule
	}
	if cfg.Outlook.TenantID == "" {
		cfg.Outlook.TenantID = def.Outlook.TenantID
	}
	if cfg.Outlook.ClientID == "" {
		cfg.Outlook.ClientID = def.Outlook.ClientID
	}

	return cfg, nil
}

// DefaultDay builds the record assigned to a never-touched date. Blocks
// that fail to parse fall back to the built-in schedule.
func (c Config) DefaultDay() model.DayRecord {
	day := model.DefaultDay()
	day.TargetHours = c.DailyTargetHours

	var intervals []model.Interval
	for _, s := range c.Schedule {
		iv, err := model.ParseInterval(s)
		if err != nil {
			return day
		}
		intervals = append(intervals, iv)
	}
	model.SortIntervals(intervals)
	day.Intervals = intervals
	return day
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
