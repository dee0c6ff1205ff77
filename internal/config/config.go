package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled" yaml:"enabled"`
	Time     string   `mapstructure:"time" yaml:"time"`         // "19:00"
	Workdays []string `mapstructure:"workdays" yaml:"workdays"` // ["Mon","Tue","Wed","Thu","Fri"]
	Holidays []string `mapstructure:"holidays" yaml:"holidays"` // ["2025-01-01"]
	Timezone string   `mapstructure:"timezone" yaml:"timezone"` // e.g. "America/Mexico_City" (optional)
}

type ServerConfig struct {
	Addr    string        `mapstructure:"addr" yaml:"addr"`
	URL     string        `mapstructure:"url" yaml:"url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

type StoreConfig struct {
	Driver          string `mapstructure:"driver" yaml:"driver"` // sqlite | firestore
	Path            string `mapstructure:"path" yaml:"path"`
	ProjectID       string `mapstructure:"project_id" yaml:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"`
}

type StepsConfig struct {
	Objective int `mapstructure:"objective" yaml:"objective"`
	Current   int `mapstructure:"current" yaml:"current"`
}

type NotificationsConfig struct {
	Enabled      bool `mapstructure:"enabled" yaml:"enabled"`
	AnalysisDone bool `mapstructure:"analysis_done" yaml:"analysis_done"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type Config struct {
	Theme         string              `mapstructure:"theme" yaml:"theme"`
	Server        ServerConfig        `mapstructure:"server" yaml:"server"`
	Store         StoreConfig         `mapstructure:"store" yaml:"store"`
	Steps         StepsConfig         `mapstructure:"steps" yaml:"steps"`
	Reminder      ReminderConfig      `mapstructure:"reminder" yaml:"reminder"`
	Notifications NotificationsConfig `mapstructure:"notifications" yaml:"notifications"`
	Log           LogConfig           `mapstructure:"log" yaml:"log"`
}

const (
	DefaultObjective = 10000
	DefaultSteps     = 6000
)

func Default() Config {
	return Config{
		Theme: "default",
		Server: ServerConfig{
			Addr:    ":3000",
			URL:     "http://localhost:3000",
			Timeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Driver: "sqlite",
			Path:   "",
		},
		Steps: StepsConfig{
			Objective: DefaultObjective,
			Current:   DefaultSteps,
		},
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "19:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			Holidays: []string{},
			Timezone: "",
		},
		Notifications: NotificationsConfig{
			Enabled:      true,
			AnalysisDone: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Dir is the XDG-style config directory, created on demand.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "smartstep")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// DataDir holds the SQLite database and the TUI log file.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "share", "smartstep")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Path is the config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads ~/.config/smartstep/config.yaml; a missing file yields defaults.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads the given file with SMARTSTEP_* environment overrides.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("smartstep")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.url", cfg.Server.URL)
	v.SetDefault("server.timeout", cfg.Server.Timeout)
	v.SetDefault("store.driver", cfg.Store.Driver)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("store.project_id", cfg.Store.ProjectID)
	v.SetDefault("store.credentials_file", cfg.Store.CredentialsFile)
	v.SetDefault("steps.objective", cfg.Steps.Objective)
	v.SetDefault("steps.current", cfg.Steps.Current)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)
	v.SetDefault("notifications.enabled", cfg.Notifications.Enabled)
	v.SetDefault("notifications.analysis_done", cfg.Notifications.AnalysisDone)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	// normalize workdays
	for i, d := range cfg.Reminder.Workdays {
		cfg.Reminder.Workdays[i] = normalizeDay(d)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	return cfg, nil
}

// SetObjective persists a new daily step objective into the config file.
func SetObjective(path string, objective int) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	v.Set("steps.objective", objective)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// StorePath resolves the SQLite file, defaulting into DataDir.
func (c Config) StorePath() (string, error) {
	if p := strings.TrimSpace(c.Store.Path); p != "" {
		return p, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "smartstep.db"), nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

func normalizeDay(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	if len(d) > 3 {
		d = d[:3]
	}
	if d == "" {
		return d
	}
	return strings.ToUpper(d[:1]) + d[1:]
}
