// Package config loads habitus settings from .habitus.yaml and HABITUS_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/habitus/pkg/sleep"
)

// Tab names a TUI screen.
type Tab string

const (
	TabMemories Tab = "memories"
	TabHabits   Tab = "habits"
	TabSleep    Tab = "sleep"
	TabProfile  Tab = "profile"
)

// Tabs lists the screens in display order.
func Tabs() []Tab {
	return []Tab{TabMemories, TabHabits, TabSleep, TabProfile}
}

// ParseTab returns the Tab named raw.
func ParseTab(raw string) (Tab, bool) {
	t := Tab(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range Tabs() {
		if candidate == t {
			return t, true
		}
	}
	return "", false
}

// Config is the resolved configuration.
type Config struct {
	SleepMaxHours int
	LogFile       string
	LogLevel      string
	StartTab      Tab
	NoColor       bool
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		SleepMaxHours: sleep.DefaultMaxHours,
		LogLevel:      "info",
		StartTab:      TabMemories,
	}
}

// Load reads .habitus.yaml from $HABITUS_CONFIG_PATH or the working
// directory, then applies HABITUS_* overrides. A missing file is not an
// error.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	def := Default()
	v.SetDefault("sleep.max_hours", def.SleepMaxHours)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", def.LogLevel)
	v.SetDefault("ui.start_tab", string(def.StartTab))
	v.SetDefault("ui.no_color", false)

	v.SetConfigName(".habitus") // .yaml is implicit
	v.SetEnvPrefix("HABITUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("HABITUS_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return def, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := Config{
		SleepMaxHours: v.GetInt("sleep.max_hours"),
		LogLevel:      strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		NoColor:       v.GetBool("ui.no_color"),
	}
	if cfg.SleepMaxHours < 1 {
		cfg.SleepMaxHours = def.SleepMaxHours
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	tab, ok := ParseTab(v.GetString("ui.start_tab"))
	if !ok {
		tab = def.StartTab
	}
	cfg.StartTab = tab

	if raw := strings.TrimSpace(v.GetString("log.file")); raw != "" {
		path, err := homedir.Expand(raw)
		if err != nil {
			return def, fmt.Errorf("config: expand log.file: %w", err)
		}
		cfg.LogFile = path
	}
	return cfg, nil
}
