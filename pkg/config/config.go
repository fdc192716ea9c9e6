package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"caltui/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	// APIBaseURL is the base endpoint of the remote event API.
	APIBaseURL string `mapstructure:"api_base_url"`

	// RequestTimeoutSeconds bounds each API call; 0 disables the deadline.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds"`

	// WeekStart is the first day of the week in calendar views
	// ("sunday" or "monday").
	WeekStart string `mapstructure:"week_start"`

	KeyMap     map[string]string `mapstructure:"keymap"`
	StylesFile string            `mapstructure:"styles_file"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	MutedTextColor    string `json:"muted_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`

	// Event chip colors, keyed by the fixed event color names
	EventBlue   string `json:"event_blue"`
	EventGreen  string `json:"event_green"`
	EventRed    string `json:"event_red"`
	EventYellow string `json:"event_yellow"`
	EventPurple string `json:"event_purple"`
}

// Load reads the application configuration, creating a default config file
// on first run. An empty configPath uses ~/.config/caltui/config.json.
func Load(configPath string) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}

	configDir := filepath.Join(homeDir, ".config", "caltui")

	config := Config{
		APIBaseURL:            "http://localhost:3000",
		RequestTimeoutSeconds: 15,
		WeekStart:             "sunday",
		KeyMap:                keymaps.GetDefaultKeyMappings(),
		StylesFile:            filepath.Join(configDir, "styles.json"),
	}

	// Setup viper
	v := viper.New()
	v.SetConfigType("json")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !errors.Is(err, fs.ErrNotExist) {
			return config, Styles{}, err
		}
		// Config file not found, create default config at the path the
		// next run will read it from.
		target := filepath.Join(configDir, "config.json")
		if configPath != "" {
			target = configPath
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return config, Styles{}, err
		}
		v.Set("api_base_url", config.APIBaseURL)
		v.Set("request_timeout_seconds", config.RequestTimeoutSeconds)
		v.Set("week_start", config.WeekStart)
		v.Set("keymap", config.KeyMap)
		v.Set("styles_file", config.StylesFile)
		if err := v.WriteConfigAs(target); err != nil {
			return config, Styles{}, err
		}
	} else {
		if err := v.Unmarshal(&config); err != nil {
			return config, Styles{}, err
		}
	}

	config.normalize()

	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, fmt.Errorf("error loading styles: %w", err)
	}

	return config, styles, nil
}

func (c *Config) normalize() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = "http://localhost:3000"
	}
	if c.RequestTimeoutSeconds < 0 {
		c.RequestTimeoutSeconds = 0
	}
	switch c.WeekStart {
	case "sunday", "monday":
	default:
		c.WeekStart = "sunday"
	}
	if c.KeyMap == nil {
		c.KeyMap = keymaps.GetDefaultKeyMappings()
	}
}

// loadStyles loads the application styles from the specified path
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		MutedTextColor:    "243",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		EventBlue:         "33",
		EventGreen:        "35",
		EventRed:          "160",
		EventYellow:       "178",
		EventPurple:       "135",
	}

	// Try to read the styles file
	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		// If the file doesn't exist, create it with default values
		if os.IsNotExist(err) {
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	// File exists, parse it
	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
