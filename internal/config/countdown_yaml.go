package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TimeLayout is the civil time format used for instants in the document.
// Instants carry no zone and are read in the host's local time.
const TimeLayout = "2006-01-02T15:04:05"

// ErrInvalidTarget indicates the document's target instant is missing or malformed.
var ErrInvalidTarget = errors.New("invalid target instant")

type yamlSettings struct {
	Target             string `yaml:"target"`
	TickIntervalMillis int    `yaml:"tick_interval_ms"`
	CelebrationSeconds int    `yaml:"celebration_seconds"`
	Title              string `yaml:"title"`
	Tagline            string `yaml:"tagline"`
	Footer             string `yaml:"footer"`
	Fullscreen         bool   `yaml:"fullscreen"`
	RehearseFrom       string `yaml:"rehearse_from"`
}

// Parse reads countdown settings from a YAML document. On error the returned
// settings are the defaults.
func Parse(rawData []byte) (Settings, error) {
	settings := DefaultSettings()

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse countdown yaml: %w", err)
	}

	parsed := settings
	if err := applyYamlSettings(&parsed, fileData); err != nil {
		return settings, err
	}
	return parsed, nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) error {
	target, err := parseInstant(fileData.Target)
	if err != nil {
		return fmt.Errorf("target %q: %w: %w", fileData.Target, ErrInvalidTarget, err)
	}
	settings.Target = target

	if strings.TrimSpace(fileData.RehearseFrom) != "" {
		rehearse, err := parseInstant(fileData.RehearseFrom)
		if err != nil {
			return fmt.Errorf("rehearse_from %q: %w", fileData.RehearseFrom, err)
		}
		settings.RehearseFrom = rehearse
	}

	if fileData.TickIntervalMillis > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if fileData.CelebrationSeconds > 0 {
		settings.CelebrationWindow = time.Duration(fileData.CelebrationSeconds) * time.Second
	}
	if fileData.Title != "" {
		settings.Title = fileData.Title
	}
	if fileData.Tagline != "" {
		settings.Tagline = fileData.Tagline
	}
	if fileData.Footer != "" {
		settings.Footer = fileData.Footer
	}
	settings.Fullscreen = fileData.Fullscreen
	return nil
}

func parseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("instant is empty")
	}
	parsed, err := time.ParseInLocation(TimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse instant: %w", err)
	}
	return parsed, nil
}
