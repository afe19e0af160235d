package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/refslim/internal/core/domain"
	"github.com/custodia-labs/refslim/internal/core/ports/driven"
	"github.com/custodia-labs/refslim/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyInputPath       = "input.path"
	KeyOutputPath      = "output.path"
	KeyOutputASCIIOnly = "output.ascii_only"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Unset keys take their defaults.
func (s *SettingsService) Get() domain.Settings {
	defaults := domain.DefaultSettings()
	if s.configStore == nil {
		return defaults
	}

	return domain.Settings{
		InputPath:  s.getString(KeyInputPath, defaults.InputPath),
		OutputPath: s.getString(KeyOutputPath, defaults.OutputPath),
		ASCIIOnly:  s.getBool(KeyOutputASCIIOnly, defaults.ASCIIOnly),
	}
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return fmt.Errorf("%w: no config store", domain.ErrInvalidInput)
	}

	switch key {
	case KeyInputPath, KeyOutputPath:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	case KeyOutputASCIIOnly:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		if err := s.configStore.Set(key, b); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return nil
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{KeyInputPath, KeyOutputPath, KeyOutputASCIIOnly}
}

// Path returns the config file path, or empty if there is none.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

func (s *SettingsService) getBool(key string, def bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetBool(key)
}
