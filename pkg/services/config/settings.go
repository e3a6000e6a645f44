package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Settings drive report generation.
type Settings struct {
	Title  string   `mapstructure:"title" default:"Monthly Sales Analysis" validate:"required"`
	Seed   uint64   `mapstructure:"seed" default:"42"`
	Min    int      `mapstructure:"min" default:"80"`
	Max    int      `mapstructure:"max" default:"200" validate:"gtefield=Min"`
	Labels []string `mapstructure:"labels" validate:"required,min=1,dive,required"`
}

// DefaultSettings returns Settings populated from struct defaults.
func DefaultSettings() (*Settings, error) {
	var s Settings
	if err := defaults.Set(&s); err != nil {
		return nil, fmt.Errorf("failed to apply default settings: %w", err)
	}
	return &s, nil
}

// LoadSettings reads settings from path on top of the defaults. An empty path
// returns the defaults. labels is used when the file does not set any.
func LoadSettings(path string, labels []string) (*Settings, error) {
	s, err := DefaultSettings()
	if err != nil {
		return nil, err
	}

	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := v.Unmarshal(s); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
	}

	if len(s.Labels) == 0 {
		s.Labels = append([]string(nil), labels...)
	}
	return s, nil
}

// Validate checks the settings after file values and flag overrides are applied.
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid settings: %w", err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
