package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateBackend validates a storage backend name
func (v *Validator) ValidateBackend(backend string) error {
	switch backend {
	case "file", "sqlite":
		return nil
	}
	return fmt.Errorf("invalid storage backend %q (must be: file, sqlite)", backend)
}

// ValidateSchedule validates a five-field cron expression
func (v *Validator) ValidateSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("janitor schedule cannot be empty when the janitor is enabled")
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid janitor schedule %q: %w", schedule, err)
	}
	return nil
}

// ValidateLogLevel validates a zerolog level name
func (v *Validator) ValidateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return nil
}

// ValidateExportFormat validates an export format name
func (v *Validator) ValidateExportFormat(format string) error {
	switch format {
	case "json", "csv", "txt":
		return nil
	}
	return fmt.Errorf("invalid export format %q (must be: json, csv, txt)", format)
}
