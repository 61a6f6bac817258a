package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
// It contains the field name and a description of the issue.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationResult holds the results of a configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid returns true if there are no validation errors.
func (vr *ValidationResult) IsValid() bool {
	return len(vr.Errors) == 0
}

// Error returns a combined error message if there are errors, nil otherwise.
func (vr *ValidationResult) Error() error {
	if len(vr.Errors) == 0 {
		return nil
	}
	messages := make([]string, 0, len(vr.Errors))
	for _, e := range vr.Errors {
		messages = append(messages, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}

// AddError adds a validation error.
func (vr *ValidationResult) AddError(field, message string) {
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning adds a validation warning.
func (vr *ValidationResult) AddWarning(field, message string) {
	vr.Warnings = append(vr.Warnings, ValidationError{Field: field, Message: message})
}

// Validate checks every section and collects all problems.
func (c *Config) Validate() *ValidationResult {
	vr := &ValidationResult{}

	if _, err := c.Log.SlogLevel(); err != nil {
		vr.AddError("log.level", err.Error())
	}
	if c.Log.MaxSizeMB < 0 {
		vr.AddError("log.max_size_mb", "must not be negative")
	}
	if c.Log.MaxBackups < 0 {
		vr.AddError("log.max_backups", "must not be negative")
	}
	if c.Log.File == "" && c.Log.MaxSizeMB != DefaultLogMaxSizeMB {
		vr.AddWarning("log.max_size_mb", "ignored without log.file")
	}

	if c.Lua.CPULimit == 0 {
		vr.AddWarning("lua.cpu_limit", "scripts run without an instruction limit")
	}
	if c.Lua.MemoryLimit == 0 {
		vr.AddWarning("lua.memory_limit", "scripts run without a memory limit")
	}

	if c.Palette.Debounce < 0 {
		vr.AddError("palette.debounce", "must not be negative")
	}
	if c.Palette.Watch && c.Palette.Path == "" {
		vr.AddError("palette.watch", "requires palette.path")
	}

	return vr
}
