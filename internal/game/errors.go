package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig  = errors.New("invalid beatmap config")
	ErrLaneOutOfRange = errors.New("lane out of range")
	ErrInvalidNote    = errors.New("invalid note")
)

// ConfigError reports the beatmap field that failed validation.
type ConfigError struct {
	Field string
	Value float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %v must be positive, got %v", ErrInvalidConfig, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
