package config

import (
	"errors"
	"fmt"
)

// ErrAlreadyParsed is returned when Parse is called more than once
var ErrAlreadyParsed = errors.New("configuration already parsed")

// ErrParseFlags is returned when the command line flags cannot
// be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}

// ErrReadConfigFile is returned when the configuration file
// cannot be read
type ErrReadConfigFile struct {
	Path  string
	Cause error
}

// Error implementation of error for ErrReadConfigFile
func (e ErrReadConfigFile) Error() string {
	return fmt.Sprintf("failed to read config file %s: %s", e.Path, e.Cause.Error())
}

func (e ErrReadConfigFile) Unwrap() error {
	return e.Cause
}

// ErrInvalidValue is returned by a Binder when a parameter has
// a value it cannot use
type ErrInvalidValue struct {
	Key   string
	Value interface{}
	Cause error
}

// Error implementation of error for ErrInvalidValue
func (e ErrInvalidValue) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("invalid value %v for %s", e.Value, e.Key)
	}

	return fmt.Sprintf("invalid value %v for %s: %s", e.Value, e.Key, e.Cause.Error())
}

func (e ErrInvalidValue) Unwrap() error {
	return e.Cause
}
