package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldTool      = "tool"

	// Errors
	FieldError = "error"

	// Configuration
	FieldConfigFile = "config_file"
	FieldKey        = "key"

	// Identifier fields. FieldSSN values must be masked (see MaskSSN).
	FieldSSN   = "ssn"
	FieldSex   = "sex"
	FieldDOB   = "dob"
	FieldValid = "is_valid"
	FieldSeed  = "seed"
)

// MaskSSN keeps the first and last two characters of an identifier and
// replaces the rest. Short input is masked entirely.
func MaskSSN(s string) string {
	const keep = 2
	if len(s) <= 2*keep {
		return "****"
	}
	masked := []byte(s)
	for i := keep; i < len(masked)-keep; i++ {
		masked[i] = '*'
	}
	return string(masked)
}

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Server struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func New() *Server {
//	    return &Server{logger: logger.ComponentLogger("mcp")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
