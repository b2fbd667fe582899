// cmd/satya/error.go
package main

import (
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeProvider ErrorType = "provider"
	ErrorTypeCache    ErrorType = "cache"
	ErrorTypeStore    ErrorType = "store"
	ErrorTypeBackend  ErrorType = "backend"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeServer   ErrorType = "server"
)

// Error codes
const (
	ErrProviderFetch  = "PROVIDER_001"
	ErrProviderStatus = "PROVIDER_002"
	ErrProviderParse  = "PROVIDER_003"

	ErrCacheRead  = "CACHE_001"
	ErrCacheWrite = "CACHE_002"

	ErrStoreQuery  = "STORE_001"
	ErrStoreInsert = "STORE_002"

	ErrBackendCall     = "BACKEND_001"
	ErrBackendResponse = "BACKEND_002"

	ErrConfigLoad       = "CONFIG_001"
	ErrConfigValidation = "CONFIG_002"
)

// SatyaError is the custom error type for the application. Provider and
// backend errors travel as values internally and are absorbed into
// "absent" or a tier fall-through at the collector/resolver boundary;
// they never escape to the caller of GetVerdict.
type SatyaError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Inner   error     `json:"inner,omitempty"`
}

func (e *SatyaError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("[%s-%s] %s: %v", e.Type, e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("[%s-%s] %s", e.Type, e.Code, e.Message)
}

func (e *SatyaError) Unwrap() error {
	return e.Inner
}

// NewError creates a new SatyaError
func NewError(errType ErrorType, code string, message string, inner error) *SatyaError {
	return &SatyaError{
		Type:    errType,
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// Common error constructors
func NewProviderError(code string, message string, inner error) *SatyaError {
	return NewError(ErrorTypeProvider, code, message, inner)
}

func NewCacheError(code string, message string, inner error) *SatyaError {
	return NewError(ErrorTypeCache, code, message, inner)
}

func NewStoreError(code string, message string, inner error) *SatyaError {
	return NewError(ErrorTypeStore, code, message, inner)
}

func NewBackendError(code string, message string, inner error) *SatyaError {
	return NewError(ErrorTypeBackend, code, message, inner)
}

func NewConfigError(code string, message string, inner error) *SatyaError {
	return NewError(ErrorTypeConfig, code, message, inner)
}
