package errors

import "fmt"

// Error codes
const (
	CodeMissingCredential  = "MISSING_CREDENTIAL"
	CodeTextGeneration     = "TEXT_GENERATION_FAILED"
	CodeImageGeneration    = "IMAGE_GENERATION_FAILED"
	CodeCombinedGeneration = "COMBINED_GENERATION_FAILED"
	CodeValidation         = "VALIDATION_ERROR"
)

// Sentinels for errors.Is. Matching is by code only.
var (
	ErrMissingCredential  = &AppError{Code: CodeMissingCredential}
	ErrTextGeneration     = &AppError{Code: CodeTextGeneration}
	ErrImageGeneration    = &AppError{Code: CodeImageGeneration}
	ErrCombinedGeneration = &AppError{Code: CodeCombinedGeneration}
	ErrValidation         = &AppError{Code: CodeValidation}
)

type AppError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CredentialError is fatal at startup: nothing can be generated without it.
type CredentialError struct {
	*AppError
	Provider string
	EnvVar   string
}

func NewCredentialError(provider, envVar string) *CredentialError {
	return &CredentialError{
		AppError: &AppError{
			Message:    fmt.Sprintf("%s is required for provider %s", envVar, provider),
			Code:       CodeMissingCredential,
			StatusCode: 500,
			Context: map[string]any{
				"provider": provider,
				"env":      envVar,
			},
		},
		Provider: provider,
		EnvVar:   envVar,
	}
}

// GenerationError reports a failed remote generation call.
type GenerationError struct {
	*AppError
	Provider string
	Model    string
}

func NewTextGenerationError(provider, model string, cause error) *GenerationError {
	return newGenerationError("failed to generate pitch script", CodeTextGeneration, provider, model, cause)
}

func NewImageGenerationError(provider, model string, cause error) *GenerationError {
	return newGenerationError("failed to generate logo", CodeImageGeneration, provider, model, cause)
}

// NewCombinedGenerationError hides which of the two calls failed; the
// branch errors are logged by the caller instead of being wrapped.
func NewCombinedGenerationError() *GenerationError {
	return &GenerationError{
		AppError: &AppError{
			Message:    "failed to generate content, one of the API calls may have failed",
			Code:       CodeCombinedGeneration,
			StatusCode: 502,
		},
	}
}

func newGenerationError(message, code, provider, model string, cause error) *GenerationError {
	return &GenerationError{
		AppError: &AppError{
			Message:    message,
			Code:       code,
			StatusCode: 502,
			Context: map[string]any{
				"provider": provider,
				"model":    model,
			},
			Cause: cause,
		},
		Provider: provider,
		Model:    model,
	}
}

type ValidationError struct {
	*AppError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}
