package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input and configuration errors
const (
	// ErrCodeInvalidInput indicates an argument or option value is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates a configuration struct failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Execution errors
const (
	// ErrCodeContractViolation indicates a caller broke a producer or
	// iterator precondition. Only raised as a panic value.
	ErrCodeContractViolation ErrorCode = "CONTRACT_VIOLATION"
	// ErrCodeCancelled indicates the driving context was cancelled.
	ErrCodeCancelled ErrorCode = "CANCELLED"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
