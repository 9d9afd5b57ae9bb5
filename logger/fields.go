package logger

import "time"

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldService   = "service"
	FieldRunID     = "run_id"
	FieldOperation = "operation"
	FieldWorkload  = "workload"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldLen       = "len"
	FieldSplits    = "splits"
	FieldLeaves    = "leaves"
	FieldItems     = "items"
	FieldDepth     = "max_depth"
	FieldPolicy    = "cost_policy"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	log.Info("done", logger.Fields("op", "zip", "items", 42))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldDuration:  d.Milliseconds(),
	}
}
