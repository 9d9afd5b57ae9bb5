// Package errors provides the structured error type used outside the
// producer hot path: configuration loading, option validation and bridge
// cancellation. Contract violations detected by debug assertions panic with
// an *AppError so that recovered values carry the same codes and details.
package errors
