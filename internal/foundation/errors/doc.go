// Package errors provides the classified error primitives used across the markup tools.
//
// Parse failures, configuration problems and I/O failures are all reported as
// ClassifiedError values so the driver, the CLI adapter and tests can branch on
// a category instead of matching message strings.
//
// Key features:
//   - ErrorCategory: Broad error classification (grammar, unterminated, not_found, recursion, config, ...)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter for exit codes and user-facing messages
//
// Example usage:
//
//	err := errors.UnterminatedError("tag is never closed").
//		WithContext("construct", "<div>").
//		WithContext("opened_at", 12).
//		Build()
package errors
