// Package errors provides structured error types for programmatic error
// handling across the overclock engine and its callers.
//
// Every failure the engine can report carries an ErrorCode, so a caller such
// as a throughput balancer can decide whether to abort a chain without
// parsing messages:
//
//	if errors.IsCode(err, errors.ErrCodeInsufficientHeat) {
//	    // recipe cannot run with the configured coils
//	}
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInvalidTier,
//	    "requested tier is below the recipe base tier",
//	    map[string]any{
//	        "base":      "hv",
//	        "requested": "mv",
//	    },
//	)
package errors
