// Package logging provides structured logging utilities for gtflow components.
//
// # Overview
//
// This package wraps the standard library slog package with gtflow defaults
// and conventions for consistent logging across the engine and the CLI. It
// supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("gtflow", "v1.0.0")
//	    slog.Info("resolving recipe", "machine", "electric blast furnace")
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("gtflow", "v1.0.0", "debug")
//	logger.Debug("heat overclock", "excess", 1701)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug gtflow resolve --machine ebf --tier hv ...
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "recipe resolved",
//	    "module": "gtflow",
//	    "version": "v1.0.0",
//	    "family": "heat"
//	}
package logging
