// Package logging builds the slog loggers used by the awinspect command.
package logging
