// Package logging builds the slog loggers used by the config store, the CLI
// and the Fx application. Output is JSON by default, or logfmt-style text.
package logging
