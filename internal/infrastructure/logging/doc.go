// Package logging provides structured logging for the Gadget Armoury service.
//
// It wraps the standard library's log/slog with configuration-driven
// format and level selection, and stamps every record with the service
// name and version.
package logging
