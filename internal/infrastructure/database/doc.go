// Package database manages the SQLite connection and schema migrations
// for the Gadget Armoury service.
//
// It wraps database/sql with armoury-specific lifecycle management:
// directory creation, WAL and busy-timeout pragmas, a single-writer
// connection pool, health checks, and an embedded-filesystem migration
// runner backed by the schema_migrations table.
package database
