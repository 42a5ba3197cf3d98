// Package database handles the SQLite store connection.
//
// It provides a wrapper around GORM configured for the dictionary store:
// silent query logging, a busy timeout, and a Recreate helper that starts a
// fresh import run from an empty database file.
//
// The database file produced here is itself a distribution artifact — the
// iOS client ships it as-is — so the schema and filename are part of the
// external interface, not an implementation detail.
//
// # Usage
//
//	db, err := database.Recreate(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database open failed", zap.Error(err))
//	}
package database
