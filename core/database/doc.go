// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration.
//
// # Connect
//
// Connect opens the database selected by Config.Driver. The connection is optional:
// the sorter only needs it when containers are persisted in the container_slots table.
//
// # Schema Inspection
//
// GetTableColumns reads the live column definitions of a table (SHOW COLUMNS on MySQL,
// PRAGMA table_info on SQLite). The server integrity check compares them against the
// gorm model of the container slot rows.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "container_slots")
package database
