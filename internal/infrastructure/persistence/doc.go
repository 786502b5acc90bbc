// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store accounts, profiles and pokemon
// image records in PostgreSQL or SQLite.
package persistence
