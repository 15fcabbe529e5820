// Package testdb provides database handles for tests: a migrated in-memory
// SQLite database that every test can use, and a migrated PostgreSQL
// connection that is only available when DATABASE_URL is set.
package testdb
