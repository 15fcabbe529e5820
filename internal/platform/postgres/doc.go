// Package postgres provides PostgreSQL implementations of the store
// interfaces, using the pgx database/sql driver. Its goose migrations are
// embedded and exposed through Migrations.
package postgres
