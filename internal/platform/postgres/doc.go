// Package postgres implements the internal/store interfaces on PostgreSQL
// through database/sql and the pgx driver. Queries run against store.DBTX so
// every store works on either the pool or a transaction, and database errors
// are translated into store sentinels with MapError.
//
// The schema lives in the embedded goose migrations under migrations/.
package postgres
