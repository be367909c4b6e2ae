// Package postgres provides the PostgreSQL implementations of the store
// interfaces, the mapping from PostgreSQL error codes to store errors, and the
// embedded schema migrations run through goose.
package postgres
