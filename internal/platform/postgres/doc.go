// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in the internal/store package. It backs the readings
// HTTP API server.
package postgres
