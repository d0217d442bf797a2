// Package api contains the HTTP handlers exposing the readings collection:
// request/response DTOs, JSON (de)serialization, and the mapping from
// internal errors to HTTP status codes. All business rules live below it
// in the service and domain packages.
package api
