// Package service contains the reading repository: the backend-agnostic
// owner of the authoritative reading set, its sort order, and the edit
// reconciliation path. Screens and handlers hold only transient copies
// obtained from LoadAll.
package service
