// Package repository contains data access logic separated from the HTTP
// handlers.  Sentinel errors defined here let handlers map failure
// scenarios to HTTP codes without inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
