// Package repository defines error values reused across repositories.
// These sentinels let handlers map failure scenarios onto HTTP codes
// without inspecting driver errors: a duplicate translation key becomes
// a 409, a missing booking a 404, and so on.
package repository

import "errors"

// ErrConflict is returned when an insert or update collides with
// existing state, such as creating a translation whose key is already
// taken by an active row. Handlers should translate this into an HTTP
// 409 response.
var ErrConflict = errors.New("conflict")
