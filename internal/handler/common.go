// Package handler exposes HTTP handlers for the public site API, the
// admin console API and the email job endpoints. This file holds small
// helpers shared by the handler files.
package handler

import (
    "errors"
    "fmt"
    "net/http"
    "strconv"
    "strings"

    "github.com/go-playground/validator/v10"
    "github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user's ID placed in the context
// by the JWT middleware. Claims arrive as float64 from the JWT library,
// so several numeric shapes are accepted.
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// pathID parses the ":id" route parameter into a positive uint64.
func pathID(c echo.Context) (uint64, error) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, errors.New("invalid id")
    }
    return id, nil
}

// Validator adapts go-playground/validator to Echo's Validate hook so
// handlers can call c.Validate(dto) on bound request bodies.
type Validator struct {
    v *validator.Validate
}

// NewValidator builds the validator used by all handlers.
func NewValidator() *Validator {
    return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (cv *Validator) Validate(i interface{}) error {
    if err := cv.v.Struct(i); err != nil {
        var verrs validator.ValidationErrors
        if errors.As(err, &verrs) {
            fields := make([]string, 0, len(verrs))
            for _, fe := range verrs {
                fields = append(fields, snakeCase(fe.Field()))
            }
            return echo.NewHTTPError(http.StatusBadRequest,
                fmt.Sprintf("missing or invalid fields: %s", strings.Join(fields, ", ")))
        }
        return echo.NewHTTPError(http.StatusBadRequest, err.Error())
    }
    return nil
}

// snakeCase converts an exported struct field name to its JSON form so
// validation messages match the wire field names.
func snakeCase(s string) string {
    var b strings.Builder
    for i, r := range s {
        if r >= 'A' && r <= 'Z' {
            if i > 0 {
                b.WriteByte('_')
            }
            b.WriteRune(r + ('a' - 'A'))
        } else {
            b.WriteRune(r)
        }
    }
    return b.String()
}
