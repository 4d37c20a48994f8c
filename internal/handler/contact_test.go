package handler

import (
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestContactMissingFields(t *testing.T) {
    full := contactReq{
        FirstName:   "Ana",
        LastName:    "Lozano",
        Email:       "ana@example.com",
        Subject:     "Pricing",
        Message:     "How much is a gel set?",
        InquiryType: "pricing",
    }
    assert.Empty(t, full.missingFields())

    partial := contactReq{FirstName: "Ana", Email: "ana@example.com"}
    assert.Equal(t,
        []string{"last_name", "subject", "message", "inquiry_type"},
        partial.missingFields())

    // whitespace-only values count as missing
    blank := full
    blank.Subject = "   "
    assert.Equal(t, []string{"subject"}, blank.missingFields())
}

func TestContactSubmitRejectsIncompleteBody(t *testing.T) {
    e := echo.New()
    body := `{"first_name":"Ana","email":"ana@example.com"}`
    req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    // validation fails before the repo or mailer are touched, so nil
    // dependencies are safe here
    h := &ContactHandler{}
    require.NoError(t, h.Submit(c))

    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Contains(t, rec.Body.String(), "Missing required fields")
    assert.Contains(t, rec.Body.String(), "last_name")
    assert.Contains(t, rec.Body.String(), "inquiry_type")
}

func TestSnakeCase(t *testing.T) {
    assert.Equal(t, "first_name", snakeCase("FirstName"))
    assert.Equal(t, "email", snakeCase("Email"))
    assert.Equal(t, "appointment_date", snakeCase("AppointmentDate"))
}
