package handler

import (
    "context"
    "log/slog"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/email"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/repository"
)

// ContactHandler serves the public contact form. Submissions are stored
// and then forwarded to the studio inbox by email; a failed send is a
// hard error so the visitor knows the message did not go through.
type ContactHandler struct {
    Messages *repository.ContactRepo
    Mailer   *email.Mailer
    Log      *slog.Logger
}

func NewContactHandler(m *repository.ContactRepo, mail *email.Mailer, log *slog.Logger) *ContactHandler {
    return &ContactHandler{Messages: m, Mailer: mail, Log: log}
}

type contactReq struct {
    FirstName   string `json:"first_name"`
    LastName    string `json:"last_name"`
    Email       string `json:"email"`
    Phone       string `json:"phone"`
    Subject     string `json:"subject"`
    Message     string `json:"message"`
    InquiryType string `json:"inquiry_type"`
}

// missingFields lists the required contact fields that are empty, in a
// fixed order so the error message is stable.
func (r contactReq) missingFields() []string {
    var missing []string
    check := func(name, v string) {
        if strings.TrimSpace(v) == "" {
            missing = append(missing, name)
        }
    }
    check("first_name", r.FirstName)
    check("last_name", r.LastName)
    check("email", r.Email)
    check("subject", r.Subject)
    check("message", r.Message)
    check("inquiry_type", r.InquiryType)
    return missing
}

// Submit handles POST /v1/contact.
func (h *ContactHandler) Submit(c echo.Context) error {
    var req contactReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if missing := req.missingFields(); len(missing) > 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{
            "error":   "Validation failed",
            "details": "Missing required fields: " + strings.Join(missing, ", "),
        })
    }

    msg := model.ContactMessage{
        FirstName:   strings.TrimSpace(req.FirstName),
        LastName:    strings.TrimSpace(req.LastName),
        Email:       strings.ToLower(strings.TrimSpace(req.Email)),
        Phone:       strings.TrimSpace(req.Phone),
        Subject:     strings.TrimSpace(req.Subject),
        Message:     strings.TrimSpace(req.Message),
        InquiryType: strings.TrimSpace(req.InquiryType),
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
    defer cancel()

    if err := h.Messages.Create(ctx, &msg); err != nil {
        h.Log.Error("contact: store message failed", "error", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "error":   "Failed to store contact message",
            "details": err.Error(),
        })
    }

    if err := h.Mailer.SendContactNotification(ctx, msg); err != nil {
        h.Log.Error("contact: notification email failed", "error", err, "message_id", msg.ID)
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "error":   "Failed to send contact email",
            "details": err.Error(),
        })
    }

    h.Log.Info("contact: message received", "message_id", msg.ID, "inquiry_type", msg.InquiryType)
    return c.JSON(http.StatusOK, echo.Map{
        "success": true,
        "message": "Contact email sent successfully",
        "result":  echo.Map{"id": msg.ID},
    })
}
