package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/repository"
)

// AdminContentHandler manages testimonials, review links, homepage
// sections and the contact inbox.
type AdminContentHandler struct {
    Testimonials *repository.TestimonialRepo
    Homepage     *repository.HomepageRepo
    Messages     *repository.ContactRepo
}

func NewAdminContentHandler(t *repository.TestimonialRepo, hp *repository.HomepageRepo, m *repository.ContactRepo) *AdminContentHandler {
    return &AdminContentHandler{Testimonials: t, Homepage: hp, Messages: m}
}

// ----- testimonials -----

type testimonialReq struct {
    ClientName string `json:"client_name" validate:"required"`
    Text       string `json:"text" validate:"required"`
    Rating     uint8  `json:"rating" validate:"required,min=1,max=5"`
    IsApproved bool   `json:"is_approved"`
}

func (h *AdminContentHandler) ListTestimonials(c echo.Context) error {
    ctx, cancel := adminCtx(c)
    defer cancel()
    items, err := h.Testimonials.ListAll(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *AdminContentHandler) CreateTestimonial(c echo.Context) error {
    var req testimonialReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    t := model.Testimonial{
        ClientName: req.ClientName,
        Text:       req.Text,
        Rating:     req.Rating,
        IsApproved: req.IsApproved,
    }
    if err := h.Testimonials.Create(ctx, &t); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }
    return c.JSON(http.StatusCreated, t)
}

type approveReq struct {
    Approved bool `json:"approved"`
}

func (h *AdminContentHandler) ApproveTestimonial(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req approveReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.Testimonials.SetApproved(ctx, id, req.Approved); err != nil {
        if err == repository.ErrTestimonialNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "testimonial not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *AdminContentHandler) DeleteTestimonial(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.Testimonials.Delete(ctx, id); err != nil {
        if err == repository.ErrTestimonialNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "testimonial not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// ----- review links -----

type reviewLinkReq struct {
    ID        uint64 `json:"id"`
    Platform  string `json:"platform" validate:"required"`
    URL       string `json:"url" validate:"required,url"`
    IsActive  *bool  `json:"is_active"`
    SortOrder int32  `json:"sort_order"`
}

// UpsertReviewLink creates or updates a review destination. A zero id
// inserts, a known id updates in place.
func (h *AdminContentHandler) UpsertReviewLink(c echo.Context) error {
    var req reviewLinkReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    active := true
    if req.IsActive != nil {
        active = *req.IsActive
    }
    l := model.ReviewLink{
        ID:        req.ID,
        Platform:  req.Platform,
        URL:       req.URL,
        IsActive:  active,
        SortOrder: req.SortOrder,
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.Testimonials.UpsertReviewLink(ctx, &l); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
    }
    return c.JSON(http.StatusOK, l)
}

func (h *AdminContentHandler) DeleteReviewLink(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.Testimonials.DeleteReviewLink(ctx, id); err != nil {
        if err == repository.ErrReviewLinkNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "review link not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// ----- homepage sections -----

type homepageReq struct {
    Section  string `json:"section" validate:"required"`
    Title    string `json:"title" validate:"required"`
    Subtitle string `json:"subtitle"`
    Body     string `json:"body"`
    ImageURL string `json:"image_url"`
}

// UpsertHomepage handles PUT /v1/admin/homepage: one row per section,
// replaced wholesale.
func (h *AdminContentHandler) UpsertHomepage(c echo.Context) error {
    var req homepageReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    hp := model.HomepageContent{
        Section:  req.Section,
        Title:    req.Title,
        Subtitle: req.Subtitle,
        Body:     req.Body,
        ImageURL: req.ImageURL,
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.Homepage.Upsert(ctx, &hp); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
    }
    return c.JSON(http.StatusOK, hp)
}

// ----- contact inbox -----

func (h *AdminContentHandler) ListMessages(c echo.Context) error {
    ctx, cancel := adminCtx(c)
    defer cancel()
    items, err := h.Messages.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *AdminContentHandler) MarkMessageRead(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.Messages.MarkRead(ctx, id); err != nil {
        if err == repository.ErrMessageNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *AdminContentHandler) DeleteMessage(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.Messages.Delete(ctx, id); err != nil {
        if err == repository.ErrMessageNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "message not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
