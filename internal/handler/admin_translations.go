package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/i18n"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/repository"
)

// AdminTranslationHandler manages the translation table and the site
// language switch. Every write re-runs the resolver refresh so the
// public API serves the new strings immediately.
type AdminTranslationHandler struct {
    Translations *repository.TranslationRepo
    Resolver     *i18n.Resolver
}

func NewAdminTranslationHandler(t *repository.TranslationRepo, r *i18n.Resolver) *AdminTranslationHandler {
    return &AdminTranslationHandler{Translations: t, Resolver: r}
}

type translationReq struct {
    Key         string `json:"key" validate:"required"`
    Category    string `json:"category"`
    EnglishText string `json:"english_text" validate:"required"`
    SpanishText string `json:"spanish_text"`
    IsActive    *bool  `json:"is_active"`
}

func (r translationReq) toModel() model.Translation {
    active := true
    if r.IsActive != nil {
        active = *r.IsActive
    }
    return model.Translation{
        Key:         r.Key,
        Category:    r.Category,
        EnglishText: r.EnglishText,
        SpanishText: r.SpanishText,
        IsActive:    active,
    }
}

// List returns every translation row, active or not, for the admin
// editing table.
func (h *AdminTranslationHandler) List(c echo.Context) error {
    ctx, cancel := adminCtx(c)
    defer cancel()
    items, err := h.Translations.ListAll(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *AdminTranslationHandler) Create(c echo.Context) error {
    var req translationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    t := req.toModel()
    if err := h.Translations.Create(ctx, &t); err != nil {
        if err == repository.ErrConflict {
            return c.JSON(http.StatusConflict, echo.Map{"error": "key already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }
    h.Resolver.Refresh(ctx)
    return c.JSON(http.StatusCreated, t)
}

func (h *AdminTranslationHandler) Update(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req translationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    t := req.toModel()
    t.ID = id
    if err := h.Translations.Update(ctx, &t); err != nil {
        switch err {
        case repository.ErrTranslationNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "translation not found"})
        case repository.ErrConflict:
            return c.JSON(http.StatusConflict, echo.Map{"error": "key already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    h.Resolver.Refresh(ctx)
    return c.JSON(http.StatusOK, t)
}

func (h *AdminTranslationHandler) Delete(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.Translations.Delete(ctx, id); err != nil {
        if err == repository.ErrTranslationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "translation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    h.Resolver.Refresh(ctx)
    return c.NoContent(http.StatusNoContent)
}

type languageReq struct {
    Language string `json:"language" validate:"required,oneof=en es"`
}

// SetLanguage handles PUT /v1/admin/language: switches the site-wide
// language and persists the choice.
func (h *AdminTranslationHandler) SetLanguage(c echo.Context) error {
    var req languageReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    h.Resolver.SetLanguage(c.Request().Context(), req.Language)
    return c.JSON(http.StatusOK, echo.Map{"language": h.Resolver.Language()})
}
