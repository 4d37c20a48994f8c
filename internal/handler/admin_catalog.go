package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/repository"
)

// AdminCatalogHandler manages the bookable catalog: services, add-ons
// and the gallery. All routes require an admin token.
type AdminCatalogHandler struct {
    Services *repository.ServiceRepo
    AddOns   *repository.AddOnRepo
    Gallery  *repository.GalleryRepo
}

func NewAdminCatalogHandler(s *repository.ServiceRepo, a *repository.AddOnRepo, g *repository.GalleryRepo) *AdminCatalogHandler {
    return &AdminCatalogHandler{Services: s, AddOns: a, Gallery: g}
}

func adminCtx(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// ----- services -----

type serviceReq struct {
    Name        string `json:"name" validate:"required"`
    Description string `json:"description"`
    PriceCents  uint32 `json:"price_cents" validate:"required"`
    DurationMin uint32 `json:"duration_min" validate:"required"`
    IsActive    *bool  `json:"is_active"`
    SortOrder   int32  `json:"sort_order"`
}

func (r serviceReq) toModel() model.Service {
    active := true
    if r.IsActive != nil {
        active = *r.IsActive
    }
    return model.Service{
        Name:        r.Name,
        Description: r.Description,
        PriceCents:  r.PriceCents,
        DurationMin: r.DurationMin,
        IsActive:    active,
        SortOrder:   r.SortOrder,
    }
}

// ListServices returns every service including inactive ones.
func (h *AdminCatalogHandler) ListServices(c echo.Context) error {
    ctx, cancel := adminCtx(c)
    defer cancel()
    items, err := h.Services.ListAll(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *AdminCatalogHandler) CreateService(c echo.Context) error {
    var req serviceReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    s := req.toModel()
    if err := h.Services.Create(ctx, &s); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }
    return c.JSON(http.StatusCreated, s)
}

func (h *AdminCatalogHandler) UpdateService(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req serviceReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    s := req.toModel()
    s.ID = id
    if err := h.Services.Update(ctx, &s); err != nil {
        if err == repository.ErrServiceNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, s)
}

func (h *AdminCatalogHandler) DeleteService(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.Services.Delete(ctx, id); err != nil {
        if err == repository.ErrServiceNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// ----- add-ons -----

type addOnReq struct {
    Name        string `json:"name" validate:"required"`
    Description string `json:"description"`
    PriceCents  uint32 `json:"price_cents" validate:"required"`
    IsActive    *bool  `json:"is_active"`
    SortOrder   int32  `json:"sort_order"`
}

func (r addOnReq) toModel() model.AddOn {
    active := true
    if r.IsActive != nil {
        active = *r.IsActive
    }
    return model.AddOn{
        Name:        r.Name,
        Description: r.Description,
        PriceCents:  r.PriceCents,
        IsActive:    active,
        SortOrder:   r.SortOrder,
    }
}

func (h *AdminCatalogHandler) ListAddOns(c echo.Context) error {
    ctx, cancel := adminCtx(c)
    defer cancel()
    items, err := h.AddOns.ListAll(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *AdminCatalogHandler) CreateAddOn(c echo.Context) error {
    var req addOnReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    a := req.toModel()
    if err := h.AddOns.Create(ctx, &a); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }
    return c.JSON(http.StatusCreated, a)
}

func (h *AdminCatalogHandler) UpdateAddOn(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req addOnReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    a := req.toModel()
    a.ID = id
    if err := h.AddOns.Update(ctx, &a); err != nil {
        if err == repository.ErrAddOnNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "add-on not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, a)
}

func (h *AdminCatalogHandler) DeleteAddOn(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.AddOns.Delete(ctx, id); err != nil {
        if err == repository.ErrAddOnNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "add-on not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// ----- gallery -----

type galleryReq struct {
    Title     string `json:"title" validate:"required"`
    ImageURL  string `json:"image_url" validate:"required,url"`
    Category  string `json:"category"`
    IsActive  *bool  `json:"is_active"`
    SortOrder int32  `json:"sort_order"`
}

func (r galleryReq) toModel() model.GalleryItem {
    active := true
    if r.IsActive != nil {
        active = *r.IsActive
    }
    return model.GalleryItem{
        Title:     r.Title,
        ImageURL:  r.ImageURL,
        Category:  r.Category,
        IsActive:  active,
        SortOrder: r.SortOrder,
    }
}

func (h *AdminCatalogHandler) ListGallery(c echo.Context) error {
    ctx, cancel := adminCtx(c)
    defer cancel()
    items, err := h.Gallery.ListAll(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *AdminCatalogHandler) CreateGalleryItem(c echo.Context) error {
    var req galleryReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    g := req.toModel()
    if err := h.Gallery.Create(ctx, &g); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }
    return c.JSON(http.StatusCreated, g)
}

func (h *AdminCatalogHandler) UpdateGalleryItem(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req galleryReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    g := req.toModel()
    g.ID = id
    if err := h.Gallery.Update(ctx, &g); err != nil {
        if err == repository.ErrGalleryItemNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "gallery item not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, g)
}

func (h *AdminCatalogHandler) DeleteGalleryItem(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx, cancel := adminCtx(c)
    defer cancel()
    if err := h.Gallery.Delete(ctx, id); err != nil {
        if err == repository.ErrGalleryItemNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "gallery item not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
