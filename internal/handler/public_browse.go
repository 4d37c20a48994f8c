// This file defines handlers for the public browsing API. These routes
// let unauthenticated visitors read the site's content: services,
// add-ons, gallery, testimonials, review links and homepage sections.
// Text content is localized through the translation resolver before it
// leaves the server, so the same endpoints serve both languages.

package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/i18n"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated
// browsing plus the translation resolver used to localize dynamic
// content.
type PublicHandler struct {
    Services     *repository.ServiceRepo
    AddOns       *repository.AddOnRepo
    Gallery      *repository.GalleryRepo
    Testimonials *repository.TestimonialRepo
    Homepage     *repository.HomepageRepo
    Translations *repository.TranslationRepo
    Resolver     *i18n.Resolver
}

// GetServices returns active services with name and description
// localized for the current language.
func (h *PublicHandler) GetServices(c echo.Context) error {
    ctx := c.Request().Context()
    services, err := h.Services.ListActive(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    for i := range services {
        services[i].Name = h.Resolver.ResolveText(services[i].Name)
        services[i].Description = h.Resolver.ResolveText(services[i].Description)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": services})
}

// GetAddOns returns active add-ons for the booking form, localized.
func (h *PublicHandler) GetAddOns(c echo.Context) error {
    ctx := c.Request().Context()
    addOns, err := h.AddOns.ListActive(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    for i := range addOns {
        addOns[i].Name = h.Resolver.ResolveText(addOns[i].Name)
        addOns[i].Description = h.Resolver.ResolveText(addOns[i].Description)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": addOns})
}

// GetGallery returns visible gallery items, optionally filtered with
// the ?category= query parameter.
func (h *PublicHandler) GetGallery(c echo.Context) error {
    ctx := c.Request().Context()
    items, err := h.Gallery.ListActive(ctx, c.QueryParam("category"))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    for i := range items {
        items[i].Title = h.Resolver.ResolveText(items[i].Title)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetTestimonials returns approved testimonials.
func (h *PublicHandler) GetTestimonials(c echo.Context) error {
    ctx := c.Request().Context()
    items, err := h.Testimonials.ListApproved(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetReviewLinks returns the active external review destinations.
func (h *PublicHandler) GetReviewLinks(c echo.Context) error {
    ctx := c.Request().Context()
    links, err := h.Testimonials.ListActiveReviewLinks(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": links})
}

// GetHomepage returns every homepage section, localized.
func (h *PublicHandler) GetHomepage(c echo.Context) error {
    ctx := c.Request().Context()
    sections, err := h.Homepage.ListAll(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    for i := range sections {
        sections[i].Title = h.Resolver.ResolveText(sections[i].Title)
        sections[i].Subtitle = h.Resolver.ResolveText(sections[i].Subtitle)
        sections[i].Body = h.Resolver.ResolveText(sections[i].Body)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": sections})
}

// GetHomepageSection returns a single homepage section by its name.
func (h *PublicHandler) GetHomepageSection(c echo.Context) error {
    ctx := c.Request().Context()
    s, err := h.Homepage.GetBySection(ctx, c.Param("section"))
    if err != nil {
        if err == repository.ErrSectionNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    s.Title = h.Resolver.ResolveText(s.Title)
    s.Subtitle = h.Resolver.ResolveText(s.Subtitle)
    s.Body = h.Resolver.ResolveText(s.Body)
    return c.JSON(http.StatusOK, s)
}

// GetTranslations returns the active translation set so the client can
// render keyed UI strings without a round trip per string.
func (h *PublicHandler) GetTranslations(c echo.Context) error {
    ctx := c.Request().Context()
    items, err := h.Translations.ListActive(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "language": h.Resolver.Language()})
}

// GetLanguage returns the currently selected site language.
func (h *PublicHandler) GetLanguage(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"language": h.Resolver.Language()})
}

// ResolveKey resolves a single structured translation key for the
// current language, with an optional ?fallback= used when the key is
// missing. Lets lightweight clients avoid pulling the full set.
func (h *PublicHandler) ResolveKey(c echo.Context) error {
    key := c.QueryParam("key")
    if key == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "key is required"})
    }
    value := h.Resolver.ResolveKeyOr(key, c.QueryParam("fallback"))
    return c.JSON(http.StatusOK, echo.Map{
        "key":      key,
        "value":    value,
        "language": h.Resolver.Language(),
    })
}
