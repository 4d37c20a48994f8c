// Package router defines how HTTP routes are registered for the API.
// Public browsing routes get Redis response caching, write endpoints
// get token-bucket rate limiting, and everything under /v1/admin sits
// behind JWT authentication plus the ADMIN role check.
package router

import (
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/redis/go-redis/v9"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/config"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/handler"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/middleware"
)

// RegisterRoutes registers routes that need no authentication and no
// other middleware. Currently it exposes only a health check used by
// load balancers to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterPublic wires the visitor-facing API under /v1. Read endpoints
// are cached in Redis; the booking and contact forms are rate limited
// per client IP. Both middlewares degrade to no-ops when rdb is nil.
// cacheCfg is supplied by the caller because the same config also
// drives cache invalidation on language changes.
func RegisterPublic(e *echo.Echo, pub *handler.PublicHandler, bk *handler.BookingHandler, ct *handler.ContactHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
    cache := middleware.NewRedisCache(cacheCfg, rdb)
    limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

    g := e.Group("/v1")

    browse := g.Group("", cache)
    browse.GET("/services", pub.GetServices)
    browse.GET("/add-ons", pub.GetAddOns)
    browse.GET("/gallery", pub.GetGallery)
    browse.GET("/testimonials", pub.GetTestimonials)
    browse.GET("/review-links", pub.GetReviewLinks)
    browse.GET("/homepage", pub.GetHomepage)
    browse.GET("/homepage/:section", pub.GetHomepageSection)
    browse.GET("/translations", pub.GetTranslations)
    browse.GET("/language", pub.GetLanguage)
    browse.GET("/resolve", pub.ResolveKey)

    g.POST("/bookings", bk.Create, limit)
    g.POST("/contact", ct.Submit, limit)
}

// RegisterAuth registers the admin session endpoints. Register, login,
// refresh and logout need no token; /v1/auth/me requires one.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    g.POST("/refresh", a.Refresh)
    g.POST("/logout", a.Logout)

    me := e.Group("/v1/auth")
    me.Use(middleware.JWTAuth(jwtSecret))
    me.Use(middleware.RequireRole(handler.RoleAdmin))
    me.GET("/me", a.Me)
    me.POST("/logout-all", a.LogoutAll)
}

// RegisterAdmin wires the back-office API under /v1/admin. Every route
// in the group runs the JWT middleware and the ADMIN role check before
// its handler.
func RegisterAdmin(
    e *echo.Echo,
    jwtSecret string,
    bookings *handler.AdminBookingHandler,
    catalog *handler.AdminCatalogHandler,
    content *handler.AdminContentHandler,
    translations *handler.AdminTranslationHandler,
) {
    g := e.Group("/v1/admin")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireRole(handler.RoleAdmin))

    g.GET("/bookings", bookings.List)
    g.GET("/bookings/:id", bookings.Get)
    g.PUT("/bookings/:id/status", bookings.UpdateStatus)
    g.DELETE("/bookings/:id", bookings.Delete)
    g.POST("/bookings/:id/remind", bookings.Remind)

    g.GET("/services", catalog.ListServices)
    g.POST("/services", catalog.CreateService)
    g.PUT("/services/:id", catalog.UpdateService)
    g.DELETE("/services/:id", catalog.DeleteService)

    g.GET("/add-ons", catalog.ListAddOns)
    g.POST("/add-ons", catalog.CreateAddOn)
    g.PUT("/add-ons/:id", catalog.UpdateAddOn)
    g.DELETE("/add-ons/:id", catalog.DeleteAddOn)

    g.GET("/gallery", catalog.ListGallery)
    g.POST("/gallery", catalog.CreateGalleryItem)
    g.PUT("/gallery/:id", catalog.UpdateGalleryItem)
    g.DELETE("/gallery/:id", catalog.DeleteGalleryItem)

    g.GET("/testimonials", content.ListTestimonials)
    g.POST("/testimonials", content.CreateTestimonial)
    g.PUT("/testimonials/:id/approve", content.ApproveTestimonial)
    g.DELETE("/testimonials/:id", content.DeleteTestimonial)

    g.PUT("/review-links", content.UpsertReviewLink)
    g.DELETE("/review-links/:id", content.DeleteReviewLink)

    g.PUT("/homepage", content.UpsertHomepage)

    g.GET("/messages", content.ListMessages)
    g.PUT("/messages/:id/read", content.MarkMessageRead)
    g.DELETE("/messages/:id", content.DeleteMessage)

    g.GET("/translations", translations.List)
    g.POST("/translations", translations.Create)
    g.PUT("/translations/:id", translations.Update)
    g.DELETE("/translations/:id", translations.Delete)
    g.PUT("/language", translations.SetLanguage)
}

// RegisterJobs wires the scheduled-job endpoints. The external cron
// service calls them cross-origin, so the group carries a permissive
// CORS policy limited to POST and OPTIONS.
func RegisterJobs(e *echo.Echo, j *handler.JobHandler) {
    g := e.Group("/v1/jobs")
    g.Use(echomw.CORSWithConfig(echomw.CORSConfig{
        AllowOrigins: []string{"*"},
        AllowMethods: []string{echo.POST, echo.OPTIONS},
        AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
    }))
    g.POST("/reminders", j.RunReminders)
}
