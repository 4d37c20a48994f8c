package main // Entry point package

import (
    "context"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/config"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/database"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/email"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/handler"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/i18n"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/logger"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/middleware"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/queue"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/reminder"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/repository"
    "github.com/francislozanostudio-wq/francis-final-sub001/internal/router"
)

func main() {
    _ = godotenv.Load() // optional .env for local development

    cfg := config.Load()
    log := logger.New(cfg.Env)

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Error("database connection failed", "error", err)
        return
    }
    defer func() { _ = db.Close() }()

    // Redis is optional: without it caching and rate limiting are
    // disabled and the language setting falls back to English.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Warn("redis unavailable, running without cache, rate limits and persisted settings")
    }

    // Repositories.
    bookings := repository.NewBookingRepo(db)
    services := repository.NewServiceRepo(db)
    addOns := repository.NewAddOnRepo(db)
    gallery := repository.NewGalleryRepo(db)
    testimonials := repository.NewTestimonialRepo(db)
    homepage := repository.NewHomepageRepo(db)
    contacts := repository.NewContactRepo(db)
    translations := repository.NewTranslationRepo(db)
    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    settings := repository.NewSettingsRepo(rdb)

    // Translation resolver: load the persisted language, then warm the
    // cache once before serving traffic.
    startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    resolver := i18n.NewResolver(startCtx, translations, settings, log)
    resolver.Refresh(startCtx)
    cancel()
    // A language switch must reach visitors on their next request, so
    // the cached old-language responses are dropped the moment the
    // language changes.
    cacheCfg := config.LoadCacheConfig()
    resolver.Subscribe(func(lang string) {
        log.Info("site language changed", "language", lang)
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        if err := middleware.InvalidateCache(ctx, cacheCfg, rdb); err != nil {
            log.Warn("dropping cached responses after language change failed", "error", err)
        }
    })

    // Outbound email and the reminder engine.
    mailer := email.NewMailer(
        email.Config{
            Host:        cfg.SMTPHost,
            Port:        cfg.SMTPPort,
            Username:    cfg.SMTPUser,
            Password:    cfg.SMTPPass,
            FromAddress: cfg.EmailFrom,
            FromName:    cfg.EmailName,
        },
        email.Studio{
            Name:        cfg.StudioName,
            Address:     cfg.StudioAddress,
            Phone:       cfg.StudioPhone,
            Website:     cfg.StudioWebsite,
            AdminEmails: cfg.AdminEmails,
        },
    )
    engine := reminder.NewEngine(mailer, cfg.ReminderSendDelay, log)

    // Consume booking.created events in the background; the consumer
    // reconnects on its own when the broker drops.
    go func() {
        if err := queue.StartBookingConsumer(mailer, log); err != nil {
            log.Error("booking consumer stopped", "error", err)
        }
    }()

    e := echo.New()
    e.HideBanner = true
    e.Validator = handler.NewValidator()

    pub := &handler.PublicHandler{
        Services:     services,
        AddOns:       addOns,
        Gallery:      gallery,
        Testimonials: testimonials,
        Homepage:     homepage,
        Translations: translations,
        Resolver:     resolver,
    }

    router.RegisterRoutes(e)
    router.RegisterPublic(e, pub,
        handler.NewBookingHandler(bookings, services, addOns),
        handler.NewContactHandler(contacts, mailer, log),
        cacheCfg, rdb)
    router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
    router.RegisterAdmin(e, cfg.JWTSecret,
        handler.NewAdminBookingHandler(bookings, mailer, log),
        handler.NewAdminCatalogHandler(services, addOns, gallery),
        handler.NewAdminContentHandler(testimonials, homepage, contacts),
        handler.NewAdminTranslationHandler(translations, resolver))
    router.RegisterJobs(e, handler.NewJobHandler(bookings, engine, log))

    addr := ":" + cfg.Port
    log.Info("listening", "addr", addr, "env", cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Error("server stopped", "error", err)
    }
}
