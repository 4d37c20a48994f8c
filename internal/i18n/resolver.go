// Package i18n resolves display strings for the site's two languages.
// Structured UI strings are looked up by key; admin-entered content
// (service descriptions, gallery captions) is matched by its English
// text so dynamic rows don't need their own keys.
package i18n

import (
    "context"
    "log/slog"
    "strings"
    "sync"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// Store supplies the active translation set.  The repository layer
// implements it; tests substitute a stub.
type Store interface {
    // ListActive returns all active translations ordered by category
    // then key.
    ListActive(ctx context.Context) ([]model.Translation, error)
}

// Settings persists the selected language across restarts.  Backed by
// Redis in production under a fixed settings key.
type Settings interface {
    Language(ctx context.Context) (string, error)
    SetLanguage(ctx context.Context, lang string) error
}

// Resolver owns the translation cache and the current language.  One
// instance is constructed per process and shared by all handlers; the
// cache map is only ever replaced wholesale by Refresh, never patched,
// so readers see either the old or the new snapshot and nothing in
// between.
type Resolver struct {
    store    Store
    settings Settings
    log      *slog.Logger

    mu        sync.RWMutex
    cache     map[string]model.Translation
    language  string
    observers []func(lang string)
}

// NewResolver builds a Resolver with an empty cache.  The initial
// language comes from the settings store, defaulting to English when
// unset or unreadable.  Call Refresh afterwards to populate the cache.
func NewResolver(ctx context.Context, store Store, settings Settings, log *slog.Logger) *Resolver {
    if log == nil {
        log = slog.Default()
    }
    r := &Resolver{
        store:    store,
        settings: settings,
        log:      log,
        cache:    map[string]model.Translation{},
        language: model.LangEnglish,
    }
    if settings != nil {
        if lang, err := settings.Language(ctx); err == nil && validLang(lang) {
            r.language = lang
        }
    }
    return r
}

func validLang(lang string) bool {
    return lang == model.LangEnglish || lang == model.LangSpanish
}

// Refresh rebuilds the cache from the store.  On fetch failure the
// previous cache stays in place (stale strings beat blank pages) and an
// empty slice is returned.  Duplicate keys should not occur, but if the
// store ever returns them the last row wins.
func (r *Resolver) Refresh(ctx context.Context) []model.Translation {
    rows, err := r.store.ListActive(ctx)
    if err != nil {
        r.log.Error("translation refresh failed, keeping cached set", "error", err)
        return []model.Translation{}
    }
    fresh := make(map[string]model.Translation, len(rows))
    for _, t := range rows {
        fresh[t.Key] = t
    }
    r.mu.Lock()
    r.cache = fresh
    r.mu.Unlock()
    return rows
}

// Language returns the currently selected language, read fresh on every
// call so a change is visible to the next render without a re-fetch.
func (r *Resolver) Language() string {
    r.mu.RLock()
    defer r.mu.RUnlock()
    return r.language
}

// SetLanguage switches the active language, persists the choice and
// synchronously notifies every subscribed observer.  Unknown codes are
// ignored.
func (r *Resolver) SetLanguage(ctx context.Context, lang string) {
    if !validLang(lang) {
        r.log.Warn("ignoring unknown language", "lang", lang)
        return
    }
    r.mu.Lock()
    r.language = lang
    observers := make([]func(string), len(r.observers))
    copy(observers, r.observers)
    r.mu.Unlock()

    if r.settings != nil {
        if err := r.settings.SetLanguage(ctx, lang); err != nil {
            r.log.Error("persisting language failed", "lang", lang, "error", err)
        }
    }
    for _, fn := range observers {
        fn(lang)
    }
}

// Subscribe registers a callback invoked synchronously on every
// language change.
func (r *Resolver) Subscribe(fn func(lang string)) {
    r.mu.Lock()
    r.observers = append(r.observers, fn)
    r.mu.Unlock()
}

// ResolveKey resolves a structured key for the current language.  A
// missing key echoes back the key itself so the UI always renders
// something.
func (r *Resolver) ResolveKey(key string) string {
    return r.ResolveKeyOr(key, "")
}

// ResolveKeyOr is ResolveKey with an explicit fallback used when the
// key is missing or the entry carries no usable text.  Priority on a
// hit: Spanish text (when the language is Spanish and the text is
// non-empty), then English text, then fallback, then the key verbatim.
func (r *Resolver) ResolveKeyOr(key, fallback string) string {
    r.mu.RLock()
    t, ok := r.cache[key]
    lang := r.language
    r.mu.RUnlock()

    if !ok {
        r.log.Warn("missing translation", "key", key)
        if fallback != "" {
            return fallback
        }
        return key
    }
    if lang == model.LangSpanish && t.SpanishText != "" {
        return t.SpanishText
    }
    if t.EnglishText != "" {
        return t.EnglishText
    }
    if fallback != "" {
        return fallback
    }
    return key
}

// ResolveText localizes admin-entered content by matching its English
// source text.  In English mode the text passes through untouched.  In
// Spanish mode the cache is scanned for a case-insensitive, trimmed
// match on the English text; no match (or an untranslated match) falls
// back silently to the source text.  The O(n) scan is an accepted cost
// at this content volume.
func (r *Resolver) ResolveText(source string) string {
    if source == "" {
        return ""
    }
    r.mu.RLock()
    lang := r.language
    if lang != model.LangSpanish {
        r.mu.RUnlock()
        return source
    }
    want := strings.ToLower(strings.TrimSpace(source))
    for _, t := range r.cache {
        if strings.ToLower(strings.TrimSpace(t.EnglishText)) == want {
            if t.SpanishText != "" {
                r.mu.RUnlock()
                return t.SpanishText
            }
            break
        }
    }
    r.mu.RUnlock()
    return source
}
