package i18n

import (
    "context"
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

type stubStore struct {
    rows []model.Translation
    err  error
}

func (s *stubStore) ListActive(context.Context) ([]model.Translation, error) {
    return s.rows, s.err
}

type stubSettings struct {
    lang    string
    err     error
    saved   []string
    saveErr error
}

func (s *stubSettings) Language(context.Context) (string, error) {
    return s.lang, s.err
}

func (s *stubSettings) SetLanguage(_ context.Context, lang string) error {
    s.saved = append(s.saved, lang)
    return s.saveErr
}

func tr(key, en, es string) model.Translation {
    return model.Translation{Key: key, EnglishText: en, SpanishText: es, IsActive: true}
}

func newTestResolver(t *testing.T, store *stubStore, settings *stubSettings) *Resolver {
    t.Helper()
    r := NewResolver(context.Background(), store, settings, nil)
    r.Refresh(context.Background())
    return r
}

func TestNewResolverLanguage(t *testing.T) {
    t.Run("loads persisted language", func(t *testing.T) {
        r := NewResolver(context.Background(), &stubStore{}, &stubSettings{lang: model.LangSpanish}, nil)
        assert.Equal(t, model.LangSpanish, r.Language())
    })

    t.Run("defaults to english on error", func(t *testing.T) {
        r := NewResolver(context.Background(), &stubStore{}, &stubSettings{err: errors.New("redis down")}, nil)
        assert.Equal(t, model.LangEnglish, r.Language())
    })

    t.Run("ignores unknown persisted value", func(t *testing.T) {
        r := NewResolver(context.Background(), &stubStore{}, &stubSettings{lang: "fr"}, nil)
        assert.Equal(t, model.LangEnglish, r.Language())
    })
}

func TestRefresh(t *testing.T) {
    store := &stubStore{rows: []model.Translation{
        tr("nav.home", "Home", "Inicio"),
        tr("nav.book", "Book Now", "Reservar"),
    }}
    r := newTestResolver(t, store, &stubSettings{})

    t.Run("is idempotent", func(t *testing.T) {
        first := r.ResolveKey("nav.home")
        r.Refresh(context.Background())
        r.Refresh(context.Background())
        assert.Equal(t, first, r.ResolveKey("nav.home"))
    })

    t.Run("replaces the set wholesale", func(t *testing.T) {
        store.rows = []model.Translation{tr("nav.gallery", "Gallery", "Galería")}
        r.Refresh(context.Background())
        assert.Equal(t, "Gallery", r.ResolveKey("nav.gallery"))
        // removed key now echoes back
        assert.Equal(t, "nav.home", r.ResolveKey("nav.home"))
    })

    t.Run("keeps the cache on store failure", func(t *testing.T) {
        store.rows = []model.Translation{tr("nav.home", "Home", "Inicio")}
        r.Refresh(context.Background())

        store.err = errors.New("connection refused")
        rows := r.Refresh(context.Background())

        assert.Empty(t, rows)
        assert.Equal(t, "Home", r.ResolveKey("nav.home")) // stale beats blank
        store.err = nil
    })
}

func TestResolveKeyOr(t *testing.T) {
    store := &stubStore{rows: []model.Translation{
        tr("nav.home", "Home", "Inicio"),
        tr("nav.book", "Book Now", ""), // not yet translated
        tr("misc.blank", "", ""),       // no usable text at all
    }}

    t.Run("english mode", func(t *testing.T) {
        r := newTestResolver(t, store, &stubSettings{lang: model.LangEnglish})
        assert.Equal(t, "Home", r.ResolveKey("nav.home"))
        assert.Equal(t, "Book Now", r.ResolveKey("nav.book"))
    })

    t.Run("spanish mode", func(t *testing.T) {
        r := newTestResolver(t, store, &stubSettings{lang: model.LangSpanish})
        assert.Equal(t, "Inicio", r.ResolveKey("nav.home"))
        // empty spanish text falls through to english
        assert.Equal(t, "Book Now", r.ResolveKey("nav.book"))
    })

    t.Run("fallback chain", func(t *testing.T) {
        r := newTestResolver(t, store, &stubSettings{lang: model.LangSpanish})
        assert.Equal(t, "Fallback", r.ResolveKeyOr("missing.key", "Fallback"))
        assert.Equal(t, "missing.key", r.ResolveKeyOr("missing.key", ""))
        assert.Equal(t, "Fallback", r.ResolveKeyOr("misc.blank", "Fallback"))
        assert.Equal(t, "misc.blank", r.ResolveKeyOr("misc.blank", ""))
    })
}

func TestResolveText(t *testing.T) {
    store := &stubStore{rows: []model.Translation{
        tr("svc.pedicure", "Classic Pedicure", "Pedicura Clásica"),
        tr("svc.gel", "Gel Manicure", ""), // matched but untranslated
    }}

    t.Run("english passes through", func(t *testing.T) {
        r := newTestResolver(t, store, &stubSettings{lang: model.LangEnglish})
        assert.Equal(t, "Classic Pedicure", r.ResolveText("Classic Pedicure"))
    })

    t.Run("spanish matches case-insensitively and trimmed", func(t *testing.T) {
        r := newTestResolver(t, store, &stubSettings{lang: model.LangSpanish})
        assert.Equal(t, "Pedicura Clásica", r.ResolveText("Classic Pedicure"))
        assert.Equal(t, "Pedicura Clásica", r.ResolveText("  classic pedicure  "))
    })

    t.Run("untranslated match keeps the source", func(t *testing.T) {
        r := newTestResolver(t, store, &stubSettings{lang: model.LangSpanish})
        assert.Equal(t, "Gel Manicure", r.ResolveText("Gel Manicure"))
    })

    t.Run("no match keeps the source", func(t *testing.T) {
        r := newTestResolver(t, store, &stubSettings{lang: model.LangSpanish})
        assert.Equal(t, "Acrylic Set", r.ResolveText("Acrylic Set"))
    })

    t.Run("empty source stays empty", func(t *testing.T) {
        r := newTestResolver(t, store, &stubSettings{lang: model.LangSpanish})
        assert.Equal(t, "", r.ResolveText(""))
    })
}

func TestSetLanguage(t *testing.T) {
    t.Run("persists and notifies observers", func(t *testing.T) {
        settings := &stubSettings{lang: model.LangEnglish}
        r := newTestResolver(t, &stubStore{}, settings)

        var seen []string
        r.Subscribe(func(lang string) { seen = append(seen, lang) })

        r.SetLanguage(context.Background(), model.LangSpanish)

        assert.Equal(t, model.LangSpanish, r.Language())
        assert.Equal(t, []string{model.LangSpanish}, settings.saved)
        require.Len(t, seen, 1)
        assert.Equal(t, model.LangSpanish, seen[0])
    })

    t.Run("ignores unknown codes", func(t *testing.T) {
        settings := &stubSettings{lang: model.LangEnglish}
        r := newTestResolver(t, &stubStore{}, settings)
        r.SetLanguage(context.Background(), "de")
        assert.Equal(t, model.LangEnglish, r.Language())
        assert.Empty(t, settings.saved)
    })

    t.Run("language survives a persistence failure", func(t *testing.T) {
        settings := &stubSettings{lang: model.LangEnglish, saveErr: errors.New("redis down")}
        r := newTestResolver(t, &stubStore{}, settings)
        r.SetLanguage(context.Background(), model.LangSpanish)
        assert.Equal(t, model.LangSpanish, r.Language())
    })
}
