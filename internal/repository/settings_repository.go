package repository

import (
    "context"
    "errors"

    "github.com/redis/go-redis/v9"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// settingsLanguageKey is the fixed key under which the site-wide
// language selection is persisted.
const settingsLanguageKey = "settings:site:language"

// SettingsRepo stores small site-wide settings in Redis. Currently the
// only setting is the selected language; it must survive restarts so
// the resolver comes back up in the language the admin chose.
type SettingsRepo struct {
    rdb *redis.Client
}

// NewSettingsRepo constructs a SettingsRepo. A nil client is allowed
// and turns every read into the default and every write into a no-op,
// matching the graceful degradation used elsewhere when Redis is down.
func NewSettingsRepo(rdb *redis.Client) *SettingsRepo { return &SettingsRepo{rdb: rdb} }

// Language returns the persisted language selection, defaulting to
// English when the key has never been written.
func (r *SettingsRepo) Language(ctx context.Context) (string, error) {
    if r.rdb == nil {
        return model.LangEnglish, nil
    }
    v, err := r.rdb.Get(ctx, settingsLanguageKey).Result()
    if errors.Is(err, redis.Nil) {
        return model.LangEnglish, nil
    }
    if err != nil {
        return model.LangEnglish, err
    }
    return v, nil
}

// SetLanguage persists the language selection with no expiry.
func (r *SettingsRepo) SetLanguage(ctx context.Context, lang string) error {
    if r.rdb == nil {
        return nil
    }
    return r.rdb.Set(ctx, settingsLanguageKey, lang, 0).Err()
}
