package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/francislozanostudio-wq/francis-final-sub001/internal/model"
)

// ErrTranslationNotFound indicates that a translation row was not
// located in the DB.
var ErrTranslationNotFound = errors.New("translation not found")

// TranslationRepo manages persistence for the `translations` table. Its
// ListActive method feeds the runtime cache of the i18n resolver.
type TranslationRepo struct {
    db *sql.DB
}

// NewTranslationRepo constructs a TranslationRepo with the given DB handle.
func NewTranslationRepo(db *sql.DB) *TranslationRepo { return &TranslationRepo{db: db} }

const translationColumns = `id, ` + "`key`" + `, category, english_text, spanish_text, is_active, created_at, updated_at`

// ListActive returns all active translations ordered by category then
// key. The ordering mirrors the admin console layout; lookups do not
// depend on it.
func (r *TranslationRepo) ListActive(ctx context.Context) ([]model.Translation, error) {
    const q = `SELECT ` + translationColumns + ` FROM translations
               WHERE is_active = 1 ORDER BY category, ` + "`key`"
    return r.list(ctx, q)
}

// ListAll returns every translation row, active or not, for the admin
// editor.
func (r *TranslationRepo) ListAll(ctx context.Context) ([]model.Translation, error) {
    const q = `SELECT ` + translationColumns + ` FROM translations ORDER BY category, ` + "`key`"
    return r.list(ctx, q)
}

func (r *TranslationRepo) list(ctx context.Context, q string) ([]model.Translation, error) {
    rows, err := r.db.QueryContext(ctx, q)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Translation, 0)
    for rows.Next() {
        var (
            t       model.Translation
            spanish sql.NullString
        )
        if err := rows.Scan(&t.ID, &t.Key, &t.Category, &t.EnglishText, &spanish,
            &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
            return nil, err
        }
        t.SpanishText = spanish.String
        out = append(out, t)
    }
    return out, rows.Err()
}

// Create inserts a translation row and populates the generated ID and
// timestamps. A duplicate key among active rows surfaces as
// ErrConflict.
func (r *TranslationRepo) Create(ctx context.Context, t *model.Translation) error {
    const q = `INSERT INTO translations (` + "`key`" + `, category, english_text, spanish_text, is_active)
               VALUES (?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q,
        t.Key, t.Category, t.EnglishText, nullIfEmpty(t.SpanishText), t.IsActive)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return ErrConflict
        }
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    t.ID = uint64(id)
    const sel = `SELECT ` + translationColumns + ` FROM translations WHERE id = ?`
    var spanish sql.NullString
    if err := r.db.QueryRowContext(ctx, sel, t.ID).Scan(&t.ID, &t.Key, &t.Category,
        &t.EnglishText, &spanish, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
        return err
    }
    t.SpanishText = spanish.String
    return nil
}

// Update rewrites an existing translation row. It returns
// ErrTranslationNotFound when the ID does not exist and ErrConflict
// when the new key collides with another row.
func (r *TranslationRepo) Update(ctx context.Context, t *model.Translation) error {
    const q = `UPDATE translations
               SET ` + "`key`" + ` = ?, category = ?, english_text = ?, spanish_text = ?, is_active = ?
               WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q,
        t.Key, t.Category, t.EnglishText, nullIfEmpty(t.SpanishText), t.IsActive, t.ID)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return ErrConflict
        }
        return err
    }
    if n, err := res.RowsAffected(); err == nil && n == 0 {
        var exists int
        if err := r.db.QueryRowContext(ctx,
            "SELECT 1 FROM translations WHERE id = ?", t.ID).Scan(&exists); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return ErrTranslationNotFound
            }
            return err
        }
    }
    return nil
}

// Delete removes a translation row. It returns ErrTranslationNotFound
// when nothing was deleted.
func (r *TranslationRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM translations WHERE id = ?", id)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrTranslationNotFound
    }
    return nil
}

// nullIfEmpty maps an empty string to SQL NULL so "not yet translated"
// is distinguishable from an intentionally blank translation.
func nullIfEmpty(s string) interface{} {
    if s == "" {
        return nil
    }
    return s
}
