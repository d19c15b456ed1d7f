package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"jobtrack-engine/internal/domain"
	"jobtrack-engine/internal/store"
)

const userKey ctxKey = "user"

func UserFrom(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey).(domain.User)
	return u, ok
}

// resolveUser reads the X-User-ID header and loads that user.
func resolveUser(r *http.Request, db *sql.DB) (domain.User, error) {
	raw := strings.TrimSpace(r.Header.Get("X-User-ID"))
	if raw == "" {
		return domain.User{}, ErrUnauthenticated
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return domain.User{}, ErrUnauthenticated
	}
	u, err := store.GetUser(r.Context(), db, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUnauthenticated
	}
	return u, err
}

// RequireUser wraps h so it only runs for a resolved user.
func RequireUser(db *sql.DB, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := resolveUser(r, db)
		if err != nil {
			writeStoreError(w, r, "resolve user", err)
			return
		}
		h(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	}
}
