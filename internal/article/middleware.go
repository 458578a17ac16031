package article

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ctxKey int8

const ctxKeyArticleID ctxKey = iota

// ArticleIDCtx middleware is used to load the article id from the URL
// parameters onto the request context. The id is passed on as is; the
// store decides whether it is well-formed.
func ArticleIDCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ctxKeyArticleID, chi.URLParam(r, "articleId"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IDFromContext returns the id stored by ArticleIDCtx.
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyArticleID).(string)

	return id
}
