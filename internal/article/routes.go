package article

import "github.com/go-chi/chi/v5"

// Routes returns the RESTy routes for the "articles" resource, to be
// mounted at /articles.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", a.ListArticles)   // GET /articles
	r.Post("/", a.CreateArticle) // POST /articles

	r.Route("/{articleId}", func(r chi.Router) {
		r.Use(ArticleIDCtx)
		r.Get("/", a.GetArticle)       // GET /articles/123
		r.Put("/", a.UpdateArticle)    // PUT /articles/123
		r.Delete("/", a.DeleteArticle) // DELETE /articles/123
	})

	return r
}
