package article

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/articles/internal/applog"
	"github.com/SergeyParamoshkin/articles/internal/articlerequest"
	"github.com/SergeyParamoshkin/articles/internal/articleresponse"
	"github.com/SergeyParamoshkin/articles/internal/errresponse"
	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

// Articles is what the handlers need from the repository.
type Articles interface {
	Create(ctx context.Context, fields model.ArticleFields) (*model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	Get(ctx context.Context, id string) (*model.Article, error)
	Update(ctx context.Context, id string, fields model.ArticleFields) (*model.Article, error)
	Delete(ctx context.Context, id string) (*model.Article, error)
}

// API holds the HTTP handlers for the articles resource.
type API struct {
	articles Articles
}

func NewAPI(articles Articles) *API {
	return &API{articles: articles}
}

// CreateArticle persists the posted Article and returns it
// back to the client as an acknowledgement.
func (a *API) CreateArticle(w http.ResponseWriter, r *http.Request) {
	data, err := articlerequest.Decode(r)
	if err != nil {
		a.invalid(w, r, err)

		return
	}

	article, err := a.articles.Create(r.Context(), data.Fields())
	if err != nil {
		a.fail(w, r, err, "Error creating article", "An error occurred while creating the article")

		return
	}

	applog.FromContext(r.Context()).Debugw("created article", "id", article.ID)

	render.Status(r, http.StatusCreated)
	a.render(w, r, articleresponse.NewArticleResponse(article))
}

func (a *API) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := a.articles.List(r.Context())
	if err != nil {
		a.fail(w, r, err, "Error fetching articles", "An error occurred while fetching the articles")

		return
	}

	applog.FromContext(r.Context()).Debugw("fetched articles", "count", len(articles))

	if err := render.RenderList(w, r, articleresponse.NewArticleListResponse(articles)); err != nil {
		a.render(w, r, errresponse.ErrRender(err))
	}
}

// GetArticle returns the article named by the URL id.
func (a *API) GetArticle(w http.ResponseWriter, r *http.Request) {
	id := IDFromContext(r.Context())

	article, err := a.articles.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "Error fetching article", "An error occurred while fetching the article")

		return
	}

	applog.FromContext(r.Context()).Debugw("fetched article", "id", id)

	a.render(w, r, articleresponse.NewArticleResponse(article))
}

// UpdateArticle updates an existing Article in our persistent store.
func (a *API) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id := IDFromContext(r.Context())

	data, err := articlerequest.Decode(r)
	if err != nil {
		a.invalid(w, r, err)

		return
	}

	article, err := a.articles.Update(r.Context(), id, data.Fields())
	if err != nil {
		a.fail(w, r, err, "Error updating article", "An error occurred while updating the article")

		return
	}

	applog.FromContext(r.Context()).Debugw("updated article", "id", id)

	a.render(w, r, articleresponse.NewUpdatedResponse(article))
}

// DeleteArticle removes an existing Article from our persistent store.
func (a *API) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id := IDFromContext(r.Context())

	article, err := a.articles.Delete(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "Error deleting article", "An error occurred while deleting the article")

		return
	}

	applog.FromContext(r.Context()).Debugw("deleted article", "id", id)

	a.render(w, r, articleresponse.NewDeletedResponse(article))
}

// fail maps a repository error to a response. Not-found is an expected
// outcome; anything else is logged with its cause and answered with the
// generic message for the operation.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error, logMsg, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		a.render(w, r, errresponse.ErrNotFound)
	case errors.Is(err, ErrInvalidArticle):
		a.render(w, r, &errresponse.ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusBadRequest,
			Message:        "Invalid article",
		})
	default:
		applog.FromContext(r.Context()).Errorw(logMsg, "error", err)
		a.render(w, r, errresponse.ErrInternal(err, message))
	}
}

func (a *API) invalid(w http.ResponseWriter, r *http.Request, err error) {
	applog.FromContext(r.Context()).Infow("rejected request body", "error", err)
	a.render(w, r, errresponse.ErrInvalidRequest(err))
}

func (a *API) render(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		applog.FromContext(r.Context()).Errorw("render response", "error", err)
	}
}
