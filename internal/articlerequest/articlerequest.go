package articlerequest

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// ArticleRequest is the request payload for create and update. Fields that
// are missing or null stay nil and flow downstream as absent; nothing else
// is checked here.
type ArticleRequest struct {
	ArticleTitle *string `json:"articleTitle"`
	ArticleBody  *string `json:"articleBody"`
}

// Bind on ArticleRequest runs after unmarshalling. It accepts anything.
func (a *ArticleRequest) Bind(r *http.Request) error {
	return nil
}

// Fields returns the request as the mutable article fields.
func (a *ArticleRequest) Fields() model.ArticleFields {
	return model.ArticleFields{
		Title: a.ArticleTitle,
		Body:  a.ArticleBody,
	}
}

// Decode reads the request body as JSON whatever its Content-Type, then
// binds it. An empty body is the same as "{}"; only a body that is not valid
// JSON is an error.
func Decode(r *http.Request) (*ArticleRequest, error) {
	data := &ArticleRequest{}
	if err := render.DecodeJSON(r.Body, data); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := data.Bind(r); err != nil {
		return nil, err
	}

	return data, nil
}
