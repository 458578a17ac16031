package articleresponse

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

const (
	MessageUpdated = "Article updated successfully"
	MessageDeleted = "Article deleted successfully"
)

// ArticleResponse is the response payload for the Article data model. It
// renders as the stored article itself: {id, title, body, numberOfLikes}.
type ArticleResponse struct {
	*model.Article
}

func NewArticleResponse(article *model.Article) *ArticleResponse {
	return &ArticleResponse{Article: article}
}

func (rd *ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func NewArticleListResponse(articles []model.Article) []render.Renderer {
	list := []render.Renderer{}
	for i := range articles {
		list = append(list, NewArticleResponse(&articles[i]))
	}

	return list
}

// UpdatedResponse confirms an update and carries the post-update record.
type UpdatedResponse struct {
	Message        string         `json:"message"`
	UpdatedArticle *model.Article `json:"updatedArticle"`
}

func NewUpdatedResponse(article *model.Article) *UpdatedResponse {
	return &UpdatedResponse{Message: MessageUpdated, UpdatedArticle: article}
}

func (rd *UpdatedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// DeletedResponse confirms a delete and carries the record as it was.
type DeletedResponse struct {
	Message        string         `json:"message"`
	DeletedArticle *model.Article `json:"deletedArticle"`
}

func NewDeletedResponse(article *model.Article) *DeletedResponse {
	return &DeletedResponse{Message: MessageDeleted, DeletedArticle: article}
}

func (rd *DeletedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
