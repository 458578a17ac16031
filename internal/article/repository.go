package article

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

// ErrInvalidArticle is returned when a Validator rejects the input.
var ErrInvalidArticle = errors.New("invalid article")

// Validator checks article fields before create and update. It returns
// nil to accept.
type Validator func(fields model.ArticleFields) error

// Option configures a Repository.
type Option func(*Repository)

// WithValidator makes the repository reject fields v refuses. Without it
// every input is accepted, missing fields included.
func WithValidator(v Validator) Option {
	return func(r *Repository) {
		r.validate = v
	}
}

// Repository applies the article rules on top of a store: every new
// article starts with model.DefaultNumberOfLikes, and nothing but title and
// body is ever written by a client.
type Repository struct {
	store    store.Store
	validate Validator
}

func NewRepository(s store.Store, opts ...Option) *Repository {
	r := &Repository{store: s}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Repository) Create(ctx context.Context, fields model.ArticleFields) (*model.Article, error) {
	if err := r.check(fields); err != nil {
		return nil, err
	}

	return r.store.Insert(ctx, model.Article{
		Title:         fields.Title,
		Body:          fields.Body,
		NumberOfLikes: model.DefaultNumberOfLikes,
	})
}

func (r *Repository) List(ctx context.Context) ([]model.Article, error) {
	return r.store.FindAll(ctx)
}

func (r *Repository) Get(ctx context.Context, id string) (*model.Article, error) {
	return r.store.FindByID(ctx, id)
}

// Update changes title and body only. The like counter is never touched.
func (r *Repository) Update(ctx context.Context, id string, fields model.ArticleFields) (*model.Article, error) {
	if err := r.check(fields); err != nil {
		return nil, err
	}

	return r.store.UpdateByID(ctx, id, fields)
}

func (r *Repository) Delete(ctx context.Context, id string) (*model.Article, error) {
	return r.store.DeleteByID(ctx, id)
}

func (r *Repository) check(fields model.ArticleFields) error {
	if r.validate == nil {
		return nil
	}

	if err := r.validate(fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, err)
	}

	return nil
}
