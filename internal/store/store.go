// Package store defines the document store contract for articles and the
// error kinds every driver normalizes its failures into.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

var (
	// ErrStore means the operation did not complete: connectivity loss,
	// malformed identifier or a backend-internal failure.
	ErrStore = errors.New("store failure")
	// ErrNotFound means the identifier is well-formed but no record has it.
	ErrNotFound = errors.New("not found")
)

// Store persists articles, reachable by identifier and by full scan.
type Store interface {
	// Insert assigns a fresh id and stores the article.
	Insert(ctx context.Context, article model.Article) (*model.Article, error)
	// FindAll returns every stored article in storage order. The result is
	// never nil.
	FindAll(ctx context.Context) ([]model.Article, error)
	// FindByID returns ErrNotFound when no article has the id.
	FindByID(ctx context.Context, id string) (*model.Article, error)
	// UpdateByID sets the non-nil fields and returns the updated record.
	// Returns ErrNotFound when no article has the id.
	UpdateByID(ctx context.Context, id string, fields model.ArticleFields) (*model.Article, error)
	// DeleteByID removes the article and returns it as it was.
	// Returns ErrNotFound when no article has the id.
	DeleteByID(ctx context.Context, id string) (*model.Article, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Failure wraps err as an ErrStore tagged with op. Context errors and
// ErrNotFound are wrapped too, so callers only ever see the two kinds.
func Failure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

// NotFound tags ErrNotFound with op.
func NotFound(op string) error {
	return fmt.Errorf("%s: %w", op, ErrNotFound)
}

type unavailable struct {
	err error
}

// Unavailable returns a Store that fails every operation with ErrStore
// wrapping err. It stands in when no connection could be set up at startup.
func Unavailable(err error) Store {
	return unavailable{err: err}
}

func (u unavailable) Insert(context.Context, model.Article) (*model.Article, error) {
	return nil, Failure("store/Insert", u.err)
}

func (u unavailable) FindAll(context.Context) ([]model.Article, error) {
	return nil, Failure("store/FindAll", u.err)
}

func (u unavailable) FindByID(context.Context, string) (*model.Article, error) {
	return nil, Failure("store/FindByID", u.err)
}

func (u unavailable) UpdateByID(context.Context, string, model.ArticleFields) (*model.Article, error) {
	return nil, Failure("store/UpdateByID", u.err)
}

func (u unavailable) DeleteByID(context.Context, string) (*model.Article, error) {
	return nil, Failure("store/DeleteByID", u.err)
}

func (u unavailable) Ping(context.Context) error {
	return Failure("store/Ping", u.err)
}

func (u unavailable) Close(context.Context) error {
	return nil
}
