// Package memory keeps articles in process memory. Identifiers and error
// kinds match the MongoDB driver, so it can stand in for it in tests and
// local runs.
package memory

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

var errClosed = errors.New("memory store closed")

// Memory is a mutex-guarded slice of articles in insertion order.
type Memory struct {
	mu       sync.Mutex
	articles []model.Article
	closed   bool
}

var _ store.Store = (*Memory)(nil)

func New() *Memory {
	return &Memory{}
}

func (m *Memory) Insert(_ context.Context, article model.Article) (*model.Article, error) {
	const op = "store/memory/Insert"

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, store.Failure(op, errClosed)
	}

	article = clone(article)
	article.ID = primitive.NewObjectID().Hex()
	m.articles = append(m.articles, article)

	out := clone(article)

	return &out, nil
}

func (m *Memory) FindAll(_ context.Context) ([]model.Article, error) {
	const op = "store/memory/FindAll"

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, store.Failure(op, errClosed)
	}

	out := make([]model.Article, 0, len(m.articles))
	for _, a := range m.articles {
		out = append(out, clone(a))
	}

	return out, nil
}

func (m *Memory) FindByID(_ context.Context, id string) (*model.Article, error) {
	const op = "store/memory/FindByID"

	m.mu.Lock()
	defer m.mu.Unlock()

	i, err := m.index(op, id)
	if err != nil {
		return nil, err
	}

	out := clone(m.articles[i])

	return &out, nil
}

func (m *Memory) UpdateByID(_ context.Context, id string, fields model.ArticleFields) (*model.Article, error) {
	const op = "store/memory/UpdateByID"

	m.mu.Lock()
	defer m.mu.Unlock()

	i, err := m.index(op, id)
	if err != nil {
		return nil, err
	}

	if fields.Title != nil {
		m.articles[i].Title = copyString(fields.Title)
	}

	if fields.Body != nil {
		m.articles[i].Body = copyString(fields.Body)
	}

	out := clone(m.articles[i])

	return &out, nil
}

func (m *Memory) DeleteByID(_ context.Context, id string) (*model.Article, error) {
	const op = "store/memory/DeleteByID"

	m.mu.Lock()
	defer m.mu.Unlock()

	i, err := m.index(op, id)
	if err != nil {
		return nil, err
	}

	a := m.articles[i]
	m.articles = append(m.articles[:i], m.articles[i+1:]...)

	return &a, nil
}

func (m *Memory) Ping(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return store.Failure("store/memory/Ping", errClosed)
	}

	return nil
}

// Close makes every later operation fail with store.ErrStore.
func (m *Memory) Close(_ context.Context) error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	return nil
}

// index must be called with mu held. A malformed id is a store failure,
// the same way the driver rejects it before reaching the server.
func (m *Memory) index(op, id string) (int, error) {
	if m.closed {
		return -1, store.Failure(op, errClosed)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1, store.Failure(op, err)
	}

	hex := oid.Hex()
	for i, a := range m.articles {
		if a.ID == hex {
			return i, nil
		}
	}

	return -1, store.NotFound(op)
}

func clone(a model.Article) model.Article {
	a.Title = copyString(a.Title)
	a.Body = copyString(a.Body)

	return a
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
