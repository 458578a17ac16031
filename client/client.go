// Package client talks to the articles HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

// ErrNotFound matches an APIError with status 404.
var ErrNotFound = errors.New("article not found")

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("articles api: %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	http.Client
	Addr string
}

// ArticleInput is the create/update payload. Nil fields are not sent.
type ArticleInput struct {
	ArticleTitle *string `json:"articleTitle,omitempty"`
	ArticleBody  *string `json:"articleBody,omitempty"`
}

type updatedResponse struct {
	Message        string         `json:"message"`
	UpdatedArticle *model.Article `json:"updatedArticle"`
}

type deletedResponse struct {
	Message        string         `json:"message"`
	DeletedArticle *model.Article `json:"deletedArticle"`
}

func (c *Client) Ping() (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), err
}

func (c *Client) CreateArticle(ctx context.Context, in ArticleInput) (*model.Article, error) {
	var out model.Article
	if err := c.call(ctx, http.MethodPost, "/articles", in, http.StatusCreated, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ListArticles(ctx context.Context) ([]model.Article, error) {
	var out []model.Article
	if err := c.call(ctx, http.MethodGet, "/articles", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	var out model.Article
	if err := c.call(ctx, http.MethodGet, "/articles/"+id, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpdateArticle(ctx context.Context, id string, in ArticleInput) (*model.Article, error) {
	var out updatedResponse
	if err := c.call(ctx, http.MethodPut, "/articles/"+id, in, http.StatusOK, &out); err != nil {
		return nil, err
	}

	return out.UpdatedArticle, nil
}

func (c *Client) DeleteArticle(ctx context.Context, id string) (*model.Article, error) {
	var out deletedResponse
	if err := c.call(ctx, http.MethodDelete, "/articles/"+id, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}

	return out.DeletedArticle, nil
}

func (c *Client) call(ctx context.Context, method, path string, in any, want int, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Addr+path, body)
	if err != nil {
		return err
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&msg)

		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
