package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

func TestFailure_IsErrStore(t *testing.T) {
	cause := errors.New("connection refused")
	err := Failure("store/mongo/Insert", cause)

	require.ErrorIs(t, err, ErrStore)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "store/mongo/Insert")
}

func TestNotFound_IsNotFound(t *testing.T) {
	err := NotFound("store/mongo/FindByID")

	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrStore)
}

func TestUnavailable_FailsEverything(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("empty DATABASE_URL")
	s := Unavailable(cause)

	_, err := s.Insert(ctx, model.Article{})
	require.ErrorIs(t, err, ErrStore)

	_, err = s.FindAll(ctx)
	require.ErrorIs(t, err, ErrStore)

	_, err = s.FindByID(ctx, "x")
	require.ErrorIs(t, err, ErrStore)

	_, err = s.UpdateByID(ctx, "x", model.ArticleFields{})
	require.ErrorIs(t, err, ErrStore)

	_, err = s.DeleteByID(ctx, "x")
	require.ErrorIs(t, err, ErrStore)

	require.ErrorIs(t, s.Ping(ctx), cause)
	require.NoError(t, s.Close(ctx))
}
