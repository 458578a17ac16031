// Package storetest holds the behavior every store.Store driver must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

// Run exercises a driver. newStore must return an empty store; it is
// called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("InsertAssignsID", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, err := s.Insert(ctx, model.Article{
			ID:            "will-be-replaced",
			Title:         model.String("T"),
			Body:          model.String("B"),
			NumberOfLikes: model.DefaultNumberOfLikes,
		})
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)
		assert.NotEqual(t, "will-be-replaced", a.ID)
		assert.Equal(t, "T", *a.Title)
		assert.Equal(t, "B", *a.Body)
		assert.Equal(t, model.DefaultNumberOfLikes, a.NumberOfLikes)

		b, err := s.Insert(ctx, model.Article{Title: model.String("T")})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("FindAll", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		require.NotNil(t, all)
		require.Empty(t, all)

		first, err := s.Insert(ctx, model.Article{Title: model.String("one"), Body: model.String("1")})
		require.NoError(t, err)
		second, err := s.Insert(ctx, model.Article{Title: model.String("two"), Body: model.String("2")})
		require.NoError(t, err)

		all, err = s.FindAll(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []model.Article{*first, *second}, all)
	})

	t.Run("FindByID", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, err := s.Insert(ctx, model.Article{Title: model.String("T"), Body: model.String("B"), NumberOfLikes: 100})
		require.NoError(t, err)

		got, err := s.FindByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, a, got)

		_, err = s.FindByID(ctx, primitive.NewObjectID().Hex())
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.FindByID(ctx, "not-an-object-id")
		require.ErrorIs(t, err, store.ErrStore)

		// Ids are parsed as given; a padded hex of a stored id is malformed.
		for _, id := range []string{" " + a.ID, a.ID + " ", "\t" + a.ID + "\n"} {
			_, err = s.FindByID(ctx, id)
			require.ErrorIs(t, err, store.ErrStore, "%q", id)
			_, err = s.UpdateByID(ctx, id, model.ArticleFields{Title: model.String("x")})
			require.ErrorIs(t, err, store.ErrStore, "%q", id)
			_, err = s.DeleteByID(ctx, id)
			require.ErrorIs(t, err, store.ErrStore, "%q", id)
		}

		got, err = s.FindByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, a, got)
	})

	t.Run("UpdateByID", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, err := s.Insert(ctx, model.Article{Title: model.String("T"), Body: model.String("B"), NumberOfLikes: 100})
		require.NoError(t, err)

		got, err := s.UpdateByID(ctx, a.ID, model.ArticleFields{Title: model.String("T2"), Body: model.String("B2")})
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
		assert.Equal(t, "T2", *got.Title)
		assert.Equal(t, "B2", *got.Body)
		assert.Equal(t, 100, got.NumberOfLikes)

		// Only the provided field changes.
		got, err = s.UpdateByID(ctx, a.ID, model.ArticleFields{Body: model.String("B3")})
		require.NoError(t, err)
		assert.Equal(t, "T2", *got.Title)
		assert.Equal(t, "B3", *got.Body)

		got, err = s.UpdateByID(ctx, a.ID, model.ArticleFields{})
		require.NoError(t, err)
		assert.Equal(t, "T2", *got.Title)
		assert.Equal(t, "B3", *got.Body)

		stored, err := s.FindByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, got, stored)

		_, err = s.UpdateByID(ctx, primitive.NewObjectID().Hex(), model.ArticleFields{Title: model.String("x")})
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.UpdateByID(ctx, "zzz", model.ArticleFields{Title: model.String("x")})
		require.ErrorIs(t, err, store.ErrStore)

		all, err := s.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, err := s.Insert(ctx, model.Article{Title: model.String("T"), Body: model.String("B"), NumberOfLikes: 100})
		require.NoError(t, err)

		deleted, err := s.DeleteByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, a, deleted)

		_, err = s.FindByID(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.DeleteByID(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.DeleteByID(ctx, "")
		require.ErrorIs(t, err, store.ErrStore)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, tc := range []struct {
			name  string
			title string
			body  string
		}{
			{"empty", "", ""},
			{"unicode", "Привет, мир", "こんにちは 🌍 é́"},
			{"whitespace", "  padded  ", "\n\ttabs\n"},
		} {
			a, err := s.Insert(ctx, model.Article{Title: model.String(tc.title), Body: model.String(tc.body)})
			require.NoError(t, err, tc.name)

			got, err := s.FindByID(ctx, a.ID)
			require.NoError(t, err, tc.name)
			require.NotNil(t, got.Title, tc.name)
			require.NotNil(t, got.Body, tc.name)
			assert.Equal(t, tc.title, *got.Title, tc.name)
			assert.Equal(t, tc.body, *got.Body, tc.name)
		}
	})

	t.Run("AbsentFields", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, err := s.Insert(ctx, model.Article{NumberOfLikes: 100})
		require.NoError(t, err)

		got, err := s.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Title)
		assert.Nil(t, got.Body)
		assert.Equal(t, 100, got.NumberOfLikes)
	})
}
