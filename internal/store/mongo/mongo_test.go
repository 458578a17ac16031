package mongo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SergeyParamoshkin/articles/internal/config"
	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/store"
	"github.com/SergeyParamoshkin/articles/internal/store/storetest"
)

// testTimeout bounds every database call made by the tests.
const testTimeout = 10 * time.Second

// TestMain starts MongoDB in a container once per package when
// GO_TEST_INTEGRATION is set and exports its address as DATABASE_URL.
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7.0",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	_ = os.Setenv("DATABASE_URL", fmt.Sprintf("mongodb://%s:%s", host, port.Port()))

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

// mustNewMongo connects to a fresh database and drops it when the test ends.
func mustNewMongo(t *testing.T) *Mongo {
	t.Helper()

	base := os.Getenv("DATABASE_URL")
	if base == "" {
		t.Skip("DATABASE_URL not set; run with GO_TEST_INTEGRATION=1")
	}

	url := strings.TrimSuffix(base, "/") + "/articles_test_" + primitive.NewObjectID().Hex()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, config.DBConfig{URL: url})
	require.NoError(t, err)
	require.NoError(t, m.Ping(ctx), "DATABASE_URL=%s", url)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

func TestMongo(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return mustNewMongo(t)
	})
}

func TestMongo_StoredFieldNames(t *testing.T) {
	m := mustNewMongo(t)
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	a, err := m.Insert(ctx, model.Article{Title: model.String("T"), NumberOfLikes: 100})
	require.NoError(t, err)

	oid, err := primitive.ObjectIDFromHex(a.ID)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, m.articles.FindOne(ctx, map[string]any{"_id": oid}).Decode(&raw))
	require.Equal(t, "T", raw["title"])
	require.EqualValues(t, 100, raw["numberOfLikes"])
	require.NotContains(t, raw, "body")
}

func TestNew_EmptyURL(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{URL: "   "})
	require.Error(t, err)
}

func TestNew_BadScheme(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{URL: "http://localhost:27017"})
	require.Error(t, err)
}

func TestNew_UnreachableIsLazy(t *testing.T) {
	ctx := context.Background()

	m, err := New(ctx, config.DBConfig{
		URL: "mongodb://127.0.0.1:1/articles?serverSelectionTimeoutMS=200&connectTimeoutMS=200",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close(context.Background()) })

	require.ErrorIs(t, m.Ping(ctx), store.ErrStore)

	_, err = m.FindAll(ctx)
	require.ErrorIs(t, err, store.ErrStore)
}

func TestObjectID_Malformed(t *testing.T) {
	_, err := objectID("op", "123")
	require.ErrorIs(t, err, store.ErrStore)

	oid := primitive.NewObjectID()
	got, err := objectID("op", oid.Hex())
	require.NoError(t, err)
	require.Equal(t, oid, got)

	_, err = objectID("op", " "+oid.Hex())
	require.ErrorIs(t, err, store.ErrStore)
}

func TestDatabaseFromURI(t *testing.T) {
	for uri, want := range map[string]string{
		"mongodb://localhost:27017":            defaultDBName,
		"mongodb://localhost:27017/":           defaultDBName,
		"mongodb://localhost:27017/blog":       "blog",
		"mongodb://u:p@h1/blog?replicaSet=rs0": "blog",
		"mongodb://h1:27017,h2:27017/blog":     "blog",
		"::not a uri::":                        defaultDBName,
	} {
		require.Equal(t, want, databaseFromURI(uri), uri)
	}
}
