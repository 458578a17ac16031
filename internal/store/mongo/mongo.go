package mongo

import (
	"context"
	"fmt"
	"strings"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/SergeyParamoshkin/articles/internal/config"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

const (
	defaultCollection = "articles"
	defaultDBName     = "articles"
)

// Mongo is a thin adapter over one MongoDB collection of articles.
type Mongo struct {
	client   *mongodriver.Client
	db       *mongodriver.Database
	articles *mongodriver.Collection
}

var _ store.Store = (*Mongo)(nil)

// New builds the client for cfg.URL. The driver connects lazily, so a
// reachable server is not required here; call Ping to check it. Only an
// empty or unparsable URL fails.
func New(ctx context.Context, cfg config.DBConfig) (*Mongo, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("mongo: empty connection string")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	name := cfg.Collection
	if name == "" {
		name = defaultCollection
	}

	db := cli.Database(databaseFromURI(cfg.URL))

	return &Mongo{
		client:   cli,
		db:       db,
		articles: db.Collection(name),
	}, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return store.Failure("store/mongo/Ping", err)
	}

	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// databaseFromURI returns the database named in the connection string, or
// the default when there is none. Multi-host and SRV URIs are read the way
// the driver reads them.
func databaseFromURI(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err == nil && cs.Database != "" {
		return cs.Database
	}

	return defaultDBName
}
