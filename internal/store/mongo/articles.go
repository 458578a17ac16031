package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/SergeyParamoshkin/articles/internal/store"
)

// articleDoc is the stored shape. Nil title/body are left out of the
// document entirely.
type articleDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         *string            `bson:"title,omitempty"`
	Body          *string            `bson:"body,omitempty"`
	NumberOfLikes int                `bson:"numberOfLikes"`
}

func toDoc(a model.Article) articleDoc {
	return articleDoc{
		Title:         a.Title,
		Body:          a.Body,
		NumberOfLikes: a.NumberOfLikes,
	}
}

func (d articleDoc) article() model.Article {
	return model.Article{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Body:          d.Body,
		NumberOfLikes: d.NumberOfLikes,
	}
}

// objectID parses a wire id. A malformed id is a store failure, not a miss.
func objectID(op, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.Failure(op, fmt.Errorf("cast %q to ObjectId: %w", id, err))
	}

	return oid, nil
}

// decodeOne maps a single-document result to an article or an error kind.
func decodeOne(op string, res *mongodriver.SingleResult) (*model.Article, error) {
	var doc articleDoc
	if err := res.Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, store.NotFound(op)
		}

		return nil, store.Failure(op, err)
	}

	a := doc.article()

	return &a, nil
}

// Insert stores the article under a fresh ObjectID. Any id on the input is
// ignored.
func (m *Mongo) Insert(ctx context.Context, article model.Article) (*model.Article, error) {
	const op = "store/mongo/Insert"

	doc := toDoc(article)
	doc.ID = primitive.NewObjectID()

	if _, err := m.articles.InsertOne(ctx, doc); err != nil {
		return nil, store.Failure(op, err)
	}

	out := doc.article()

	return &out, nil
}

func (m *Mongo) FindAll(ctx context.Context) ([]model.Article, error) {
	const op = "store/mongo/FindAll"

	cur, err := m.articles.Find(ctx, bson.D{})
	if err != nil {
		return nil, store.Failure(op, fmt.Errorf("find: %w", err))
	}
	defer cur.Close(ctx)

	items := make([]model.Article, 0)
	for cur.Next(ctx) {
		var doc articleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, store.Failure(op, fmt.Errorf("decode: %w", err))
		}

		items = append(items, doc.article())
	}

	if err := cur.Err(); err != nil {
		return nil, store.Failure(op, fmt.Errorf("cursor: %w", err))
	}

	return items, nil
}

func (m *Mongo) FindByID(ctx context.Context, id string) (*model.Article, error) {
	const op = "store/mongo/FindByID"

	oid, err := objectID(op, id)
	if err != nil {
		return nil, err
	}

	return decodeOne(op, m.articles.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}))
}

// UpdateByID sets the provided fields and returns the document after the
// update. With no fields it behaves like FindByID, since MongoDB rejects
// an empty $set.
func (m *Mongo) UpdateByID(ctx context.Context, id string, fields model.ArticleFields) (*model.Article, error) {
	const op = "store/mongo/UpdateByID"

	oid, err := objectID(op, id)
	if err != nil {
		return nil, err
	}

	filter := bson.D{{Key: "_id", Value: oid}}

	set := bson.D{}
	if fields.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *fields.Title})
	}

	if fields.Body != nil {
		set = append(set, bson.E{Key: "body", Value: *fields.Body})
	}

	if len(set) == 0 {
		return decodeOne(op, m.articles.FindOne(ctx, filter))
	}

	res := m.articles.FindOneAndUpdate(ctx, filter,
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	return decodeOne(op, res)
}

func (m *Mongo) DeleteByID(ctx context.Context, id string) (*model.Article, error) {
	const op = "store/mongo/DeleteByID"

	oid, err := objectID(op, id)
	if err != nil {
		return nil, err
	}

	return decodeOne(op, m.articles.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}))
}
