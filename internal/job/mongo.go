package job

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check that MongoRepository implements Repository.
var _ Repository = (*MongoRepository)(nil)

// MongoRepository persists jobs in a MongoDB collection.
// The collection handle is shared by all requests; the driver pools
// connections underneath it.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a repository backed by coll.
func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// List returns one page of jobs ordered by _id.
// Generated ObjectIDs grow with creation time, so pages follow creation order
// as long as no job is inserted or deleted between calls.
func (r *MongoRepository) List(ctx context.Context, page int) ([]Document, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: IDField, Value: 1}}).
		SetSkip(PageOffset(page)).
		SetLimit(PageSize)

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}

	docs := make([]Document, 0, PageSize)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read jobs: %w", err)
	}
	return docs, nil
}

// FindByID retrieves a job by its ObjectID.
func (r *MongoRepository) FindByID(ctx context.Context, oid primitive.ObjectID) (Document, error) {
	var doc Document
	err := r.coll.FindOne(ctx, byID(oid)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find job %s: %w", oid.Hex(), err)
	}
	return doc, nil
}

// Insert stores doc unchanged; the driver generates an ObjectID when doc has
// no _id.
func (r *MongoRepository) Insert(ctx context.Context, doc Document) (InsertResult, error) {
	if doc == nil {
		doc = Document{}
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return InsertResult{}, fmt.Errorf("insert job: %w", err)
	}
	return InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// Delete removes the job with the given ObjectID.
func (r *MongoRepository) Delete(ctx context.Context, oid primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, byID(oid))
	if err != nil {
		return fmt.Errorf("delete job %s: %w", oid.Hex(), err)
	}
	if res.DeletedCount != 1 {
		return ErrJobNotFound
	}
	return nil
}

// Update applies updates with $set.
func (r *MongoRepository) Update(ctx context.Context, oid primitive.ObjectID, updates Document) error {
	res, err := r.coll.UpdateOne(ctx, byID(oid), bson.D{{Key: "$set", Value: updates}})
	if err != nil {
		return fmt.Errorf("update job %s: %w", oid.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrJobNotFound
	}
	if res.ModifiedCount == 0 {
		return ErrJobNotModified
	}
	return nil
}

func byID(oid primitive.ObjectID) bson.D {
	return bson.D{{Key: IDField, Value: oid}}
}
