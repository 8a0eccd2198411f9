package database

import (
	"context"
	"fmt"

	"telebuddy/backend/internal/models"
	"telebuddy/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Gateway is the persistence surface the handlers depend on. *Store is the
// MongoDB implementation; tests swap in an in-memory double.
type Gateway interface {
	// Create inserts one record into the collection for kind and returns
	// the store-assigned identifier as a display string.
	Create(ctx context.Context, kind string, record any) (string, error)
	// Query returns up to limit documents matching the exact-match filter,
	// in natural order, with _id converted to a string. Reads are
	// best-effort: any failure degrades to an empty slice.
	Query(ctx context.Context, kind string, filter bson.M, limit int64) []bson.M
	// Collections lists up to 10 existing collection names, for diagnostics.
	Collections(ctx context.Context) []string
	// Available reports whether a live connection exists.
	Available() bool
}

// Store translates records to and from MongoDB documents. A nil Store is
// valid and represents the degraded no-connection state: writes fail with
// ErrStorageUnavailable and reads return empty results.
type Store struct {
	db     *mongo.Database
	logger *logger.Logger
}

var _ Gateway = (*Store)(nil)

func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

func (s *Store) Create(ctx context.Context, kind string, record any) (string, error) {
	if !s.Available() {
		return "", ErrStorageUnavailable
	}

	res, err := s.db.Collection(models.CollectionName(kind)).InsertOne(ctx, record)
	if err != nil {
		return "", &StorageError{Op: "insert", Kind: kind, Err: err}
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *Store) Query(ctx context.Context, kind string, filter bson.M, limit int64) []bson.M {
	if !s.Available() {
		return []bson.M{}
	}
	if filter == nil {
		filter = bson.M{}
	}

	cur, err := s.db.Collection(models.CollectionName(kind)).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		s.logger.Warn("Query failed, returning empty result set", "kind", kind, "error", err)
		return []bson.M{}
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		s.logger.Warn("Cursor decode failed, returning empty result set", "kind", kind, "error", err)
		return []bson.M{}
	}
	if docs == nil {
		docs = []bson.M{}
	}

	for _, doc := range docs {
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			doc["_id"] = oid.Hex()
		}
	}
	return docs
}

func (s *Store) Collections(ctx context.Context) []string {
	if !s.Available() {
		return []string{}
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		s.logger.Warn("Listing collections failed", "error", err)
		return []string{}
	}
	if len(names) > 10 {
		names = names[:10]
	}
	return names
}
