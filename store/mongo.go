package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on a MongoDB database.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{db: client.Database(dbName)}
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes that close the
// check-then-create race windows: one user per email, one daily log per
// (user, date).
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	_, err = s.db.Collection(DailyLogCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create daily log index: %w", err)
	}
	return nil
}

func (s *MongoStore) GetOneByID(ctx context.Context, collection, id string, dest any) error {
	return s.GetOneByQuery(ctx, collection, Query{"_id": id}, dest)
}

func (s *MongoStore) GetOneByQuery(ctx context.Context, collection string, query Query, dest any) error {
	err := s.db.Collection(collection).FindOne(ctx, bson.M(query)).Decode(dest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		slog.Info("record not found", "collection", collection)
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get record from %s: %w", collection, err)
	}
	slog.Info("record found", "collection", collection)
	return nil
}

func (s *MongoStore) GetManyByQuery(ctx context.Context, collection string, queries []Query, dest any) error {
	cursor, err := s.db.Collection(collection).Find(ctx, orFilter(queries))
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("failed to decode records from %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc any) error {
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	slog.Info("record inserted", "collection", collection)
	return nil
}

func (s *MongoStore) Patch(ctx context.Context, collection, id string, doc any) error {
	result, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": doc},
	)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", collection, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", collection, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteAll(ctx context.Context, collection string) (int64, error) {
	result, err := s.db.Collection(collection).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to reset %s: %w", collection, err)
	}
	slog.Info("collection reset", "collection", collection, "deleted", result.DeletedCount)
	return result.DeletedCount, nil
}

// orFilter turns a slice of filters into a single Mongo filter. One
// element passes through untouched; several become a $or.
func orFilter(queries []Query) bson.M {
	switch len(queries) {
	case 0:
		return bson.M{}
	case 1:
		return bson.M(queries[0])
	default:
		clauses := make([]bson.M, 0, len(queries))
		for _, q := range queries {
			clauses = append(clauses, bson.M(q))
		}
		return bson.M{"$or": clauses}
	}
}
