package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mengfei0517/robocasa/pkg/scene"
)

// MongoStore archives resolved scenes in a MongoDB collection, one
// document per pass, replaced on repeated Put of the same pass ID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
// Scenes are stored in the "scenes" collection of the given database.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("scenes"),
	}, nil
}

// Put upserts a scene keyed by pass ID.
func (s *MongoStore) Put(ctx context.Context, sc *scene.Scene) error {
	filter := bson.M{"pass_id": sc.PassID}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, filter, sc, opts); err != nil {
		return fmt.Errorf("store scene %s: %w", sc.PassID, err)
	}
	return nil
}

// Get returns the scene with the given pass ID, or ErrNotFound.
func (s *MongoStore) Get(ctx context.Context, passID string) (*scene.Scene, error) {
	var sc scene.Scene
	err := s.coll.FindOne(ctx, bson.M{"pass_id": passID}).Decode(&sc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", passID, err)
	}
	return &sc, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
