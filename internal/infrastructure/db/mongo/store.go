// Package mongo provides a Store backend keeping each collection as a single
// document (whole-document replace on every write) in one MongoDB collection.
package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bigitcorp/taskboard/internal/core/ports"
)

const (
	collectionName = "collections"
	defaultTimeout = 10 * time.Second
)

// Config captures the minimal settings required to establish a MongoDB
// connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Store implements ports.Store over MongoDB.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type storedDoc struct {
	Key string `bson:"_id"`
	Doc []byte `bson:"doc"`
}

// Connect establishes a MongoDB client, verifies connectivity with a ping and
// returns the store.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{
		client: client,
		coll:   client.Database(cfg.Database).Collection(collectionName),
	}, nil
}

func (s *Store) Load(ctx context.Context, key string, out any) error {
	var doc storedDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ports.ErrKeyNotFound
		}
		return fmt.Errorf("mongo load %s: %w", key, err)
	}
	if err := json.Unmarshal(doc.Doc, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	opts := options.Replace().SetUpsert(true)
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": key}, storedDoc{Key: key, Doc: raw}, opts)
	if err != nil {
		return fmt.Errorf("mongo save %s: %w", key, err)
	}
	return nil
}

// ReplaceAll upserts every document sequentially; MongoDB offers no cheap
// multi-document transaction on standalone deployments, so a restore is
// atomic only from the core's point of view.
func (s *Store) ReplaceAll(ctx context.Context, docs map[string]any) error {
	for key, v := range docs {
		if err := s.Save(ctx, key, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
