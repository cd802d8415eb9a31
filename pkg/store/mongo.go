package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/docktile/docktile/pkg/tile"
)

// MongoConfig configures the MongoDB-backed store.
type MongoConfig struct {
	URI        string // connection string, e.g. "mongodb://localhost:27017"
	Database   string // defaults to "docktile"
	Collection string // defaults to "layouts"
}

// Mongo is a MongoDB-backed snapshot store for durable multi-workspace
// deployments. Each layout is one document keyed by name, carrying the
// snapshot as a JSON blob plus an update timestamp.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// layoutDoc is the stored document shape.
type layoutDoc struct {
	Name      string    `bson:"_id"`
	Snapshot  []byte    `bson:"snapshot"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongo connects to MongoDB and verifies the connection with a ping.
func NewMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	db := cfg.Database
	if db == "" {
		db = "docktile"
	}
	coll := cfg.Collection
	if coll == "" {
		coll = "layouts"
	}
	return &Mongo{client: client, coll: client.Database(db).Collection(coll)}, nil
}

// Load retrieves a snapshot by name.
func (m *Mongo) Load(ctx context.Context, name string) (tile.Snapshot, error) {
	var doc layoutDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return tile.Snapshot{}, fmt.Errorf("layout %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return tile.Snapshot{}, fmt.Errorf("load layout %q: %w", name, err)
	}
	var snap tile.Snapshot
	if err := json.Unmarshal(doc.Snapshot, &snap); err != nil {
		return tile.Snapshot{}, fmt.Errorf("parse layout %q: %w", name, err)
	}
	return snap, nil
}

// Save stores a snapshot under the given name, upserting any previous
// document with that name.
func (m *Mongo) Save(ctx context.Context, name string, snap tile.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal layout %q: %w", name, err)
	}
	doc := layoutDoc{Name: name, Snapshot: raw, UpdatedAt: time.Now().UTC()}
	_, err = m.coll.ReplaceOne(ctx, bson.M{"_id": name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save layout %q: %w", name, err)
	}
	return nil
}

// Delete removes a stored snapshot.
func (m *Mongo) Delete(ctx context.Context, name string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": name}); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	return nil
}

// List returns the names of all stored layouts, sorted.
func (m *Mongo) List(ctx context.Context) ([]string, error) {
	cur, err := m.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var doc struct {
			Name string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode layout name: %w", err)
		}
		names = append(names, doc.Name)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Close disconnects the underlying MongoDB client.
func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

var _ Store = (*Mongo)(nil)
