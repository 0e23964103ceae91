// internal/app/store/docstore/mongo.go
package docstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is a Store keeping each named document as one row in a `documents`
// collection. Compare-and-swap is a filtered UpdateOne on the version field:
// zero matched documents with a non-empty prior version means someone else
// wrote in between.
type Mongo struct {
	c    *mongo.Collection
	name string
}

// NewMongo returns a Mongo store for the named document.
func NewMongo(db *mongo.Database, name string) *Mongo {
	return &Mongo{c: db.Collection("documents"), name: name}
}

type mongoDoc struct {
	Name      string    `bson:"name"`
	Content   []byte    `bson:"content"`
	Version   string    `bson:"version"`
	UpdatedAt time.Time `bson:"updated_at"`
	Message   string    `bson:"message,omitempty"`
}

// Load fetches the document row.
func (m *Mongo) Load(ctx context.Context) ([]byte, Version, error) {
	var doc mongoDoc
	err := m.c.FindOne(ctx, bson.M{"name": m.name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return doc.Content, Version(doc.Version), nil
}

// Save swaps the content conditionally on the stored version.
func (m *Mongo) Save(ctx context.Context, content []byte, ver Version, message string) (Version, error) {
	next := mongoVersion(content)
	set := bson.M{
		"content":    content,
		"version":    string(next),
		"updated_at": time.Now().UTC(),
		"message":    message,
	}

	if ver == "" {
		// Create path: upsert guarded by "no document with this name yet".
		res, err := m.c.UpdateOne(ctx,
			bson.M{"name": m.name, "version": bson.M{"$exists": false}},
			bson.M{"$set": set, "$setOnInsert": bson.M{"name": m.name}},
			options.Update().SetUpsert(true))
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return "", ErrConflict
			}
			return "", err
		}
		if res.MatchedCount == 0 && res.UpsertedCount == 0 {
			return "", ErrConflict
		}
		return next, nil
	}

	res, err := m.c.UpdateOne(ctx,
		bson.M{"name": m.name, "version": string(ver)},
		bson.M{"$set": set})
	if err != nil {
		return "", err
	}
	if res.MatchedCount == 0 {
		return "", ErrConflict
	}
	return next, nil
}

// Delete removes the row conditionally on the stored version.
func (m *Mongo) Delete(ctx context.Context, ver Version, message string) error {
	res, err := m.c.DeleteOne(ctx, bson.M{"name": m.name, "version": string(ver)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		// Distinguish gone from moved-on.
		count, err := m.c.CountDocuments(ctx, bson.M{"name": m.name})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}
	return nil
}

// EnsureIndexes creates the unique name index the CAS path relies on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("documents").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func mongoVersion(content []byte) Version {
	sum := sha256.Sum256(content)
	return Version(hex.EncodeToString(sum[:]))
}
