package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 10 * time.Second
)

// MongoStore implementa DocumentStore sobre una base de MongoDB.
// Con db nil el store queda sin inicializar y toda operación falla con
// ErrStoreUnavailable.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// Insert crea un nuevo documento con sus marcas de tiempo
func (s *MongoStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	if s.db == nil {
		return "", ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	doc, err := toDocument(record)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	now := time.Now().UTC()
	doc["_id"] = id
	doc["created_at"] = now
	doc["updated_at"] = now

	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", errors.Wrapf(err, "insert into %s", collection)
	}
	return id.Hex(), nil
}

// Find lista documentos sin orden explícito
func (s *MongoStore) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrapf(err, "find in %s", collection)
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "decode %s", collection)
	}
	return docs, nil
}

// Status inspecciona la base; los errores quedan dentro del resultado
func (s *MongoStore) Status(ctx context.Context) StoreStatus {
	if s.db == nil {
		return StoreStatus{}
	}

	status := StoreStatus{
		Initialized:  true,
		DatabaseName: s.db.Name(),
		Collections:  []string{},
	}

	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		status.Err = errors.Wrap(err, "list collections")
		return status
	}
	if len(names) > MaxListedCollections {
		names = names[:MaxListedCollections]
	}
	status.Collections = names
	return status
}
