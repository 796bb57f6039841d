package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const memoryDatabaseName = "memory"

// MemoryStore guarda todo en memoria en orden de inserción.
// Los datos se pierden al reiniciar. Seguro para uso concurrente.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]bson.M),
	}
}

// copyDocument hace una copia profunda pasando por BSON
func copyDocument(src bson.M) (bson.M, error) {
	raw, err := bson.Marshal(src)
	if err != nil {
		return nil, errors.Wrap(err, "copy document")
	}
	var dst bson.M
	if err := bson.Unmarshal(raw, &dst); err != nil {
		return nil, errors.Wrap(err, "copy document")
	}
	return dst, nil
}

func (m *MemoryStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := toDocument(record)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	now := primitive.NewDateTimeFromTime(time.Now().UTC())
	doc["_id"] = id
	doc["created_at"] = now
	doc["updated_at"] = now

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], doc)
	return id.Hex(), nil
}

// Find solo admite igualdad exacta sobre campos de primer nivel
func (m *MemoryStore) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]bson.M, 0)
	for _, doc := range m.collections[collection] {
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
		ok, err := matches(doc, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		copied, err := copyDocument(doc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, copied)
	}
	return docs, nil
}

func matches(doc, filter bson.M) (bool, error) {
	for key, want := range filter {
		if _, isOperator := want.(bson.M); isOperator {
			return false, errors.Errorf("memory store: unsupported filter on %q", key)
		}
		if doc[key] != want {
			return false, nil
		}
	}
	return true, nil
}

func (m *MemoryStore) Status(ctx context.Context) StoreStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if len(names) > MaxListedCollections {
		names = names[:MaxListedCollections]
	}
	return StoreStatus{
		Initialized:  true,
		DatabaseName: memoryDatabaseName,
		Collections:  names,
	}
}
