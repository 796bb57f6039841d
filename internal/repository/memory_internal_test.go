package repository

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestCopyDocumentError(t *testing.T) {
	if _, err := copyDocument(bson.M{"ch": make(chan int)}); err == nil {
		t.Fatal("expected error for a value BSON cannot encode")
	}
}

func TestFindReturnsCopyError(t *testing.T) {
	m := NewMemoryStore()
	m.collections["broken"] = []bson.M{{"ch": make(chan int)}}

	docs, err := m.Find(context.Background(), "broken", bson.M{}, 0)
	if err == nil {
		t.Fatalf("expected error, got %v", docs)
	}
}
