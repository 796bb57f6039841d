package repository

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// New crea el DocumentStore según el backend.
//
// Backends soportados:
//
//	"mongo"  - MongoDB (por defecto); db nil deja el store sin inicializar
//	"memory" - en memoria, efímero, para pruebas y desarrollo local
func New(backend string, db *mongo.Database) (DocumentStore, error) {
	switch backend {
	case "mongo", "":
		return NewMongoStore(db), nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, errors.Errorf("unknown store backend: %q (supported: mongo, memory)", backend)
	}
}
