package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// MaxListedCollections limita cuántas colecciones reporta Status
const MaxListedCollections = 10

// ErrStoreUnavailable se devuelve cuando no hay conexión a la base configurada
var ErrStoreUnavailable = errors.New("database not available")

// DocumentStore guarda registros en colecciones con nombre.
// Los documentos devueltos por Find conservan el campo "_id" del store.
type DocumentStore interface {
	// Insert guarda el registro y devuelve el id generado en forma de texto.
	Insert(ctx context.Context, collection string, record any) (string, error)

	// Find devuelve hasta limit documentos que cumplen filter, en el orden
	// natural del store. limit 0 significa sin límite.
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// Status describe el estado de la conexión sin devolver errores.
	Status(ctx context.Context) StoreStatus
}

// StoreStatus es el resultado de inspeccionar la conexión
type StoreStatus struct {
	Initialized  bool
	DatabaseName string
	Collections  []string
	Err          error
}

// toDocument convierte un registro a su forma BSON nativa
func toDocument(record any) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "encode record")
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode record")
	}
	return doc, nil
}
