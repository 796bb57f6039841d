package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// Connect abre el cliente de MongoDB y comprueba la conexión.
// Un ping fallido solo se registra: el cliente queda utilizable y las
// operaciones fallarán hasta que el servidor responda.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "mongodb connect")
	}

	if err := client.Ping(ctx, nil); err != nil {
		zap.L().Warn("⚠️ MongoDB ping failed", zap.Error(err))
		return client, nil
	}

	zap.L().Info("✅ Connected to MongoDB")
	return client, nil
}

// Disconnect cierra el cliente si existe
func Disconnect(ctx context.Context, client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		zap.L().Error("MongoDB disconnect failed", zap.Error(err))
	}
}
