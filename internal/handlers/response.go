package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estructuras para respuestas
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// SerializeDocument reemplaza el "_id" interno por un "id" de texto
func SerializeDocument(doc bson.M) gin.H {
	out := make(gin.H, len(doc))
	for key, value := range doc {
		if key == "_id" {
			continue
		}
		out[key] = value
	}

	switch id := doc["_id"].(type) {
	case nil:
	case primitive.ObjectID:
		out["id"] = id.Hex()
	default:
		out["id"] = fmt.Sprint(id)
	}
	return out
}
