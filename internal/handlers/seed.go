package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"grain-api/internal/models"
)

type SeedResponse struct {
	Status string `json:"status"`
	Seeded bool   `json:"seeded"`
	Count  int    `json:"count,omitempty"`
}

// SeedServices carga los servicios por defecto solo si la colección está vacía.
// Dos llamadas concurrentes sobre una colección vacía pueden duplicar la carga.
func (h *DocumentHandler) SeedServices(c *gin.Context) {
	ctx := c.Request.Context()
	collection := models.PhotographyServiceCollection

	existing, err := h.store.Find(ctx, collection, bson.M{}, 1)
	if err != nil {
		h.fail(c, collection, err)
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusOK, SeedResponse{Status: "ok", Seeded: false})
		return
	}

	services := models.DefaultPhotographyServices()
	defer h.cache.InvalidateCollection(collection)
	for i := range services {
		services[i].ApplyDefaults()
		if _, err := h.store.Insert(ctx, collection, &services[i]); err != nil {
			h.fail(c, collection, err)
			return
		}
	}

	h.log.Info("seeded photography services", zap.Int("count", len(services)))
	c.JSON(http.StatusOK, SeedResponse{Status: "ok", Seeded: true, Count: len(services)})
}
