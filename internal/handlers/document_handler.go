package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"grain-api/internal/cache"
	"grain-api/internal/models"
	"grain-api/internal/repository"
)

const (
	DefaultProductLimit = 50
	DefaultServiceLimit = 50
	DefaultInquiryLimit = 100
	DefaultBookingLimit = 100
)

// DocumentHandler atiende los endpoints de alta y listado de todas las entidades
type DocumentHandler struct {
	store repository.DocumentStore
	cache *cache.Cache
	log   *zap.Logger
}

func NewDocumentHandler(store repository.DocumentStore, c *cache.Cache, log *zap.Logger) *DocumentHandler {
	if c == nil {
		c = cache.New(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentHandler{store: store, cache: c, log: log}
}

// Create valida el cuerpo contra el esquema de T y lo guarda en su colección
func Create[T any, PT interface {
	*T
	models.Record
}](h *DocumentHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		record := PT(new(T))
		if err := c.ShouldBindJSON(record); err != nil {
			c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: bindingDetail(err, record)})
			return
		}
		record.ApplyDefaults()

		collection := record.Collection()
		id, err := h.store.Insert(c.Request.Context(), collection, record)
		if err != nil {
			h.fail(c, collection, err)
			return
		}

		// Invalidar caché de listados
		h.cache.InvalidateCollection(collection)

		c.JSON(http.StatusOK, CreatedResponse{ID: id})
	}
}

// List devuelve los documentos de una colección con el "_id" como "id"
func (h *DocumentHandler) List(collection string, defaultLimit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := parseLimit(c, defaultLimit)
		if !ok {
			return
		}

		cacheKey := cache.ListKey(collection, limit)
		if cached, found := h.cache.GetValue(cacheKey); found {
			c.JSON(http.StatusOK, cached)
			return
		}

		docs, err := h.store.Find(c.Request.Context(), collection, bson.M{}, limit)
		if err != nil {
			h.fail(c, collection, err)
			return
		}

		items := make([]gin.H, 0, len(docs))
		for _, doc := range docs {
			items = append(items, SerializeDocument(doc))
		}

		h.cache.Set(cacheKey, items)
		c.JSON(http.StatusOK, items)
	}
}

// parseLimit lee ?limit=; escribe la respuesta 422 si no es un entero >= 0
func parseLimit(c *gin.Context, fallback int64) (int64, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return fallback, true
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: []ValidationIssue{{
			Loc:  []string{"query", "limit"},
			Msg:  "must be a non-negative integer",
			Type: "int_parsing",
		}}})
		return 0, false
	}
	return limit, true
}

func (h *DocumentHandler) fail(c *gin.Context, collection string, err error) {
	h.log.Error("store operation failed",
		zap.String("collection", collection),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
}
