package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"grain-api/internal/repository"
)

const errorPreviewLength = 50

type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsHandler reporta el estado del backend y de la base
type DiagnosticsHandler struct {
	store          repository.DocumentStore
	databaseURLSet bool
}

func NewDiagnosticsHandler(store repository.DocumentStore, databaseURLSet bool) *DiagnosticsHandler {
	return &DiagnosticsHandler{store: store, databaseURLSet: databaseURLSet}
}

// GET /test
// Siempre responde 200; cada falla queda escrita en el campo correspondiente.
func (h *DiagnosticsHandler) TestDatabase(c *gin.Context) {
	response := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	status, err := h.inspect(c.Request.Context())
	switch {
	case err != nil:
		response.Database = "❌ Error: " + preview(err.Error())
	case !status.Initialized:
		response.Database = "⚠️  Available but not initialized"
	default:
		urlState := "❌ Not Set"
		if h.databaseURLSet {
			urlState = "✅ Set"
		}
		name := status.DatabaseName
		if name == "" {
			name = "✅ Connected"
		}
		response.DatabaseURL = &urlState
		response.DatabaseName = &name
		response.ConnectionStatus = "Connected"

		if status.Err != nil {
			response.Database = "⚠️  Connected but Error: " + preview(status.Err.Error())
		} else {
			response.Database = "✅ Connected & Working"
			response.Collections = status.Collections
		}
	}

	c.JSON(http.StatusOK, response)
}

// inspect protege la respuesta de un store que entre en pánico
func (h *DiagnosticsHandler) inspect(ctx context.Context) (status repository.StoreStatus, err error) {
	if h.store == nil {
		return status, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return h.store.Status(ctx), nil
}

func preview(msg string) string {
	runes := []rune(msg)
	if len(runes) > errorPreviewLength {
		return string(runes[:errorPreviewLength])
	}
	return msg
}
