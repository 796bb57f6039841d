package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Grain Business API is running"})
}

// GET /api/hello
func Hello(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello from the Grain backend API!"})
}
