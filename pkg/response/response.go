package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The simulated backend speaks a fixed wire format: resources are returned
// as-is, batch results as {"success":true,...} and every failure as
// {"error":"..."} with an HTTP status code.

// OK sends the resource with a 200.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends the resource with a 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Success sends {"success":true} merged with any extra fields.
func Success(c *gin.Context, extra gin.H) {
	out := gin.H{"success": true}
	for k, v := range extra {
		out[k] = v
	}
	c.JSON(http.StatusOK, out)
}

func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// BadRequest sends a 400 response, used for validation and conflict errors.
func BadRequest(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	errorResponse(c, http.StatusNotFound, message)
}

// InternalError sends a 500 response, including simulated transport failures.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	errorResponse(c, http.StatusInternalServerError, message)
}
