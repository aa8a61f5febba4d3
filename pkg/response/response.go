package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resp is the standard JSON envelope for successful responses.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// Error is the standard JSON envelope for failed responses.
type Error struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

// OK writes a 200 response with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Message: "success", Data: data})
}

// Created writes a 201 response with the given data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{Message: "created", Data: data})
}

// Accepted writes a 202 response with the given data.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{Message: "accepted", Data: data})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Error{ErrorCode: http.StatusBadRequest, Message: message})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Error{ErrorCode: http.StatusUnauthorized, Message: "Unauthorized"})
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Error{ErrorCode: http.StatusForbidden, Message: "Forbidden"})
}

// NotFound writes a 404 response with the given message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Error{ErrorCode: http.StatusNotFound, Message: message})
}

// TooManyRequests writes a 429 response with the given message.
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, Error{ErrorCode: http.StatusTooManyRequests, Message: message})
}

// InternalError writes a 500 response.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Error{ErrorCode: http.StatusInternalServerError, Message: "Internal server error"})
}
