package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func ErrorResponseWithDetails(c *gin.Context, statusCode int, message string, details interface{}) {
	c.JSON(statusCode, gin.H{"error": message, "details": details})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusNotFound, ErrHazardNotFoundMsg)
}

func InternalErrorResponse(c *gin.Context, details string) {
	ErrorResponseWithDetails(c, http.StatusInternalServerError, ErrInternalServerMsg, details)
}
