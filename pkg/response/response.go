package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the envelope for message-style responses. Resource payloads
// (a book, the book list) are written raw with Raw to keep the wire
// contract flat.
type Body struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Token   string      `json:"token,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Success writes a 200 message envelope with optional data.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Body{Message: message, Data: data})
}

// Token writes a 200 envelope carrying a session token.
func Token(c *gin.Context, message, token string) {
	c.JSON(http.StatusOK, Body{Message: message, Token: token})
}

// Raw writes v as the entire response body.
func Raw(c *gin.Context, status int, v interface{}) {
	c.JSON(status, v)
}

// Error writes an error envelope.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Message: message})
}

// ErrorDetails writes an error envelope with a field→message breakdown.
func ErrorDetails(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, Body{Message: message, Details: details})
}

// AbortError writes an error envelope and aborts the handler chain.
// Used by middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Body{Message: message})
}
