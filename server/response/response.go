package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// JSON writes the standard response envelope. Every handler goes through
// this so clients always see the same shape.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	var errMessage string
	if err != nil {
		errMessage = err.Error()
	}

	responsedata := gin.H{
		"message":   message,
		"data":      data,
		"errors":    errMessage,
		"status":    http.StatusText(status),
		"timestamp": time.Now().Format(time.RFC3339),
	}

	c.JSON(status, responsedata)
}
