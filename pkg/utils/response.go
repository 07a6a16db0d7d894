package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the error envelope the API uses everywhere:
// a non-2xx status with {"ok": false, "error": "..."}.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"ok":    false,
		"error": message,
	})
}

// OKResponse writes {"ok": true} merged with extra fields.
func OKResponse(c *gin.Context, status int, extra gin.H) {
	body := gin.H{"ok": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}
