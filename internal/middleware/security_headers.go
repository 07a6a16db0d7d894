package middleware

import "github.com/gin-gonic/gin"

func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		headers := c.Writer.Header()

		// Prevent MIME type sniffing
		headers.Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking attacks
		headers.Set("X-Frame-Options", "DENY")

		// Set referrer policy
		headers.Set("Referrer-Policy", "no-referrer")

		// The dashboard pulls Leaflet assets and map tiles from unpkg and
		// the OSM tile servers.
		headers.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline' https://unpkg.com; "+
				"style-src 'self' 'unsafe-inline' https://unpkg.com; "+
				"img-src 'self' data: https://*.tile.openstreetmap.org https://unpkg.com; "+
				"connect-src 'self'")

		c.Next()
	}
}
