// health.go - Liveness and readiness endpoints

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Root - Plain-text banner
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Storefront API is running")
}

// Healthz - Liveness only; never touches the store
func (h *Handler) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Readyz - Reports whether the store answers a ping
func (h *Handler) Readyz(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
