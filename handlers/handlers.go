// handlers.go - Wires the HTTP surface onto the store
//
// Error mapping used by every handler:
//   - client input problems (empty body, bad JSON, validation, uniqueness) -> 400 + message
//   - login failures -> 400 + one generic message
//   - update of a missing id -> 404
//   - store unreachable or any other store failure -> 500 + underlying message

package handlers // Declares the package name

import ( // Import required packages
	"bytes"    // Body emptiness check
	"errors"   // Sentinel checks
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"         // Gin web framework
	"github.com/gin-gonic/gin/binding" // JSON decoding
	"go.uber.org/zap"                  // Structured logging

	"storefront-backend/models"   // Validation errors
	"storefront-backend/security" // Password hashing
	"storefront-backend/store"    // Store contract
)

var errEmptyBody = errors.New("Request body cannot be empty")

// Handler holds the dependencies shared by every route. One instance serves
// all requests; it keeps no per-request state.
type Handler struct {
	store  store.Store
	hasher security.Hasher
	log    *zap.Logger
}

func New(s store.Store, hasher security.Hasher, log *zap.Logger) *Handler {
	return &Handler{store: s, hasher: hasher, log: log}
}

// Register binds every route on r.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	api := r.Group("/api")
	{
		api.POST("/login", h.Login)

		api.GET("/users", h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)

		api.GET("/products", h.ListProducts)
		api.POST("/products", h.CreateProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)

		api.GET("/categories", h.ListCategories)
		api.POST("/categories", h.CreateCategory)
		api.PUT("/categories/:id", h.UpdateCategory)
		api.DELETE("/categories/:id", h.DeleteCategory)

		api.GET("/orders", h.ListOrders)
		api.POST("/orders", h.CreateOrder)
		api.PUT("/orders/:id", h.UpdateOrder)
		api.DELETE("/orders/:id", h.DeleteOrder)
	}
}

// bindBody rejects empty bodies and empty JSON objects, then decodes into dst.
func bindBody(c *gin.Context, dst any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return errEmptyBody
	}
	var fields map[string]any
	if err := binding.JSON.BindBody(raw, &fields); err != nil {
		return err
	}
	if len(fields) == 0 {
		return errEmptyBody
	}
	return binding.JSON.BindBody(raw, dst)
}

func message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// statusOf classifies a store error. Only rejected input is the client's fault.
func statusOf(err error) int {
	var invalid *models.ValidationError
	switch {
	case errors.As(err, &invalid), errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError // Includes store.ErrUnavailable
}

// fail writes err with the status statusOf picks. Server-side failures are
// logged; client errors are left to the request log.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("store call failed", zap.String("op", op), zap.Error(err))
		_ = c.Error(err)
	}
	message(c, status, err.Error())
}
