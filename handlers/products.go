// products.go - Product CRUD handlers

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Sentinel checks
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"storefront-backend/models" // Product and patch types
	"storefront-backend/store"  // Store errors
)

// ListProducts - GET /api/products, oldest first
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.store.Products().List(c.Request.Context())
	if err != nil {
		h.fail(c, "list products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct - POST /api/products; status, stock and images take defaults when omitted
func (h *Handler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := bindBody(c, &product); err != nil { // Parse JSON input
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	product.ID = "" // Identity is always assigned by the store
	if err := h.store.Products().Create(c.Request.Context(), &product); err != nil {
		h.fail(c, "create product", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct - PUT /api/products/:id, partial update
func (h *Handler) UpdateProduct(c *gin.Context) {
	var patch models.ProductPatch
	if err := bindBody(c, &patch); err != nil {
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	product, err := h.store.Products().Update(c.Request.Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		message(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		h.fail(c, "update product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct - DELETE /api/products/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.store.Products().Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete product", err)
		return
	}
	message(c, http.StatusOK, "Product deleted successfully")
}
