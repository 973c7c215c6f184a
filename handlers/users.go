// users.go - User CRUD handlers

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Sentinel checks
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"storefront-backend/models" // User input and patch types
	"storefront-backend/store"  // Store errors
)

// ListUsers - GET /api/users, never includes password hashes
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.Users().List(c.Request.Context())
	if err != nil {
		h.fail(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser - POST /api/users, hashes the password before anything is stored
func (h *Handler) CreateUser(c *gin.Context) {
	var input models.UserInput
	if err := bindBody(c, &input); err != nil { // Parse JSON input
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := models.Validate(input); err != nil { // Plaintext is checked before hashing
		message(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := h.hasher.Hash(input.Password)
	if err != nil { // bcrypt rejects passwords over 72 bytes
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	user := input.User(hash)
	if err := h.store.Users().Create(c.Request.Context(), &user); err != nil {
		h.fail(c, "create user", err)
		return
	}
	c.JSON(http.StatusCreated, user) // Password is tagged json:"-"
}

// UpdateUser - PUT /api/users/:id, only name, email and role can change
func (h *Handler) UpdateUser(c *gin.Context) {
	var patch models.UserPatch
	if err := bindBody(c, &patch); err != nil {
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.store.Users().Update(c.Request.Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		message(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.fail(c, "update user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser - DELETE /api/users/:id, succeeds whether or not the user existed
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.store.Users().Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete user", err)
		return
	}
	message(c, http.StatusOK, "User deleted successfully")
}
