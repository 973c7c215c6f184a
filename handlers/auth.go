// auth.go - Handles user login

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Sentinel checks
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"storefront-backend/models" // User model
	"storefront-backend/store"  // Store errors
)

const invalidCredentials = "Invalid credentials"

// Login - Checks an email/password pair. Nothing is issued on success; the
// caller gets the user's profile and that is all.
func (h *Handler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := bindBody(c, &input); err != nil { // Parse JSON input
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := models.Validate(input); err != nil { // Both fields are required
		message(c, http.StatusBadRequest, err.Error())
		return
	}

	// Unknown email and wrong password must produce the same response
	user, err := h.store.Users().FindByEmail(c.Request.Context(), input.Email)
	if errors.Is(err, store.ErrNotFound) {
		message(c, http.StatusBadRequest, invalidCredentials)
		return
	}
	if err != nil {
		h.fail(c, "login", err) // Store failure, never a credential problem
		return
	}
	if !h.hasher.Verify(input.Password, user.Password) { // Check password
		message(c, http.StatusBadRequest, invalidCredentials)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user.Profile()})
}
