// user.go - Handles registration, login, token refresh and profile

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"strings"  // Email normalizing

	"go-campus-backend/apperr" // Error taxonomy
	"go-campus-backend/auth"   // Password hashing
	"go-campus-backend/models" // User model

	"github.com/gin-gonic/gin" // Gin web framework
)

type RegisterInput struct { // Struct for registration input
	Name      string `json:"name" binding:"required,notblank"`              // First name (required)
	Surname   string `json:"surname" binding:"required,notblank"`           // Last name (required)
	Email     string `json:"email" binding:"required,email"`                // Email (required)
	Password  string `json:"password" binding:"required,min=6"`             // Password, at least 6 chars
	Role      string `json:"role" binding:"required,oneof=student teacher"` // student or teacher
	School    string `json:"school" binding:"required,notblank"`            // School (required)
	Programme string `json:"programme" binding:"required,notblank"`         // Programme (required)
}

type LoginInput struct { // Struct for login input
	Email    string `json:"email" binding:"required,email"`    // Email (required)
	Password string `json:"password" binding:"required,min=6"` // Password (required)
}

var errInvalidCredentials = apperr.New(apperr.InvalidCredentials, "Invalid credentials")

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and returns a token for it.
func (h *Handler) Register(c *gin.Context) { // Handler for user registration
	var input RegisterInput
	if err := bindJSON(c, &input); err != nil { // Parse and validate JSON input
		h.fail(c, err)
		return
	}
	ctx := c.Request.Context()
	email := normalizeEmail(input.Email)

	taken, err := h.store.EmailTaken(ctx, email)
	if err != nil {
		h.fail(c, err)
		return
	}
	if taken { // Two users can't share an email
		h.fail(c, apperr.New(apperr.DuplicateUser, "User already exists"))
		return
	}

	hash, err := auth.HashPassword(input.Password) // Hash password
	if err != nil {
		h.fail(c, apperr.Wrap(err, "Internal server error"))
		return
	}
	user := models.User{ // Create user struct
		Name:      strings.TrimSpace(input.Name),
		Surname:   strings.TrimSpace(input.Surname),
		Email:     email,
		Password:  hash,
		Role:      models.Role(input.Role),
		School:    strings.TrimSpace(input.School),
		Programme: strings.TrimSpace(input.Programme),
	}
	if err := h.store.CreateUser(ctx, &user); err != nil { // Save user to DB
		h.fail(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user.ID)
}

// Login exchanges email and password for a token. Unknown email and wrong
// password are indistinguishable to the client.
func (h *Handler) Login(c *gin.Context) { // Handler for user login
	var input LoginInput
	if err := bindJSON(c, &input); err != nil {
		h.fail(c, err)
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), normalizeEmail(input.Email)) // Find user by email
	if apperr.Is(err, apperr.NotFound) {
		auth.CheckDummyPassword(input.Password)
		h.fail(c, errInvalidCredentials)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	if !auth.CheckPassword(user.Password, input.Password) { // Check password
		h.fail(c, errInvalidCredentials)
		return
	}

	h.respondWithToken(c, http.StatusOK, user.ID)
}

// RefreshToken issues a fresh token for an already authenticated caller.
func (h *Handler) RefreshToken(c *gin.Context) {
	user, err := h.caller(c)
	if apperr.Is(err, apperr.NotFound) {
		h.fail(c, apperr.NotFoundf("Unable to reauthorize"))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respondWithToken(c, http.StatusOK, user.ID)
}

// Profile returns the caller's own record. The password never leaves the
// server because the model does not serialize it.
func (h *Handler) Profile(c *gin.Context) {
	user, err := h.caller(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteProfile removes the caller together with everything they posted.
func (h *Handler) DeleteProfile(c *gin.Context) {
	user, err := h.caller(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.store.DeleteUserCascade(c.Request.Context(), user.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User profile deleted"})
}

func (h *Handler) respondWithToken(c *gin.Context, status int, userID string) {
	token, err := h.tokens.Issue(userID) // Sign token
	if err != nil {
		h.fail(c, apperr.Wrap(err, "Internal server error"))
		return
	}
	c.JSON(status, gin.H{"token": token}) // Return token
}
