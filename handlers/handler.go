// handler.go - Shared dependencies and helpers for the HTTP handlers

package handlers // Declares the package name

import ( // Import required packages
	"go-campus-backend/apperr"     // Error taxonomy
	"go-campus-backend/auth"       // Credential store
	"go-campus-backend/middleware" // Caller identity
	"go-campus-backend/models"     // Records
	"go-campus-backend/notify"     // Notifications
	"go-campus-backend/repository" // Persistence

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/rs/zerolog"    // Structured logging
)

// Handler serves every API route. All dependencies are fixed at construction.
type Handler struct {
	store     *repository.Store
	tokens    *auth.TokenIssuer
	publisher notify.Publisher
	log       zerolog.Logger
}

func New(store *repository.Store, tokens *auth.TokenIssuer, publisher notify.Publisher, log zerolog.Logger) *Handler {
	if publisher == nil {
		publisher = notify.Nop{}
	}
	registerValidation()
	return &Handler{store: store, tokens: tokens, publisher: publisher, log: log}
}

// fail maps err to its one JSON reply. Internal causes are never sent; the
// request logger records them.
func (h *Handler) fail(c *gin.Context, err error) {
	middleware.Abort(c, err)
}

// caller loads the authenticated user. A valid token for a deleted account
// yields NotFound.
func (h *Handler) caller(c *gin.Context) (*models.User, error) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return nil, apperr.New(apperr.Unauthenticated, "Missing token")
	}
	return h.store.UserByID(c.Request.Context(), identity.UserID)
}

// publish sends a notification; failures are logged and otherwise ignored.
func (h *Handler) publish(topic string, event notify.Event) {
	if err := h.publisher.Publish(topic, event); err != nil {
		h.log.Warn().Err(err).Str("topic", topic).Msg("notification not delivered")
	}
}
