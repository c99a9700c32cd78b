// comments.go - Comments on questions and projects

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes

	"go-campus-backend/middleware" // Auth and rate limiting
	"go-campus-backend/models"     // Persisted records
	"go-campus-backend/notify"     // Notifications

	"github.com/gin-gonic/gin" // Gin web framework
)

type CommentInput struct {
	Text string `json:"text" binding:"required,notblank"`
}

// ListComments returns an entity's comments oldest first. An unknown or
// deleted entity simply has no comments.
func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.store.CommentsFor(c.Request.Context(), c.Param("entityId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment attaches a comment to a live question or project.
func (h *Handler) CreateComment(c *gin.Context) {
	var input CommentInput
	if err := bindJSON(c, &input); err != nil {
		h.fail(c, err)
		return
	}
	ctx := c.Request.Context()
	entityID := c.Param("entityId")

	ownerID, err := h.store.EntityOwner(ctx, entityID)
	if err != nil {
		h.fail(c, err)
		return
	}
	user, err := h.caller(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	comment := models.Comment{
		UserID:      user.ID,
		EntityID:    entityID,
		UserName:    user.Name,
		UserSurname: user.Surname,
		Text:        input.Text,
	}
	if err := h.store.CreateComment(ctx, &comment); err != nil {
		h.fail(c, err)
		return
	}

	if ownerID != user.ID {
		h.publish(notify.UserCommentsTopic(ownerID), notify.Event{
			Type: "comment.created", EntityID: entityID, ByUserID: user.ID, At: comment.CreatedAt,
		})
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	err := h.store.DeleteOwnedComment(c.Request.Context(), c.Param("entityId"), c.Param("commentId"), identity.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}
