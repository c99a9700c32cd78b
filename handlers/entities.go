// entities.go - Questions and projects: list, create, delete

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"strings"  // String helpers

	"go-campus-backend/middleware" // Auth and rate limiting
	"go-campus-backend/models"     // Persisted records
	"go-campus-backend/notify"     // Notifications
	"go-campus-backend/repository" // Persistence

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListQuery holds the optional filters shared by question and project listings.
type ListQuery struct {
	UserID    string `form:"userId"`
	School    string `form:"school"`
	Programme string `form:"programme"`
	Sort      string `form:"sort" binding:"omitempty,oneof=asc desc"`
}

func (q ListQuery) filter() repository.EntityFilter {
	order, _ := repository.ParseSortOrder(q.Sort)
	return repository.EntityFilter{UserID: q.UserID, School: q.School, Programme: q.Programme, Sort: order}
}

type QuestionInput struct {
	Title       string `json:"title" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
	IsPublic    *bool  `json:"isPublic" binding:"required"` // pointer so false still counts as present
}

type ProjectInput struct {
	Title       string `json:"title" binding:"required,notblank"`
	Description string `json:"description"`
	DemoURL     string `json:"demoUrl" binding:"required,url"`
	OtherURL    string `json:"otherUrl" binding:"omitempty,url"`
}

// ListQuestions returns every question matching the query, no pagination.
func (h *Handler) ListQuestions(c *gin.Context) {
	var query ListQuery
	if err := bindQuery(c, &query); err != nil {
		h.fail(c, err)
		return
	}
	questions, err := h.store.ListQuestions(c.Request.Context(), query.filter())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *Handler) CreateQuestion(c *gin.Context) {
	var input QuestionInput
	if err := bindJSON(c, &input); err != nil {
		h.fail(c, err)
		return
	}
	user, err := h.caller(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	question := models.Question{
		Authorship:  models.AuthoredBy(user),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		IsPublic:    *input.IsPublic,
	}
	if err := h.store.CreateQuestion(c.Request.Context(), &question); err != nil {
		h.fail(c, err)
		return
	}

	h.publish(notify.CohortTopic(user.School, user.Programme, "questions"), notify.Event{
		Type: "question.created", EntityID: question.ID, ByUserID: user.ID, Title: question.Title, At: question.CreatedAt,
	})
	c.JSON(http.StatusCreated, question)
}

func (h *Handler) DeleteQuestion(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	if err := h.store.DeleteOwnedQuestion(c.Request.Context(), c.Param("id"), identity.UserID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted"})
}

func (h *Handler) ListProjects(c *gin.Context) {
	var query ListQuery
	if err := bindQuery(c, &query); err != nil {
		h.fail(c, err)
		return
	}
	projects, err := h.store.ListProjects(c.Request.Context(), query.filter())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var input ProjectInput
	if err := bindJSON(c, &input); err != nil {
		h.fail(c, err)
		return
	}
	user, err := h.caller(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	project := models.Project{
		Authorship:  models.AuthoredBy(user),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		DemoURL:     input.DemoURL,
		OtherURL:    input.OtherURL,
	}
	if err := h.store.CreateProject(c.Request.Context(), &project); err != nil {
		h.fail(c, err)
		return
	}

	h.publish(notify.CohortTopic(user.School, user.Programme, "projects"), notify.Event{
		Type: "project.created", EntityID: project.ID, ByUserID: user.ID, Title: project.Title, At: project.CreatedAt,
	})
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	if err := h.store.DeleteOwnedProject(c.Request.Context(), c.Param("id"), identity.UserID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

