// colleagues.go - Cohort-scoped user lookup

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes

	"go-campus-backend/apperr" // Error taxonomy
	"go-campus-backend/models" // Persisted records

	"github.com/gin-gonic/gin" // Gin web framework
)

type ColleagueQuery struct {
	Role string `form:"role" binding:"required,oneof=student teacher"`
}

// ListColleagues returns the caller's cohort members with the requested role.
func (h *Handler) ListColleagues(c *gin.Context) {
	var query ColleagueQuery
	if err := bindQuery(c, &query); err != nil {
		h.fail(c, err)
		return
	}
	user, err := h.caller(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	colleagues, err := h.store.Colleagues(c.Request.Context(), user, models.Role(query.Role))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, colleagues)
}

// GetColleague returns one user of the caller's cohort. Users outside the
// cohort are reported as missing so their existence is not revealed.
func (h *Handler) GetColleague(c *gin.Context) {
	user, err := h.caller(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	colleague, err := h.store.UserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if !user.SameCohort(colleague) {
		h.fail(c, apperr.NotFoundf("User not found"))
		return
	}
	c.JSON(http.StatusOK, colleague)
}
