// colleagues_test.go - API tests for colleague lookup

package handlers // Declares the package name

import ( // Import required packages
	"fmt"      // Formatting
	"net/http" // HTTP status codes
	"testing"  // Go's testing package

	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For fatal assertions
)

func TestColleaguesStayInCohort(t *testing.T) {
	s := setupTestServer(t)
	me := s.register(t, registration("me@example.com", "student", "FON", "ISIT"))
	s.register(t, registration("teacher@example.com", "teacher", "FON", "ISIT"))
	for i, cohort := range [][2]string{{"FON", "MEN"}, {"ETF", "ISIT"}, {"ETF", "SI"}, {"PMF", "ISIT"}} {
		s.register(t, registration(fmt.Sprintf("t%d@example.com", i), "teacher", cohort[0], cohort[1]))
	}
	s.register(t, registration("student@example.com", "student", "FON", "ISIT"))

	w := s.do(t, http.MethodGet, "/api/colleagues?role=teacher", me, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var teachers []map[string]interface{}
	decode(t, w, &teachers)
	require.Len(t, teachers, 1)
	for _, u := range teachers {
		assert.Equal(t, "FON", u["school"])
		assert.Equal(t, "ISIT", u["programme"])
		assert.Equal(t, "teacher", u["role"])
		assert.NotContains(t, u, "password")
	}

	w = s.do(t, http.MethodGet, "/api/colleagues?role=student", me, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var students []map[string]interface{}
	decode(t, w, &students)
	require.Len(t, students, 1)
	assert.Equal(t, "student@example.com", students[0]["email"])
}

func TestColleaguesRoleIsValidated(t *testing.T) {
	s := setupTestServer(t)
	me := s.register(t, registration("me@example.com", "student", "FON", "ISIT"))

	w := s.do(t, http.MethodGet, "/api/colleagues", me, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "role is required")

	w = s.do(t, http.MethodGet, "/api/colleagues?role=dean", me, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetColleague(t *testing.T) {
	s := setupTestServer(t)
	me := s.register(t, registration("me@example.com", "student", "FON", "ISIT"))
	peer := s.register(t, registration("peer@example.com", "teacher", "FON", "ISIT"))
	stranger := s.register(t, registration("stranger@example.com", "teacher", "ETF", "SI"))
	peerID := s.profile(t, peer)["id"].(string)
	strangerID := s.profile(t, stranger)["id"].(string)

	w := s.do(t, http.MethodGet, "/api/colleagues/"+peerID, me, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user map[string]interface{}
	decode(t, w, &user)
	assert.Equal(t, "peer@example.com", user["email"])
	assert.NotContains(t, user, "password")

	w = s.do(t, http.MethodGet, "/api/colleagues/"+strangerID, me, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/colleagues/missing", me, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
