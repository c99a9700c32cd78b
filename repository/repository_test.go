// repository_test.go - Tests for the persistence layer

package repository // Declares the package name

import ( // Import required packages
	"context"       // Request-scoped cancellation
	"path/filepath" // Per-test file paths
	"testing"       // Go's testing package
	"time"          // Time handling

	"go-campus-backend/apperr"   // Error taxonomy
	"go-campus-backend/database" // Database connection
	"go-campus-backend/models"   // Persisted records

	"github.com/rs/zerolog"               // Structured logging
	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For fatal assertions
)

// setupTestStore opens a fresh SQLite file for each test
func setupTestStore(t *testing.T) *Store {
	db, err := database.Connect("sqlite", filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	return New(db)
}

func createUser(t *testing.T, s *Store, email string, role models.Role, school, programme string) *models.User {
	u := &models.User{Name: "N-" + email, Surname: "S-" + email, Email: email, Password: "hash",
		Role: role, School: school, Programme: programme}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func createQuestion(t *testing.T, s *Store, owner *models.User, title string, at time.Time) *models.Question {
	q := &models.Question{Authorship: models.AuthoredBy(owner), Title: title, Description: "d", IsPublic: true}
	q.CreatedAt = at
	require.NoError(t, s.CreateQuestion(context.Background(), q))
	return q
}

func createComment(t *testing.T, s *Store, author *models.User, entityID, text string) *models.Comment {
	c := &models.Comment{UserID: author.ID, EntityID: entityID, UserName: author.Name,
		UserSurname: author.Surname, Text: text}
	require.NoError(t, s.CreateComment(context.Background(), c))
	return c
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	createUser(t, s, "ana@example.com", models.RoleStudent, "FON", "ISIT")

	err := s.CreateUser(ctx, &models.User{Name: "A", Surname: "B", Email: "ana@example.com", Password: "x",
		Role: models.RoleTeacher, School: "ETF", Programme: "SI"})
	assert.True(t, apperr.Is(err, apperr.DuplicateUser))

	taken, err := s.EmailTaken(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestListQuestionsFiltersAndSorts(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	fon := createUser(t, s, "a@x.com", models.RoleStudent, "FON", "ISIT")
	etf := createUser(t, s, "b@x.com", models.RoleStudent, "ETF", "SI")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	first := createQuestion(t, s, fon, "first", base)
	createQuestion(t, s, etf, "other school", base.Add(time.Minute))
	third := createQuestion(t, s, fon, "third", base.Add(2*time.Minute))

	newest, err := s.ListQuestions(ctx, EntityFilter{School: "FON", Sort: NewestFirst})
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, third.ID, newest[0].ID)
	assert.Equal(t, first.ID, newest[1].ID)

	oldest, err := s.ListQuestions(ctx, EntityFilter{School: "FON", Sort: OldestFirst})
	require.NoError(t, err)
	require.Len(t, oldest, 2)
	assert.Equal(t, first.ID, oldest[0].ID)

	none, err := s.ListQuestions(ctx, EntityFilter{School: "FON", Programme: "SI"})
	require.NoError(t, err)
	assert.Empty(t, none)

	byUser, err := s.ListQuestions(ctx, EntityFilter{UserID: etf.ID})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "other school", byUser[0].Title)
}

func TestParseSortOrder(t *testing.T) {
	order, ok := ParseSortOrder("")
	assert.True(t, ok)
	assert.Equal(t, NewestFirst, order)

	order, ok = ParseSortOrder("asc")
	assert.True(t, ok)
	assert.Equal(t, OldestFirst, order)

	_, ok = ParseSortOrder("newest")
	assert.False(t, ok)
}

func TestDeleteOwnedQuestionChecksOwnerAndCascades(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	owner := createUser(t, s, "owner@x.com", models.RoleStudent, "FON", "ISIT")
	other := createUser(t, s, "other@x.com", models.RoleStudent, "FON", "ISIT")
	q := createQuestion(t, s, owner, "q", time.Now())
	kept := createQuestion(t, s, owner, "kept", time.Now())
	createComment(t, s, other, q.ID, "hello")
	createComment(t, s, owner, q.ID, "hi")
	createComment(t, s, other, kept.ID, "stays")

	err := s.DeleteOwnedQuestion(ctx, q.ID, other.ID)
	assert.True(t, apperr.Is(err, apperr.Forbidden))
	comments, err := s.CommentsFor(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	require.NoError(t, s.DeleteOwnedQuestion(ctx, q.ID, owner.ID))
	_, err = s.QuestionByID(ctx, q.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))
	comments, err = s.CommentsFor(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	comments, err = s.CommentsFor(ctx, kept.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	err = s.DeleteOwnedQuestion(ctx, q.ID, owner.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestDeleteOwnedProjectCascades(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	owner := createUser(t, s, "owner@x.com", models.RoleTeacher, "FON", "ISIT")
	p := &models.Project{Authorship: models.AuthoredBy(owner), Title: "p", DemoURL: "https://demo.example.com"}
	require.NoError(t, s.CreateProject(ctx, p))
	createComment(t, s, owner, p.ID, "note")

	require.NoError(t, s.DeleteOwnedProject(ctx, p.ID, owner.ID))
	comments, err := s.CommentsFor(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestDeleteOwnedComment(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	owner := createUser(t, s, "owner@x.com", models.RoleStudent, "FON", "ISIT")
	other := createUser(t, s, "other@x.com", models.RoleStudent, "FON", "ISIT")
	q := createQuestion(t, s, owner, "q", time.Now())
	c := createComment(t, s, other, q.ID, "mine")

	err := s.DeleteOwnedComment(ctx, q.ID, c.ID, owner.ID)
	assert.True(t, apperr.Is(err, apperr.Forbidden))

	err = s.DeleteOwnedComment(ctx, "another-entity", c.ID, other.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))

	require.NoError(t, s.DeleteOwnedComment(ctx, q.ID, c.ID, other.ID))
	comments, err := s.CommentsFor(ctx, q.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestEntityOwner(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	owner := createUser(t, s, "owner@x.com", models.RoleStudent, "FON", "ISIT")
	q := createQuestion(t, s, owner, "q", time.Now())
	p := &models.Project{Authorship: models.AuthoredBy(owner), Title: "p", DemoURL: "https://demo.example.com"}
	require.NoError(t, s.CreateProject(ctx, p))

	id, err := s.EntityOwner(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, id)

	id, err = s.EntityOwner(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, id)

	_, err = s.EntityOwner(ctx, "missing")
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestColleaguesStayInCohort(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	me := createUser(t, s, "me@x.com", models.RoleStudent, "FON", "ISIT")
	teacher := createUser(t, s, "t1@x.com", models.RoleTeacher, "FON", "ISIT")
	createUser(t, s, "t2@x.com", models.RoleTeacher, "FON", "MEN")
	createUser(t, s, "t3@x.com", models.RoleTeacher, "ETF", "ISIT")
	createUser(t, s, "s1@x.com", models.RoleStudent, "FON", "ISIT")

	teachers, err := s.Colleagues(ctx, me, models.RoleTeacher)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, teacher.ID, teachers[0].ID)

	students, err := s.Colleagues(ctx, me, models.RoleStudent)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.NotEqual(t, me.ID, students[0].ID)
}

func TestDeleteUserCascade(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	leaving := createUser(t, s, "leaving@x.com", models.RoleStudent, "FON", "ISIT")
	staying := createUser(t, s, "staying@x.com", models.RoleStudent, "FON", "ISIT")
	theirs := createQuestion(t, s, leaving, "theirs", time.Now())
	ours := createQuestion(t, s, staying, "ours", time.Now())
	createComment(t, s, staying, theirs.ID, "on their question")
	createComment(t, s, leaving, ours.ID, "their comment")
	createComment(t, s, staying, ours.ID, "our comment")

	require.NoError(t, s.DeleteUserCascade(ctx, leaving.ID))

	_, err := s.UserByID(ctx, leaving.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))
	_, err = s.QuestionByID(ctx, theirs.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))

	onTheirs, err := s.CommentsFor(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Empty(t, onTheirs)

	onOurs, err := s.CommentsFor(ctx, ours.ID)
	require.NoError(t, err)
	require.Len(t, onOurs, 1)
	assert.Equal(t, "our comment", onOurs[0].Text)

	err = s.DeleteUserCascade(ctx, leaving.ID)
	assert.True(t, apperr.Is(err, apperr.NotFound))
}
