// entities.go - Question and project persistence, filtering and ordering

package repository // Declares the package name

import ( // Import required packages
	"context" // Request-scoped cancellation

	"go-campus-backend/apperr" // Error taxonomy
	"go-campus-backend/models" // Persisted records

	"gorm.io/gorm" // GORM ORM
)

// SortOrder orders entity listings by creation time.
type SortOrder string

const (
	NewestFirst SortOrder = "desc"
	OldestFirst SortOrder = "asc"
)

// ParseSortOrder accepts "", "desc" and "asc". Empty means newest first.
func ParseSortOrder(raw string) (SortOrder, bool) {
	switch SortOrder(raw) {
	case "", NewestFirst:
		return NewestFirst, true
	case OldestFirst:
		return OldestFirst, true
	}
	return "", false
}

// EntityFilter narrows question and project listings. Empty fields are
// ignored, the rest are combined with AND.
type EntityFilter struct {
	UserID    string
	School    string
	Programme string
	Sort      SortOrder
}

func (f EntityFilter) apply(q *gorm.DB) *gorm.DB {
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.School != "" {
		q = q.Where("school = ?", f.School)
	}
	if f.Programme != "" {
		q = q.Where("programme = ?", f.Programme)
	}
	if f.Sort == OldestFirst {
		return q.Order("created_at ASC").Order("id ASC")
	}
	return q.Order("created_at DESC").Order("id DESC")
}

func (s *Store) CreateQuestion(ctx context.Context, q *models.Question) error {
	if err := s.db.WithContext(ctx).Create(q).Error; err != nil {
		return apperr.Wrap(err, "Internal server error")
	}
	return nil
}

func (s *Store) ListQuestions(ctx context.Context, f EntityFilter) ([]models.Question, error) {
	questions := []models.Question{}
	if err := f.apply(s.db.WithContext(ctx)).Find(&questions).Error; err != nil {
		return nil, apperr.Wrap(err, "Internal server error")
	}
	return questions, nil
}

func (s *Store) QuestionByID(ctx context.Context, id string) (*models.Question, error) {
	var q models.Question
	if err := s.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return nil, lookupError(err, "Question not found")
	}
	return &q, nil
}

func (s *Store) CreateProject(ctx context.Context, p *models.Project) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return apperr.Wrap(err, "Internal server error")
	}
	return nil
}

func (s *Store) ListProjects(ctx context.Context, f EntityFilter) ([]models.Project, error) {
	projects := []models.Project{}
	if err := f.apply(s.db.WithContext(ctx)).Find(&projects).Error; err != nil {
		return nil, apperr.Wrap(err, "Internal server error")
	}
	return projects, nil
}

func (s *Store) ProjectByID(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, lookupError(err, "Project not found")
	}
	return &p, nil
}

// EntityOwner resolves a question or project id to its owner's user id.
func (s *Store) EntityOwner(ctx context.Context, entityID string) (string, error) {
	if q, err := s.QuestionByID(ctx, entityID); err == nil {
		return q.UserID, nil
	} else if !apperr.Is(err, apperr.NotFound) {
		return "", err
	}
	p, err := s.ProjectByID(ctx, entityID)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			return "", apperr.NotFoundf("Question or project not found")
		}
		return "", err
	}
	return p.UserID, nil
}
