// comments.go - Comment persistence

package repository // Declares the package name

import ( // Import required packages
	"context" // Request-scoped cancellation

	"go-campus-backend/apperr" // Error taxonomy
	"go-campus-backend/models" // Persisted records
)

func (s *Store) CreateComment(ctx context.Context, c *models.Comment) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return apperr.Wrap(err, "Internal server error")
	}
	return nil
}

// CommentsFor lists the comments of one entity, oldest first. It does not
// check that the entity still exists.
func (s *Store) CommentsFor(ctx context.Context, entityID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.db.WithContext(ctx).
		Where("entity_id = ?", entityID).
		Order("created_at ASC").Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error")
	}
	return comments, nil
}
