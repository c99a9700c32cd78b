// ownership.go - Owner-checked deletes with cascades

package repository // Declares the package name

import ( // Import required packages
	"context" // Request-scoped cancellation

	"go-campus-backend/apperr" // Error taxonomy
	"go-campus-backend/models" // Persisted records

	"gorm.io/gorm" // GORM ORM
)

type owned interface {
	OwnerID() string
}

// ownedRecord constrains P to a pointer to a model that knows its owner.
type ownedRecord[T any] interface {
	*T
	owned
}

// deleteOwned runs the delete policy shared by every owned record: fetch,
// NotFound when absent, Forbidden when callerID is not the owner, then
// cascade and delete. Everything happens in one transaction so a failure
// never leaves orphaned comments behind.
func deleteOwned[T any, P ownedRecord[T]](ctx context.Context, db *gorm.DB, where map[string]interface{},
	callerID, notFound, forbidden string, cascade func(tx *gorm.DB, record P) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := P(new(T))
		if err := tx.Where(where).First(record).Error; err != nil { // Fetch the record
			return lookupError(err, notFound)
		}
		if record.OwnerID() != callerID { // Only the owner may delete
			return apperr.Forbiddenf(forbidden)
		}
		if cascade != nil {
			if err := cascade(tx, record); err != nil {
				return apperr.Wrap(err, "Internal server error")
			}
		}
		if err := tx.Delete(record).Error; err != nil { // Remove the record itself
			return apperr.Wrap(err, "Internal server error")
		}
		return nil
	})
}

func deleteEntityComments(tx *gorm.DB, entityID string) error {
	return tx.Where("entity_id = ?", entityID).Delete(&models.Comment{}).Error
}

// DeleteOwnedQuestion deletes a question and its comments when callerID owns it.
func (s *Store) DeleteOwnedQuestion(ctx context.Context, id, callerID string) error {
	return deleteOwned(ctx, s.db, map[string]interface{}{"id": id}, callerID,
		"Question not found", "You can only delete your own questions",
		func(tx *gorm.DB, q *models.Question) error { return deleteEntityComments(tx, q.ID) })
}

// DeleteOwnedProject deletes a project and its comments when callerID owns it.
func (s *Store) DeleteOwnedProject(ctx context.Context, id, callerID string) error {
	return deleteOwned(ctx, s.db, map[string]interface{}{"id": id}, callerID,
		"Project not found", "You can only delete your own projects",
		func(tx *gorm.DB, p *models.Project) error { return deleteEntityComments(tx, p.ID) })
}

// DeleteOwnedComment deletes one comment of entityID when callerID wrote it.
func (s *Store) DeleteOwnedComment(ctx context.Context, entityID, commentID, callerID string) error {
	return deleteOwned[models.Comment](ctx, s.db, map[string]interface{}{"id": commentID, "entity_id": entityID}, callerID,
		"Comment not found", "You can only delete your own comments", nil)
}
