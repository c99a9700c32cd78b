// users.go - User persistence, colleague lookup and account removal

package repository // Declares the package name

import ( // Import required packages
	"context" // Request-scoped cancellation
	"errors"  // Error inspection

	"go-campus-backend/apperr" // Error taxonomy
	"go-campus-backend/models" // Persisted records

	"gorm.io/gorm" // GORM ORM
)

var errDuplicateUser = apperr.New(apperr.DuplicateUser, "User already exists")

// CreateUser inserts u. The unique email index backs up the lookup done by
// callers, so two concurrent registrations still yield one record.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	err := s.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errDuplicateUser
	}
	if err != nil {
		return apperr.Wrap(err, "Internal server error")
	}
	return nil
}

// EmailTaken reports whether a user already registered with email.
func (s *Store) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, apperr.Wrap(err, "Internal server error")
	}
	return count > 0, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, lookupError(err, "User not found")
	}
	return &u, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, lookupError(err, "User not found")
	}
	return &u, nil
}

// Colleagues returns the users of of's cohort with the given role, without of.
func (s *Store) Colleagues(ctx context.Context, of *models.User, role models.Role) ([]models.User, error) {
	users := []models.User{}
	err := s.db.WithContext(ctx).
		Where("school = ? AND programme = ? AND role = ? AND id <> ?", of.School, of.Programme, role, of.ID).
		Order("surname ASC, name ASC").
		Find(&users).Error
	if err != nil {
		return nil, apperr.Wrap(err, "Internal server error")
	}
	return users, nil
}

// DeleteUserCascade removes the user, everything they posted and every
// comment left on their questions and projects, in one transaction.
func (s *Store) DeleteUserCascade(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return lookupError(err, "User not found")
		}

		var entityIDs, projectIDs []string
		if err := tx.Model(&models.Question{}).Where("user_id = ?", userID).Pluck("id", &entityIDs).Error; err != nil {
			return apperr.Wrap(err, "Internal server error")
		}
		if err := tx.Model(&models.Project{}).Where("user_id = ?", userID).Pluck("id", &projectIDs).Error; err != nil {
			return apperr.Wrap(err, "Internal server error")
		}
		entityIDs = append(entityIDs, projectIDs...)

		if len(entityIDs) > 0 { // Comments left by others on the user's posts
			if err := tx.Where("entity_id IN ?", entityIDs).Delete(&models.Comment{}).Error; err != nil {
				return apperr.Wrap(err, "Internal server error")
			}
		}
		for _, model := range []interface{}{&models.Comment{}, &models.Question{}, &models.Project{}} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return apperr.Wrap(err, "Internal server error")
			}
		}
		if err := tx.Delete(&user).Error; err != nil { // Finally the account
			return apperr.Wrap(err, "Internal server error")
		}
		return nil
	})
}
