package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"styleverse/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create persists a new user. Uniqueness is checked and the row inserted
// inside one transaction, and the database constraint stays the last word: a
// duplicate slipping in from a concurrent registration is surfaced as the
// same ConflictError the check produces.
func (r *GORMUserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.User{}).
			Where("username = ? OR user_email = ?", user.Username, user.UserEmail).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check user existence: %w", err)
		}
		if count > 0 {
			return &models.ConflictError{Message: "Username or email already exists"}
		}
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &models.ConflictError{Message: "Username or email already exists"}
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.NotFoundError{Message: fmt.Sprintf("user with email %s not found", email)}
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// ExistsByUsernameOrEmail reports whether a user with the given username or
// email already exists.
func (r *GORMUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR user_email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}
