package repositories

import "styleverse/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create persists a new user. The uniqueness check and the insert run
	// in one transactional scope; a violation on username or email is
	// reported as models.ConflictError.
	Create(user *models.User) error
	// GetByEmail returns the user with the given email, or
	// models.NotFoundError if no such user exists.
	GetByEmail(email string) (*models.User, error)
	// ExistsByUsernameOrEmail reports whether any user already holds the
	// given username or email.
	ExistsByUsernameOrEmail(username, email string) (bool, error)
}
