package repositories

import (
	"fmt"
	"sync"

	"styleverse/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users  []models.User
	nextID uint
	mu     sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		nextID: 1,
	}
}

// Create adds a new user, enforcing username and email uniqueness.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == user.Username || r.users[i].UserEmail == user.UserEmail {
			return &models.ConflictError{Message: "Username or email already exists"}
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

// GetByEmail returns a user by their email.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].UserEmail == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, &models.NotFoundError{Message: fmt.Sprintf("user with email %s not found", email)}
}

// ExistsByUsernameOrEmail reports whether a user holds either identifier.
func (r *MockUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username || r.users[i].UserEmail == email {
			return true, nil
		}
	}
	return false, nil
}
