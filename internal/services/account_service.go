package services

import (
	"styleverse/internal/models"
	"styleverse/internal/repositories"
)

// AccountService handles business logic for registration and login.
type AccountService struct {
	userRepo repositories.UserRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repositories.UserRepository) *AccountService {
	return &AccountService{
		userRepo: userRepo,
	}
}

// Register creates a new user account. Username and email must both be
// unused, the password confirmation must match and the phone number must
// match models.PhonePattern. The pre-check here only orders the failure
// modes (a duplicate is reported before field validation runs); the
// repository re-checks uniqueness inside the insert's own transactional
// scope, so a concurrent registration that slips past the pre-check still
// comes back as the same ConflictError.
func (s *AccountService) Register(req models.RegisterRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(req.Username, req.UserEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &models.ConflictError{Message: "Username or email already exists"}
	}

	if req.Password != req.ConfirmPassword {
		return nil, &models.ValidationError{Message: "Passwords do not match"}
	}
	if !models.PhonePattern.MatchString(req.PhoneNumber) {
		return nil, &models.ValidationError{Message: "Invalid phone number"}
	}

	user := &models.User{
		Username:    req.Username,
		UserEmail:   req.UserEmail,
		Password:    req.Password,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by email and password. The stored password is
// compared verbatim; see the User model for why no hashing is involved. The
// same AuthError comes back whether the email is unknown or the password is
// wrong, so callers cannot probe which emails are registered.
func (s *AccountService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, &models.AuthError{Message: "Invalid email or password"}
		}
		return nil, err
	}
	if user.Password != password {
		return nil, &models.AuthError{Message: "Invalid email or password"}
	}
	return user, nil
}
