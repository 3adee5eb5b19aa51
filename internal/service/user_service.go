package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/logger"
	"github.com/scottmc500/ScottLMS/internal/repository"
	"github.com/scottmc500/ScottLMS/internal/validator"
)

// CreateUserInput is the data needed to register a user.
type CreateUserInput struct {
	Email          string
	Username       string
	FirstName      string
	LastName       string
	Role           domain.Role
	Password       string
	ProfilePicture *string
	Active         *bool
}

// UserService handles user registration and maintenance.
type UserService struct {
	store        repository.Store
	validator    *validator.Validator
	storeTimeout time.Duration
	bcryptCost   int
}

// NewUserService creates a new UserService.
func NewUserService(store repository.Store, v *validator.Validator, storeTimeout time.Duration) *UserService {
	return &UserService{
		store:        store,
		validator:    v,
		storeTimeout: orDefaultTimeout(storeTimeout),
		bcryptCost:   bcrypt.DefaultCost,
	}
}

// WithBcryptCost overrides the hashing cost. Tests use bcrypt.MinCost.
func (s *UserService) WithBcryptCost(cost int) *UserService {
	s.bcryptCost = cost
	return s
}

// CreateUser validates the input, enforces the password policy and unique
// email/username, and stores the user with a bcrypt password hash.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          strings.TrimSpace(input.Email),
		Username:       strings.TrimSpace(input.Username),
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Role:           input.Role,
		Active:         true,
		ProfilePicture: input.ProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if user.Role == "" {
		user.Role = domain.RoleStudent
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.validator.ValidateUser(user); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}

	problems := validator.ValidatePassword(input.Password, validator.PersonalInfo{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
	if len(problems) > 0 {
		return nil, domain.Validation(domain.CodeWeakPassword, strings.Join(problems, "; "))
	}

	if err := s.checkUnique(ctx, "", &user.Email, &user.Username); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.HashedPassword = string(hash)

	err = storeExec(ctx, s.storeTimeout, "users.create", func(ctx context.Context) error {
		return s.store.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, userWriteError("create user", err)
	}

	logger.FromContext(ctx).Info("User created",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)))
	return user, nil
}

// checkUnique rejects an email or username already held by a user other than selfID.
func (s *UserService) checkUnique(ctx context.Context, selfID string, email, username *string) error {
	if email != nil {
		existing, err := storeCall(ctx, s.storeTimeout, "users.get_by_email", func(ctx context.Context) (*domain.User, error) {
			return s.store.Users.GetByEmail(ctx, *email)
		})
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if existing != nil && existing.ID != selfID {
			return domain.ErrEmailTaken
		}
	}
	if username != nil {
		existing, err := storeCall(ctx, s.storeTimeout, "users.get_by_username", func(ctx context.Context) (*domain.User, error) {
			return s.store.Users.GetByUsername(ctx, *username)
		})
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if existing != nil && existing.ID != selfID {
			return domain.ErrUsernameTaken
		}
	}
	return nil
}

// userWriteError translates unique-index violations raised by a write.
func userWriteError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domain.ErrEmailTaken
	case errors.Is(err, repository.ErrDuplicateUsername):
		return domain.ErrUsernameTaken
	}
	return fmt.Errorf("%s: %w", op, err)
}

// GetUser returns the user with the given id.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := storeCall(ctx, s.storeTimeout, "users.get", func(ctx context.Context) (*domain.User, error) {
		return s.store.Users.GetByID(ctx, id)
	})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns one page of users matching filter, oldest first.
func (s *UserService) ListUsers(ctx context.Context, filter domain.UserFilter, page domain.Page) ([]domain.User, error) {
	if err := s.validator.ValidatePage(&page); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}

	users, err := storeCall(ctx, s.storeTimeout, "users.list", func(ctx context.Context) ([]domain.User, error) {
		return collect(func(cb func(domain.User) error) error {
			return s.store.Users.List(ctx, filter, page, cb)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies the fields present in patch.
func (s *UserService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if err := s.validator.ValidateUserPatch(&patch); err != nil {
		return nil, validator.ConvertValidationErrors(err)
	}
	if patch.IsEmpty() {
		return s.GetUser(ctx, id)
	}

	if err := s.checkUnique(ctx, id, patch.Email, patch.Username); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	patch.UpdatedAt = &now

	user, err := storeCall(ctx, s.storeTimeout, "users.update", func(ctx context.Context) (*domain.User, error) {
		return s.store.Users.Update(ctx, id, patch)
	})
	if err != nil {
		return nil, userWriteError("update user", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// DeleteUser removes a user that no enrollment or course references.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	enrolled, err := storeCall(ctx, s.storeTimeout, "enrollments.count", func(ctx context.Context) (int64, error) {
		return s.store.Enrollments.Count(ctx, domain.EnrollmentFilter{StudentID: id})
	})
	if err != nil {
		return fmt.Errorf("count enrollments: %w", err)
	}
	teaching, err := storeCall(ctx, s.storeTimeout, "courses.count_by_instructor", func(ctx context.Context) (int64, error) {
		return s.store.Courses.CountByInstructor(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	if enrolled > 0 || teaching > 0 {
		return domain.InvalidState(domain.CodeHasDependents,
			fmt.Sprintf("user has %d enrollments and %d courses", enrolled, teaching))
	}

	deleted, err := storeCall(ctx, s.storeTimeout, "users.delete", func(ctx context.Context) (bool, error) {
		return s.store.Users.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return domain.ErrUserNotFound
	}

	logger.FromContext(ctx).Info("User deleted", slog.String("user_id", id))
	return nil
}
