package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/rekib0023/expense-sharing-backend/internal/errors"
	"github.com/rekib0023/expense-sharing-backend/internal/models"
	"github.com/rekib0023/expense-sharing-backend/internal/pagination"
	"github.com/rekib0023/expense-sharing-backend/internal/repository"
)

// userService handles user-related business logic.
type userService struct {
	users *repository.Repository[models.User]
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{users: repository.New[models.User](db)}
}

// CreateUser registers a new user. The email is lowercased and must be
// unique; the password is stored only as a bcrypt hash.
func (s *userService) CreateUser(ctx context.Context, firstName, lastName, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	email = strings.ToLower(email)
	existing, err := s.users.GetBy(ctx, "email = ?", email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		HashedPassword: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetBy(ctx, "email = ?", strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// AttemptLogin resolves the email and verifies the password. Unknown email
// and wrong password both answer with the same INVALID_CREDENTIALS error, so
// a caller cannot probe which emails have accounts.
func (s *userService) AttemptLogin(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetBy(ctx, "email = ?", strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if user == nil || !s.VerifyPassword(user, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password))
	return err == nil
}

// StoreRefreshTokenHash records the digest of the active refresh token.
func (s *userService) StoreRefreshTokenHash(ctx context.Context, userID uint, tokenHash string) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.RefreshTokenHash = tokenHash
	return s.users.Save(ctx, user)
}

// GetRefreshTokenHash returns the stored refresh token digest for a user.
func (s *userService) GetRefreshTokenHash(ctx context.Context, userID uint) (string, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.RefreshTokenHash, nil
}

// ClearRefreshTokenHash invalidates the active refresh token on logout.
func (s *userService) ClearRefreshTokenHash(ctx context.Context, userID uint) error {
	return s.StoreRefreshTokenHash(ctx, userID, "")
}

// ListUsers retrieves a paginated list of all users.
func (s *userService) ListUsers(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	page.Defaults()

	base := s.users.DB(ctx).Model(&models.User{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var users []models.User
	if err := base.Scopes(pagination.Paginate(page)).Order("id").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(users, page.Page, page.PageSize, totalItems)
	return &result, nil
}
