// Package errors provides custom error types for the expense-sharing API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrNotLoggedIn        = &AppError{Code: "NOT_LOGGED_IN", Message: "You are not logged in", StatusCode: http.StatusUnauthorized}
	ErrTokenInvalid       = &AppError{Code: "TOKEN_INVALID", Message: "Token is invalid or has expired", StatusCode: http.StatusUnauthorized}
	ErrUserGone           = &AppError{Code: "USER_GONE", Message: "The user belonging to this token no longer exists", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Incorrect email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "User with this email already exists", StatusCode: http.StatusConflict}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
)

// Expense errors.
var (
	ErrExpenseNotFound  = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrInvalidFilter    = &AppError{Code: "INVALID_FILTER", Message: "Invalid filter type. Must be one of category, paid_by", StatusCode: http.StatusBadRequest}
	ErrInvalidGrouping  = &AppError{Code: "INVALID_GROUPING", Message: "Invalid grouping. Must be one of category, paid_by", StatusCode: http.StatusBadRequest}
	ErrNegativeAmount   = &AppError{Code: "NEGATIVE_AMOUNT", Message: "Amount must not be negative; use is_spend to mark spending", StatusCode: http.StatusBadRequest}
	ErrNoCategoryFilter = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "No category found for the given filter", StatusCode: http.StatusNotFound}
)

// Group & friend errors.
var (
	ErrGroupNotFound   = &AppError{Code: "GROUP_NOT_FOUND", Message: "Expense group not found", StatusCode: http.StatusNotFound}
	ErrDuplicateMember = &AppError{Code: "DUPLICATE_MEMBER", Message: "User is already a member of this group", StatusCode: http.StatusConflict}
	ErrDuplicateFriend = &AppError{Code: "DUPLICATE_FRIEND", Message: "Users are already friends", StatusCode: http.StatusConflict}
	ErrSelfFriend      = &AppError{Code: "SELF_FRIEND", Message: "Cannot add yourself as a friend", StatusCode: http.StatusBadRequest}
)
