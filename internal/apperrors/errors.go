package apperrors

import "errors"

var (
	// ErrInvalidCursor is returned when a pagination cursor cannot be decoded.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrBadCredentials is returned on login failure. It deliberately does not
	// distinguish an unknown email from a wrong password.
	ErrBadCredentials = errors.New("invalid email or password")
	// ErrRefreshTokenInvalid is returned when a refresh token is not found in the store.
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid")
	// ErrRefreshTokenExpired is returned when a refresh token is found but past its expiry.
	ErrRefreshTokenExpired = errors.New("refresh token is expired")
	// ErrTokenExpired is returned when an access token's expiry has passed.
	ErrTokenExpired = errors.New("access token expired")
	// ErrTokenMalformed is returned when an access token fails signature or structural checks.
	ErrTokenMalformed = errors.New("access token malformed")
	// ErrResourceNotFound is returned when a referenced post, category, tag or comment does not exist.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrResourceExists is returned when creating a category or tag whose name is already taken.
	ErrResourceExists = errors.New("resource already exists")
	// ErrNotAllowedOperation is returned when a caller mutates a resource they do not own.
	ErrNotAllowedOperation = errors.New("operation not allowed")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("user already exists with provided email")
	// ErrPostHasComments is returned when deleting a post that still has comments.
	ErrPostHasComments = errors.New("post cannot be deleted because it has comments")
)
