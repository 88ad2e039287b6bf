package apperr

// ValidationError marks malformed input: missing or oversized values.
// The global handler maps it to HTTP 400.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// SemanticError marks well-formed but semantically invalid input, such as
// an unrecognized entity type. Mapped to HTTP 422 so clients can tell it
// apart from a plain validation failure.
type SemanticError struct {
	Message string
}

func (e *SemanticError) Error() string {
	return e.Message
}

func NewSemantic(msg string) *SemanticError {
	return &SemanticError{Message: msg}
}

// NotFoundError maps to HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// ConflictError maps to HTTP 409, raised on unique-constraint collisions
// (duplicate email, slug or code).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(msg string) *ConflictError {
	return &ConflictError{Message: msg}
}

// UnauthorizedError maps to HTTP 401.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorized(msg string) *UnauthorizedError {
	return &UnauthorizedError{Message: msg}
}

// ForbiddenError maps to HTTP 403.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbidden(msg string) *ForbiddenError {
	return &ForbiddenError{Message: msg}
}
