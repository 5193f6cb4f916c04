package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller's role does not allow the action.
var ErrForbidden = errors.New("forbidden")

// ErrUpstream indicates that the training API rejected or failed a call.
var ErrUpstream = errors.New("training api error")
