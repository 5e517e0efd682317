package app

import "errors"

// NotFoundError is returned when the requested subject does not exist.
type NotFoundError string

// Error implements error interface.
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFoundError checks if given error is caused by a missing subject.
func IsNotFoundError(err error) bool {
	var nfe NotFoundError
	return errors.As(err, &nfe)
}

// RateLimitedError is returned when the remote api quota is exhausted.
// It is terminal for the current attempt - retry is a caller decision.
type RateLimitedError string

// Error implements error interface.
func (e RateLimitedError) Error() string {
	return string(e)
}

// IsRateLimitedError checks if given error is caused by an exhausted quota.
func IsRateLimitedError(err error) bool {
	var rle RateLimitedError
	return errors.As(err, &rle)
}

// TransientError covers every remaining remote failure: network errors,
// unexpected statuses, malformed payloads, server-reported query errors.
type TransientError string

// Error implements error interface.
func (e TransientError) Error() string {
	return string(e)
}

// IsTransientError checks if given error is a transient remote failure.
func IsTransientError(err error) bool {
	var te TransientError
	return errors.As(err, &te)
}

// InvalidRequestError is special error type returned when any request params are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	var ire InvalidRequestError
	return errors.As(err, &ire)
}
