package api

import (
	"errors"
	"net/http"
)

// RequestError is the normalized failure shape for every gateway call. HTTP
// failures carry the status code and the server's error message; transport
// failures (DNS, refused connection) carry StatusCode 0 and wrap the cause.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

func statusIs(err error, code int) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == code
}
