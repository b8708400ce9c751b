package pkg

import "fmt"

// AppError is an error prepared for the HTTP boundary: a stable code, a
// message safe to show to clients, the status to answer with, and the
// underlying cause (never serialized).
type AppError struct {
	Code          string
	Message       string
	Err           error
	HTTPStatus    int
	CurrentStatus string
}

// HTTPError is the JSON body returned for every failed request.
type HTTPError struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	CurrentStatus string `json:"current_status,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithCurrentStatus returns a copy of e carrying the authoritative status of
// the resource the request was about.
func (e *AppError) WithCurrentStatus(status string) *AppError {
	cp := *e
	cp.CurrentStatus = status
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, CurrentStatus: e.CurrentStatus}
}
