package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Error 领域错误，Unwrap 到上面的哨兵错误
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NewUserNotFound(id string) error {
	return &Error{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("user '%s' not found", id),
		Err:     ErrUserNotFound,
	}
}

func NewInvalidInput(msg string) error {
	return &Error{Code: "INVALID_INPUT", Message: msg, Err: ErrInvalidInput}
}

// Message 返回可以直接给调用方看的文案
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
