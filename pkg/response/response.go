package response

import (
	"errors"
)

// Error ошибка с HTTP-кодом, который нужно вернуть клиенту
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

// Wrap присваивает существующей ошибке HTTP-код
func Wrap(code int, err error) error {
	return &Error{Code: code, Err: err}
}
