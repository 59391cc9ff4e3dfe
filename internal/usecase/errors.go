package usecase

import (
	"errors"
	"fmt"
)

// usecaseの失敗はHTTPステータス＋メッセージで表す。
// 404=対象が存在しない / 400=入力は形として正しいが受け付けない。
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
