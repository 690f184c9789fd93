// Package apperrors описывает таксономию ошибок приложения и их HTTP-коды.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation: отсутствующее или некорректное поле формы.
	ErrValidation = errors.New("validation error")
	// ErrDuplicateName: имя уже занято неудалённой записью.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrDuplicateUsername: пользователь с таким логином уже существует.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidCredentials: неверный логин и/или пароль.
	ErrInvalidCredentials = errors.New("invalid username and/or password")
	// ErrNotFound: запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition: переход жизненного цикла памятника недопустим.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrReference: нарушен внешний ключ (ссылка на несуществующую запись или удаление используемой).
	ErrReference = errors.New("referenced record does not exist")
)

// ValidationError описывает ошибку конкретного поля.
// errors.Is(err, ErrValidation) для неё возвращает true.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidation создаёт ValidationError.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is позволяет сравнивать ValidationError с ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateNameError сообщает, какая сущность столкнулась с занятым именем.
type DuplicateNameError struct {
	Entity string
	Name   string
}

func (e *DuplicateNameError) Error() string {
	return e.Entity + " with the specific name already exists"
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// NotFoundError сообщает, какая сущность не найдена.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return "the specific " + e.Entity + " does not exist"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StatusCode возвращает HTTP-код для ошибки.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrReference):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Message возвращает текст, который можно показать пользователю.
// Для внутренних ошибок детали не раскрываются.
func Message(err error) string {
	if StatusCode(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var de *DuplicateNameError
	if errors.As(err, &de) {
		return de.Error()
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	if errors.Is(err, ErrReference) {
		return ErrReference.Error()
	}
	return err.Error()
}
